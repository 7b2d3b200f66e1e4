package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/middlewares"
	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

// SessionCreator defines the interface that the session service must
// implement for creating sessions.
type SessionCreator interface {
	Create(ctx context.Context, name, sessionType string, createdBy uuid.UUID) (*models.SessionDB, error)
}

// CreateSessionRequest represents the JSON body for creating a session
// swagger:model CreateSessionRequest
type CreateSessionRequest struct {
	// Display name
	// required: true
	Name string `json:"name" validate:"required,max=200"`

	// Session type
	// required: true
	// enum: standard,blind
	Type string `json:"type" validate:"required,oneof=standard blind"`
}

// NewCreateSessionHandler returns an HTTP handler for creating a session.
// New sessions start in setup status.
// @Summary Create a tasting session
// @Description Opens a session in setup status. Arbiter only.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createSessionRequest body handlers.CreateSessionRequest true "Session request"
// @Success 201 {object} models.Response "Session created"
// @Failure 400 {object} models.Response "Validation failed"
// @Router /sessions [post]
func NewCreateSessionHandler(svc SessionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var req CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondValidation(w, err)
			return
		}

		session, err := svc.Create(r.Context(), req.Name, req.Type, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusCreated, "Session created successfully", session)
	}
}

// SessionLister defines the interface that the session service must
// implement for the arbiter session listing.
type SessionLister interface {
	ListAll(ctx context.Context) ([]models.SessionWithCounts, error)
}

// NewListSessionsHandler returns an HTTP handler listing every session
// with bottle and participant counts.
// @Summary List all sessions
// @Description Returns every session with aggregate counts. Arbiter only.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Sessions"
// @Router /sessions/admin/all [get]
func NewListSessionsHandler(svc SessionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "", sessions)
	}
}

// AvailableSessionLister defines the interface that the session service
// must implement for the participant-facing session list.
type AvailableSessionLister interface {
	ListAvailable(ctx context.Context) ([]models.SessionWithCounts, error)
}

// NewAvailableSessionsHandler returns an HTTP handler listing active
// sessions a participant can join.
// @Summary List joinable sessions
// @Description Returns active sessions with aggregate counts.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Active sessions"
// @Router /sessions/available [get]
func NewAvailableSessionsHandler(svc AvailableSessionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := svc.ListAvailable(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "", sessions)
	}
}

// SessionGetter defines the interface that the session service must
// implement for the session detail view.
type SessionGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.SessionDetail, error)
}

// NewGetSessionHandler returns an HTTP handler for the session detail.
// @Summary Get a session
// @Description Returns the session with its bottles and enrolled participants. Arbiter only.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response "Session detail"
// @Failure 404 {object} models.Response "Session not found"
// @Router /sessions/{sessionId} [get]
func NewGetSessionHandler(svc SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		detail, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				respondError(w, http.StatusNotFound, "Session not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "", detail)
	}
}

// SessionStatusSetter defines the interface that the session service must
// implement for status transitions.
type SessionStatusSetter interface {
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.SessionDB, error)
}

// SetStatusRequest represents the JSON body for a status transition
// swagger:model SetStatusRequest
type SetStatusRequest struct {
	// Target status
	// required: true
	// enum: setup,active,completed,archived
	Status string `json:"status" validate:"required"`
}

// NewSetSessionStatusHandler returns an HTTP handler for status
// transitions. Activating a session demotes every other active session.
// @Summary Change a session's status
// @Description Transitions the session lifecycle. At most one session is active at a time. Arbiter only.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param setStatusRequest body handlers.SetStatusRequest true "Status transition"
// @Success 200 {object} models.Response "Session updated"
// @Failure 400 {object} models.Response "Invalid session status"
// @Failure 404 {object} models.Response "Session not found"
// @Router /sessions/{sessionId}/status [patch]
func NewSetSessionStatusHandler(svc SessionStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		var req SetStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondValidation(w, err)
			return
		}

		session, err := svc.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSessionStatus):
				respondError(w, http.StatusBadRequest, "Invalid session status")
			case errors.Is(err, services.ErrSessionNotFound):
				respondError(w, http.StatusNotFound, "Session not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Session status updated successfully", session)
	}
}

// SessionDeleter defines the interface that the session service must
// implement for session removal.
type SessionDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewDeleteSessionHandler returns an HTTP handler removing a session with
// its bottles and enrollments. Recorded tastings are left intact.
// @Summary Delete a session
// @Description Removes the session, its bottles, and its enrollments. Arbiter only.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response "Session deleted"
// @Failure 404 {object} models.Response "Session not found"
// @Router /sessions/{sessionId} [delete]
func NewDeleteSessionHandler(svc SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				respondError(w, http.StatusNotFound, "Session not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Session deleted successfully", nil)
	}
}

// BottleAdder defines the interface that the session service must
// implement for registering bottles.
type BottleAdder interface {
	AddBottle(ctx context.Context, sessionID uuid.UUID, bottleNumber int, customName, wineDetails *string) (*models.BottleDB, error)
}

// AddBottleRequest represents the JSON body for registering a bottle
// swagger:model AddBottleRequest
type AddBottleRequest struct {
	// Session-scoped bottle number
	// required: true
	BottleNumber int `json:"bottle_number" validate:"required,min=1"`

	// Optional display name
	CustomName *string `json:"custom_name" validate:"omitempty,max=200"`

	// Opaque wine details payload, stored verbatim
	WineDetails *string `json:"wine_details"`
}

// NewAddBottleHandler returns an HTTP handler for registering a bottle.
// @Summary Add a bottle to a session
// @Description Registers a numbered bottle. Numbers are unique within the session. Arbiter only.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param addBottleRequest body handlers.AddBottleRequest true "Bottle request"
// @Success 201 {object} models.Response "Bottle added"
// @Failure 404 {object} models.Response "Session not found"
// @Failure 409 {object} models.Response "Bottle number already used"
// @Router /sessions/{sessionId}/bottles [post]
func NewAddBottleHandler(svc BottleAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		var req AddBottleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondValidation(w, err)
			return
		}

		bottle, err := svc.AddBottle(r.Context(), sessionID, req.BottleNumber, req.CustomName, req.WineDetails)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				respondError(w, http.StatusNotFound, "Session not found")
			case errors.Is(err, services.ErrBottleNumberTaken):
				respondError(w, http.StatusConflict, "Bottle number already used in this session")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusCreated, "Bottle added successfully", bottle)
	}
}

// BottleRemover defines the interface that the session service must
// implement for removing bottles.
type BottleRemover interface {
	RemoveBottle(ctx context.Context, bottleID uuid.UUID) error
}

// NewRemoveBottleHandler returns an HTTP handler removing a bottle.
// @Summary Remove a bottle
// @Description Deletes a registered bottle by id. Arbiter only.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param bottleId path string true "Bottle ID"
// @Success 200 {object} models.Response "Bottle removed"
// @Failure 404 {object} models.Response "Bottle not found"
// @Router /sessions/bottles/{bottleId} [delete]
func NewRemoveBottleHandler(svc BottleRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bottleID, err := uuid.Parse(chi.URLParam(r, "bottleId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid bottle ID")
			return
		}

		if err := svc.RemoveBottle(r.Context(), bottleID); err != nil {
			switch {
			case errors.Is(err, services.ErrBottleNotFound):
				respondError(w, http.StatusNotFound, "Bottle not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Bottle removed successfully", nil)
	}
}

// SessionJoiner defines the interface that the session service must
// implement for participant self-enrollment.
type SessionJoiner interface {
	Join(ctx context.Context, sessionID, userID uuid.UUID) (*models.UserSessionDB, bool, error)
}

// NewJoinSessionHandler returns an HTTP handler enrolling the caller into
// an active session. Joining twice is not an error.
// @Summary Join a session
// @Description Enrolls the authenticated participant into an active session.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response "Enrollment"
// @Failure 404 {object} models.Response "Session not found or not active"
// @Router /sessions/{sessionId}/join [post]
func NewJoinSessionHandler(svc SessionJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		enrollment, alreadyJoined, err := svc.Join(r.Context(), sessionID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotActive):
				respondError(w, http.StatusNotFound, "Session not found or not active")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		message := "Session joined successfully"
		if alreadyJoined {
			message = "Already joined this session"
		}
		respondData(w, http.StatusOK, message, enrollment)
	}
}

// TasterViewer defines the interface that the session service must
// implement for the enrolled participant's session view.
type TasterViewer interface {
	GetForTaster(ctx context.Context, sessionID, userID uuid.UUID) (*models.SessionDB, []models.BottleDB, *models.UserSessionDB, error)
}

// TasterPayload carries the session view for an enrolled participant.
// swagger:model TasterPayload
type TasterPayload struct {
	Session    *models.SessionDB     `json:"session"`
	Bottles    []models.BottleDB     `json:"bottles"`
	Enrollment *models.UserSessionDB `json:"enrollment"`
}

// NewTasterViewHandler returns an HTTP handler for the tasting view of an
// enrolled participant.
// @Summary Get the taster's session view
// @Description Returns the session, its bottles in tasting order, and the caller's enrollment.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response "Taster view"
// @Failure 403 {object} models.Response "Not enrolled in this session"
// @Failure 404 {object} models.Response "Session not found"
// @Router /sessions/{sessionId}/taster [get]
func NewTasterViewHandler(svc TasterViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		session, bottles, enrollment, err := svc.GetForTaster(r.Context(), sessionID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				respondError(w, http.StatusNotFound, "Session not found")
			case errors.Is(err, services.ErrNotEnrolled):
				respondError(w, http.StatusForbidden, "Not enrolled in this session")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "", TasterPayload{Session: session, Bottles: bottles, Enrollment: enrollment})
	}
}

// ParticipantAdder defines the interface that the session service must
// implement for arbiter-driven enrollment.
type ParticipantAdder interface {
	AddParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (*models.UserSessionDB, error)
}

// AddParticipantRequest represents the JSON body for enrolling a
// participant on their behalf
// swagger:model AddParticipantRequest
type AddParticipantRequest struct {
	// Participant user ID
	// required: true
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// NewAddParticipantHandler returns an HTTP handler enrolling a participant
// into a session regardless of its status.
// @Summary Enroll a participant
// @Description Adds a participant to the session on the arbiter's behalf. Arbiter only.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param addParticipantRequest body handlers.AddParticipantRequest true "Enrollment request"
// @Success 201 {object} models.Response "Participant enrolled"
// @Failure 404 {object} models.Response "Session or participant not found"
// @Failure 409 {object} models.Response "Already enrolled"
// @Router /sessions/{sessionId}/participants [post]
func NewAddParticipantHandler(svc ParticipantAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid session ID")
			return
		}

		var req AddParticipantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == uuid.Nil {
			respondError(w, http.StatusBadRequest, "User ID is required")
			return
		}

		enrollment, err := svc.AddParticipant(r.Context(), sessionID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				respondError(w, http.StatusNotFound, "Session not found")
			case errors.Is(err, services.ErrParticipantNotFound):
				respondError(w, http.StatusNotFound, "Participant not found")
			case errors.Is(err, services.ErrAlreadyEnrolled):
				respondError(w, http.StatusConflict, "Participant already enrolled in this session")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusCreated, "Participant added successfully", enrollment)
	}
}
