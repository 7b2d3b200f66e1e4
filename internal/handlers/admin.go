package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

// UserLister defines the interface that the admin service must implement
// for the participant listing.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.ParticipantView, error)
}

// NewListUsersHandler returns an HTTP handler listing every participant.
// @Summary List participants
// @Description Returns every participant account with tasting count and average score. Arbiter only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Participants"
// @Failure 403 {object} models.Response "Arbiter access required"
// @Router /auth/admin/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "", users)
	}
}

// ParticipantCreator defines the interface that the admin service must
// implement for inviting participants.
type ParticipantCreator interface {
	CreateParticipant(ctx context.Context, firstName, email string) (*models.UserDB, string, error)
}

// CreateUserRequest represents the JSON body for inviting a participant
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	FirstName string `json:"first_name" validate:"required,max=100"`

	// Email
	// required: true
	Email string `json:"email" validate:"required,email"`
}

// CreatedUserPayload carries the invited account and its activation link.
// swagger:model CreatedUserPayload
type CreatedUserPayload struct {
	User           *models.UserDB `json:"user"`
	ActivationLink string         `json:"activation_link"`
}

// NewCreateUserHandler returns an HTTP handler for inviting a participant.
// The username is derived from the email local part; the account stays in
// password-setup state until the activation link is used.
// @Summary Invite a participant
// @Description Creates a participant account and emails the activation link. Arbiter only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createUserRequest body handlers.CreateUserRequest true "Invitation request"
// @Success 201 {object} models.Response "Participant created"
// @Failure 409 {object} models.Response "Email already registered"
// @Router /auth/admin/users [post]
func NewCreateUserHandler(svc ParticipantCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondValidation(w, err)
			return
		}

		user, link, err := svc.CreateParticipant(r.Context(), req.FirstName, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				respondError(w, http.StatusConflict, "Email already registered")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusCreated, "Participant created successfully", CreatedUserPayload{User: user, ActivationLink: link})
	}
}

// UserDeleter defines the interface that the admin service must implement
// for removing participants.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// NewDeleteUserHandler returns an HTTP handler removing a participant with
// all of their tastings.
// @Summary Delete a participant
// @Description Removes the account and every tasting they recorded. Arbiter accounts cannot be deleted.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.Response "Participant deleted"
// @Failure 403 {object} models.Response "Arbiter accounts cannot be deleted"
// @Failure 404 {object} models.Response "User not found"
// @Router /auth/admin/users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				respondError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrArbiterUndeletable):
				respondError(w, http.StatusForbidden, "Arbiter accounts cannot be deleted")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Participant deleted successfully", nil)
	}
}

// DataResetter defines the interface that the admin service must implement
// for the full data reset.
type DataResetter interface {
	ResetAllData(ctx context.Context) error
}

// NewResetDataHandler returns an HTTP handler wiping all application data
// except arbiter accounts.
// @Summary Reset all application data
// @Description Deletes every tasting, session, bottle, enrollment, reset token, and participant account. Arbiter accounts survive.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Data reset"
// @Failure 403 {object} models.Response "Arbiter access required"
// @Router /auth/admin/reset-all-data [delete]
func NewResetDataHandler(svc DataResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ResetAllData(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "All data reset successfully", nil)
	}
}
