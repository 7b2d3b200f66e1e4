package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/middlewares"
	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

// Page sizes applied when the request does not set a limit.
const (
	defaultPageLimit      = 20
	defaultAdminPageLimit = 50
)

// TastingCreator defines the interface that the tasting service must
// implement for submissions.
type TastingCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in services.TastingInput) (*models.TastingDB, error)
}

// CreateTastingRequest represents the JSON body for recording a tasting.
// Omitted wine fields get placeholder defaults; omitted sub-scores default
// to the scale midpoint.
// swagger:model CreateTastingRequest
type CreateTastingRequest struct {
	// Free-text bottle grouping label
	BottleIdentifier *string `json:"bottle_identifier" validate:"omitempty,max=200"`

	// Wine name
	WineName *string `json:"wine_name" validate:"omitempty,max=200"`

	// Wine type
	WineType *string `json:"wine_type" validate:"omitempty,max=100"`

	// Vintage year
	Vintage *int `json:"vintage"`

	// Producing region
	Region *string `json:"region" validate:"omitempty,max=200"`

	// Sub-scores on a 1-5 scale
	AppearanceScore *int `json:"appearance_score" validate:"omitempty,min=1,max=5"`
	AromaScore      *int `json:"aroma_score" validate:"omitempty,min=1,max=5"`
	TasteScore      *int `json:"taste_score" validate:"omitempty,min=1,max=5"`
	FinishScore     *int `json:"finish_score" validate:"omitempty,min=1,max=5"`

	// Final score on the 20-point scale
	// required: true
	FinalScore *float64 `json:"final_score" validate:"required,gte=0,lte=20"`

	// Free-text notes
	Notes *string `json:"notes"`

	// When the tasting happened, defaults to now
	TastingDate *time.Time `json:"tasting_date"`
}

// NewCreateTastingHandler returns an HTTP handler for recording a tasting.
// @Summary Record a tasting
// @Description Stores a scored tasting for the authenticated user. The final score is trusted as submitted.
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createTastingRequest body handlers.CreateTastingRequest true "Tasting submission"
// @Success 201 {object} models.Response "Tasting recorded"
// @Failure 400 {object} models.Response "Validation failed"
// @Router /tastings [post]
func NewCreateTastingHandler(svc TastingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var req CreateTastingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondValidation(w, err)
			return
		}

		tasting, err := svc.Create(r.Context(), userID, services.TastingInput{
			BottleIdentifier: req.BottleIdentifier,
			WineName:         req.WineName,
			WineType:         req.WineType,
			Vintage:          req.Vintage,
			Region:           req.Region,
			AppearanceScore:  req.AppearanceScore,
			AromaScore:       req.AromaScore,
			TasteScore:       req.TasteScore,
			FinishScore:      req.FinishScore,
			FinalScore:       *req.FinalScore,
			Notes:            req.Notes,
			TastingDate:      req.TastingDate,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusCreated, "Tasting recorded successfully", tasting)
	}
}

// TastingLister defines the interface that the tasting service must
// implement for the user's tasting history.
type TastingLister interface {
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.TastingDB, int, error)
}

// TastingListPayload carries one page of tastings.
// swagger:model TastingListPayload
type TastingListPayload struct {
	Tastings   []models.TastingDB `json:"tastings"`
	Pagination models.Pagination  `json:"pagination"`
}

// NewListTastingsHandler returns an HTTP handler paging through the
// caller's tastings, most recent first.
// @Summary List the user's tastings
// @Description Returns one page of the caller's tastings with pagination metadata.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.Response "Tastings"
// @Router /tastings [get]
func NewListTastingsHandler(svc TastingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		page, limit := parsePagination(r, defaultPageLimit)
		tastings, total, err := svc.List(r.Context(), userID, page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "", TastingListPayload{
			Tastings:   tastings,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}

// TastingGetter defines the interface that the tasting service must
// implement for single-tasting reads.
type TastingGetter interface {
	Get(ctx context.Context, id, userID uuid.UUID) (*models.TastingDB, error)
}

// NewGetTastingHandler returns an HTTP handler for one of the caller's
// tastings.
// @Summary Get a tasting
// @Description Returns one of the caller's tastings by id.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tasting ID"
// @Success 200 {object} models.Response "Tasting"
// @Failure 404 {object} models.Response "Tasting not found"
// @Router /tastings/{id} [get]
func NewGetTastingHandler(svc TastingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid tasting ID")
			return
		}

		tasting, err := svc.Get(r.Context(), id, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTastingNotFound):
				respondError(w, http.StatusNotFound, "Tasting not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "", tasting)
	}
}

// TastingDeleter defines the interface that the tasting service must
// implement for deletions.
type TastingDeleter interface {
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// NewDeleteTastingHandler returns an HTTP handler deleting one of the
// caller's tastings. Another user's tasting reads as not found.
// @Summary Delete a tasting
// @Description Removes one of the caller's tastings.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tasting ID"
// @Success 200 {object} models.Response "Tasting deleted"
// @Failure 404 {object} models.Response "Tasting not found"
// @Router /tastings/{id} [delete]
func NewDeleteTastingHandler(svc TastingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid tasting ID")
			return
		}

		if err := svc.Delete(r.Context(), id, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrTastingNotFound):
				respondError(w, http.StatusNotFound, "Tasting not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Tasting deleted successfully", nil)
	}
}

// AllTastingLister defines the interface that the tasting service must
// implement for the arbiter's cross-user listing.
type AllTastingLister interface {
	ListAll(ctx context.Context, page, limit int) ([]models.TastingWithUser, int, error)
}

// AdminTastingListPayload carries one page of tastings with owner identity.
// swagger:model AdminTastingListPayload
type AdminTastingListPayload struct {
	Tastings   []models.TastingWithUser `json:"tastings"`
	Pagination models.Pagination        `json:"pagination"`
}

// NewListAllTastingsHandler returns an HTTP handler paging through every
// user's tastings.
// @Summary List all tastings
// @Description Returns one page of every user's tastings with owner identity. Arbiter only.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} models.Response "Tastings"
// @Router /tastings/admin/all [get]
func NewListAllTastingsHandler(svc AllTastingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r, defaultAdminPageLimit)
		tastings, total, err := svc.ListAll(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "", AdminTastingListPayload{
			Tastings:   tastings,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}
