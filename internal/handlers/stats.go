package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/middlewares"
	"github.com/winetasting-app/backend/internal/models"
)

// UserStatisticsReader defines the interface that the stats service must
// implement for per-user statistics.
type UserStatisticsReader interface {
	UserStatistics(ctx context.Context, userID uuid.UUID) (*models.UserStatisticsView, error)
}

// NewUserStatisticsHandler returns an HTTP handler for the caller's
// tasting statistics.
// @Summary Get the user's tasting statistics
// @Description Returns totals, extremes, score buckets, and activity for the caller.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Statistics"
// @Router /tastings/statistics [get]
func NewUserStatisticsHandler(svc UserStatisticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		view, err := svc.UserStatistics(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "", view)
	}
}

// BottleRankingReader defines the interface that the stats service must
// implement for the caller's bottle leaderboard.
type BottleRankingReader interface {
	BottleRankings(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.BottleRankingView, int, error)
}

// RankingsPayload carries one page of the bottle leaderboard.
// swagger:model RankingsPayload
type RankingsPayload struct {
	Rankings   []models.BottleRankingView `json:"rankings"`
	Pagination models.Pagination          `json:"pagination"`
}

// NewBottleRankingsHandler returns an HTTP handler ranking the caller's
// bottles by average score.
// @Summary Get the user's bottle rankings
// @Description Groups the caller's tastings by bottle identifier and ranks the groups by average score.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.Response "Rankings"
// @Router /tastings/rankings [get]
func NewBottleRankingsHandler(svc BottleRankingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		page, limit := parsePagination(r, defaultPageLimit)
		rankings, total, err := svc.BottleRankings(r.Context(), userID, page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "", RankingsPayload{
			Rankings:   rankings,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}

// GlobalStatisticsReader defines the interface that the stats service must
// implement for the all-user summary.
type GlobalStatisticsReader interface {
	GlobalStatistics(ctx context.Context) (*models.GlobalStatisticsView, error)
}

// NewGlobalStatisticsHandler returns an HTTP handler for the all-user
// statistics summary visible to any authenticated user.
// @Summary Get global tasting statistics
// @Description Returns all-user totals and 30-day activity.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Global statistics"
// @Router /tastings/global-statistics [get]
func NewGlobalStatisticsHandler(svc GlobalStatisticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.GlobalStatistics(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "", view)
	}
}

// DetailedStatisticsReader defines the interface that the stats service
// must implement for the arbiter dashboard.
type DetailedStatisticsReader interface {
	DetailedGlobalStatistics(ctx context.Context) (*models.DetailedStatisticsView, error)
}

// NewDetailedStatisticsHandler returns an HTTP handler for the arbiter
// dashboard with the top-10 leaderboard.
// @Summary Get detailed global statistics
// @Description Returns the global score summary with the top-10 participants. Arbiter only.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Detailed statistics"
// @Router /tastings/admin/detailed-statistics [get]
func NewDetailedStatisticsHandler(svc DetailedStatisticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.DetailedGlobalStatistics(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondData(w, http.StatusOK, "", view)
	}
}

// GlobalRankingReader defines the interface that the stats service must
// implement for the cross-user leaderboard.
type GlobalRankingReader interface {
	GlobalBottleRankings(ctx context.Context, page, limit int) ([]models.BottleRankingView, int, error)
}

// NewGlobalRankingsHandler returns an HTTP handler ranking bottles across
// every user, with the distinct taster count per group.
// @Summary Get global bottle rankings
// @Description Groups every user's tastings by bottle identifier and ranks the groups by average score. Arbiter only.
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.Response "Rankings"
// @Router /tastings/admin/rankings [get]
func NewGlobalRankingsHandler(svc GlobalRankingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r, defaultPageLimit)
		rankings, total, err := svc.GlobalBottleRankings(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "", RankingsPayload{
			Rankings:   rankings,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}
