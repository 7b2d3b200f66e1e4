package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthPayload reports service and database status.
// swagger:model HealthPayload
type HealthPayload struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler reporting liveness and
// database connectivity.
// @Summary Health check
// @Description Reports service status and database reachability.
// @Tags health
// @Produce json
// @Success 200 {object} models.Response "Healthy"
// @Failure 503 {object} models.Response "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := HealthPayload{
			Status:    "ok",
			Database:  "ok",
			Timestamp: time.Now().UTC(),
		}

		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check database ping failed", "err", err)
			payload.Status = "degraded"
			payload.Database = "unreachable"
			writeJSON(w, http.StatusServiceUnavailable, models.Response{Success: false, Data: payload})
			return
		}

		respondData(w, http.StatusOK, "", payload)
	}
}
