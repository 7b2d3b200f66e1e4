package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/jwt"
	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountChecker verifies the token's account still exists and is active.
type AccountChecker interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.Response{Success: false, Message: message})
}

// AuthMiddleware validates the bearer token and re-checks the account on
// every request, so deleted or disabled accounts are cut off immediately.
// The user id is stored in the request context.
func AuthMiddleware(tokener Tokener, users AccountChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w, "Authentication required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("account lookup failed", "user_id", claims.UserID, "err", err)
				unauthorized(w, "Invalid or expired token")
				return
			}
			if user == nil || !user.IsActive {
				logger.Log.Warnw("token for missing or disabled account", "user_id", claims.UserID)
				unauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
