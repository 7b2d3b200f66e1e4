package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// RequireArbiter restricts a route to the arbiter. The role is read from the
// database on every request rather than trusted from the token, so a role
// change takes effect immediately.
func RequireArbiter(users AccountChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := UserIDFromContext(ctx)
			if !ok {
				unauthorized(w, "Authentication required")
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("role lookup failed", "user_id", userID, "err", err)
				unauthorized(w, "Invalid or expired token")
				return
			}
			if user == nil || user.Role != models.RoleArbiter {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(models.Response{Success: false, Message: "Arbiter access required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
