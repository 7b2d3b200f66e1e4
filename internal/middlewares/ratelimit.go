package middlewares

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// RateLimiter implements a fixed-window per-client counter backed by Redis.
// Counting is best effort: if Redis is unreachable the request passes through.
type RateLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// The prefix keeps independently configured limiters from sharing counters.
func NewRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// clientIP prefers X-Forwarded-For so limits survive a reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware counts the request and rejects with 429 once the window limit
// is exceeded. The window starts at the first request for the key.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.client == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", l.prefix, clientIP(r))

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			logger.Log.Warnw("rate limit counter unavailable", "key", key, "err", err)
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
				logger.Log.Warnw("rate limit expire failed", "key", key, "err", err)
			}
		}

		if count > int64(l.limit) {
			logger.Log.Warnw("rate limit exceeded", "key", key, "count", count, "limit", l.limit)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(models.Response{
				Success: false,
				Message: "Too many requests, please try again later",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
