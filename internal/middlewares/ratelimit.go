package middlewares

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
)

// RateLimitStore counts requests per key within a fixed window.
type RateLimitStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitMiddleware rejects requests once a client address exceeds the
// limit for the given scope within the window. A limiter store outage is
// logged and the request is allowed through.
func RateLimitMiddleware(store RateLimitStore, scope string, limit int64, window time.Duration, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := fmt.Sprintf("ratelimit:%s:%s", scope, clientIP(r))
			count, err := store.Incr(ctx, key, window)
			if err != nil {
				logger.Log.Errorw("rate limit store failure", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				api.WriteError(w, http.StatusTooManyRequests, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the client address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
