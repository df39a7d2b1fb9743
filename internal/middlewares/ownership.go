package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
)

// OwnershipVerifier checks that a habit belongs to a user in a single lookup.
type OwnershipVerifier interface {
	VerifyOwnership(ctx context.Context, habitID, userID int64) (bool, error)
}

// HabitOwnershipMiddleware gates per-habit routes. It runs after the auth
// middleware and rejects any access by a non-owner. A habit owned by someone
// else and a habit that does not exist are indistinguishable to the caller.
func HabitOwnershipMiddleware(verifier OwnershipVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims := GetClaimsFromContext(ctx)
			if claims == nil {
				api.WriteError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			habitID, err := strconv.ParseInt(chi.URLParam(r, "habitID"), 10, 64)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, "Invalid habit ID")
				return
			}

			isOwner, err := verifier.VerifyOwnership(ctx, habitID, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to verify habit ownership", "habitID", habitID, "userID", claims.UserID, "error", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !isOwner {
				api.WriteError(w, http.StatusForbidden, "You do not have permission to access this habit")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
