package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/middlewares"
	"github.com/metricmind/habit-health-api/internal/password"
	"github.com/metricmind/habit-health-api/internal/services"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, oldPlaintext, newPlaintext string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"oldPassword"`

	// New password
	// required: true
	NewPassword string `json:"newPassword"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *ChangePasswordRequest) Validate() error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return errors.New("current and new password are required")
	}
	return nil
}

// NewChangePasswordHandler returns an HTTP handler for changing the caller's password.
// @Summary Change password
// @Description Verifies the current password, checks the new one against the strength policy and stores a new digest. Previously issued tokens stay valid until expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} api.Response "Password changed"
// @Failure 400 {object} api.Response "Wrong current password or weak new password"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 404 {object} api.Response "User not found"
// @Router /auth/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		err := svc.ChangePassword(r.Context(), claims.UserID, req.OldPassword, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				api.WriteError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrInvalidOldPassword):
				api.WriteError(w, http.StatusBadRequest, "Current password is incorrect")
			case password.IsPolicyViolation(err):
				api.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Password changed successfully", nil)
	}
}
