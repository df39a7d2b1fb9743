package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"unicode/utf8"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/middlewares"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
}

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, name, email *string) (*models.UserProfile, error)
}

// UpdateProfileRequest represents the JSON body for a partial profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New display name
	// example: John Doe
	Name *string `json:"name,omitempty"`

	// New email
	// example: john@example.com
	Email *string `json:"email,omitempty"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *UpdateProfileRequest) Validate() error {
	if req.Name == nil && req.Email == nil {
		return errors.New("at least one of name or email must be provided")
	}
	if req.Name != nil {
		if n := utf8.RuneCountInString(*req.Name); n < 2 || n > 100 {
			return errors.New("name must be between 2 and 100 characters")
		}
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return errors.New("a valid email is required")
		}
	}
	return nil
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Description Returns the authenticated user's profile without the password digest.
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=models.UserProfile} "Profile"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 404 {object} api.Response "User not found"
// @Router /auth/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				api.WriteError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Profile retrieved successfully", user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update profile
// @Description Applies a partial update to the authenticated user's name and email.
// @Tags auth
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} api.Response{data=models.UserProfile} "Updated profile"
// @Failure 400 {object} api.Response "Invalid input"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 404 {object} api.Response "User not found"
// @Failure 409 {object} api.Response "Email already in use"
// @Router /auth/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				api.WriteError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrEmailInUse):
				api.WriteError(w, http.StatusConflict, "Email is already in use")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Profile updated successfully", user)
	}
}
