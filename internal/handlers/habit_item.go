package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/middlewares"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/services"
)

// HabitGetter defines the interface that the service must implement.
type HabitGetter interface {
	Get(ctx context.Context, id, userID int64) (*models.HabitDB, error)
}

// HabitUpdater defines the interface that the service must implement.
type HabitUpdater interface {
	Update(ctx context.Context, id, userID int64, title, description, frequency *string, isActive *bool) (*models.HabitDB, error)
}

// HabitDeleter defines the interface that the service must implement.
type HabitDeleter interface {
	Delete(ctx context.Context, id, userID int64) error
}

// HabitToggler defines the interface that the service must implement.
type HabitToggler interface {
	Toggle(ctx context.Context, id, userID int64) (*models.HabitDB, error)
}

// UpdateHabitRequest represents the JSON body for a partial habit update
// swagger:model UpdateHabitRequest
type UpdateHabitRequest struct {
	// New title
	// example: Evening run
	Title *string `json:"title,omitempty"`

	// New description
	Description *string `json:"description,omitempty"`

	// New frequency: daily, weekly or monthly
	Frequency *string `json:"frequency,omitempty"`

	// New active flag
	IsActive *bool `json:"isActive,omitempty"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *UpdateHabitRequest) Validate() error {
	if req.Title != nil {
		if n := utf8.RuneCountInString(*req.Title); n < 1 || n > 255 {
			return errors.New("title must be between 1 and 255 characters")
		}
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > 1000 {
		return errors.New("description must not exceed 1000 characters")
	}
	if req.Frequency != nil && !models.IsValidFrequency(*req.Frequency) {
		return errors.New("frequency must be daily, weekly or monthly")
	}
	return nil
}

// habitIDFromRequest parses the {habitID} URL parameter.
func habitIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "habitID"), 10, 64)
}

// NewGetHabitHandler returns an HTTP handler for reading a single habit.
// @Summary Get a habit
// @Description Returns a habit owned by the authenticated user.
// @Tags habits
// @Produce json
// @Param habitID path int true "Habit ID"
// @Success 200 {object} api.Response{data=models.HabitDB} "Habit"
// @Failure 400 {object} api.Response "Invalid habit ID"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 403 {object} api.Response "Not the owner"
// @Router /habits/{habitID} [get]
// @Security BearerAuth
func NewGetHabitHandler(svc HabitGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		habitID, err := habitIDFromRequest(r)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid habit ID")
			return
		}

		habit, err := svc.Get(r.Context(), habitID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHabitNotFound):
				api.WriteError(w, http.StatusNotFound, "Habit not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Habit retrieved successfully", habit)
	}
}

// NewUpdateHabitHandler returns an HTTP handler for updating a habit.
// @Summary Update a habit
// @Description Applies a partial update to a habit owned by the authenticated user.
// @Tags habits
// @Accept json
// @Produce json
// @Param habitID path int true "Habit ID"
// @Param updateHabitRequest body handlers.UpdateHabitRequest true "Habit update request"
// @Success 200 {object} api.Response{data=models.HabitDB} "Updated habit"
// @Failure 400 {object} api.Response "Invalid input"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 403 {object} api.Response "Not the owner"
// @Router /habits/{habitID} [put]
// @Security BearerAuth
func NewUpdateHabitHandler(svc HabitUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		habitID, err := habitIDFromRequest(r)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid habit ID")
			return
		}

		var req UpdateHabitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		habit, err := svc.Update(r.Context(), habitID, claims.UserID, req.Title, req.Description, req.Frequency, req.IsActive)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHabitNotFound):
				api.WriteError(w, http.StatusNotFound, "Habit not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Habit updated successfully", habit)
	}
}

// NewDeleteHabitHandler returns an HTTP handler for deleting a habit.
// @Summary Delete a habit
// @Description Deletes a habit owned by the authenticated user, along with its entries.
// @Tags habits
// @Produce json
// @Param habitID path int true "Habit ID"
// @Success 200 {object} api.Response "Habit deleted"
// @Failure 400 {object} api.Response "Invalid habit ID"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 403 {object} api.Response "Not the owner"
// @Router /habits/{habitID} [delete]
// @Security BearerAuth
func NewDeleteHabitHandler(svc HabitDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		habitID, err := habitIDFromRequest(r)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid habit ID")
			return
		}

		if err := svc.Delete(r.Context(), habitID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrHabitNotFound):
				api.WriteError(w, http.StatusNotFound, "Habit not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Habit deleted successfully", nil)
	}
}

// NewToggleHabitHandler returns an HTTP handler for toggling a habit's active flag.
// @Summary Toggle a habit
// @Description Flips the active flag of a habit owned by the authenticated user.
// @Tags habits
// @Produce json
// @Param habitID path int true "Habit ID"
// @Success 200 {object} api.Response{data=models.HabitDB} "Toggled habit"
// @Failure 400 {object} api.Response "Invalid habit ID"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 403 {object} api.Response "Not the owner"
// @Router /habits/{habitID}/toggle [patch]
// @Security BearerAuth
func NewToggleHabitHandler(svc HabitToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		habitID, err := habitIDFromRequest(r)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid habit ID")
			return
		}

		habit, err := svc.Toggle(r.Context(), habitID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHabitNotFound):
				api.WriteError(w, http.StatusNotFound, "Habit not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		message := "Habit deactivated successfully"
		if habit.IsActive {
			message = "Habit activated successfully"
		}
		api.WriteSuccess(w, http.StatusOK, message, habit)
	}
}
