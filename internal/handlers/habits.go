package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/middlewares"
	"github.com/metricmind/habit-health-api/internal/models"
)

// HabitLister defines the interface that the service must implement.
type HabitLister interface {
	List(ctx context.Context, userID int64, activeOnly bool) ([]models.HabitDB, error)
}

// HabitCreator defines the interface that the service must implement.
type HabitCreator interface {
	Create(ctx context.Context, userID int64, title, description, frequency string) (*models.HabitDB, error)
}

// CreateHabitRequest represents the JSON body for creating a habit
// swagger:model CreateHabitRequest
type CreateHabitRequest struct {
	// Habit title
	// required: true
	// example: Morning run
	Title string `json:"title"`

	// Optional description
	// example: 5km around the park
	Description string `json:"description"`

	// Frequency: daily, weekly or monthly
	// required: true
	// example: daily
	Frequency string `json:"frequency"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *CreateHabitRequest) Validate() error {
	if n := utf8.RuneCountInString(req.Title); n < 1 || n > 255 {
		return errors.New("title must be between 1 and 255 characters")
	}
	if utf8.RuneCountInString(req.Description) > 1000 {
		return errors.New("description must not exceed 1000 characters")
	}
	if !models.IsValidFrequency(req.Frequency) {
		return errors.New("frequency must be daily, weekly or monthly")
	}
	return nil
}

// NewListHabitsHandler returns an HTTP handler for listing the caller's habits.
// @Summary List habits
// @Description Returns the authenticated user's habits, newest first. Pass active=true to filter out inactive habits.
// @Tags habits
// @Produce json
// @Param active query bool false "Only active habits"
// @Success 200 {object} api.Response{data=[]models.HabitDB} "Habits"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Router /habits [get]
// @Security BearerAuth
func NewListHabitsHandler(svc HabitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		activeOnly := r.URL.Query().Get("active") == "true"

		habits, err := svc.List(r.Context(), claims.UserID, activeOnly)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Habits retrieved successfully", habits)
	}
}

// NewCreateHabitHandler returns an HTTP handler for creating a habit.
// @Summary Create a habit
// @Description Creates a habit owned by the authenticated user.
// @Tags habits
// @Accept json
// @Produce json
// @Param createHabitRequest body handlers.CreateHabitRequest true "Habit creation request"
// @Success 201 {object} api.Response{data=models.HabitDB} "Created habit"
// @Failure 400 {object} api.Response "Invalid input"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Router /habits [post]
// @Security BearerAuth
func NewCreateHabitHandler(svc HabitCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req CreateHabitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		habit, err := svc.Create(r.Context(), claims.UserID, req.Title, req.Description, req.Frequency)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		api.WriteSuccess(w, http.StatusCreated, "Habit created successfully", habit)
	}
}
