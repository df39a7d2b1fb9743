package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/middlewares"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/services"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// EntryLister defines the interface that the service must implement.
type EntryLister interface {
	List(ctx context.Context, habitID int64) ([]models.HabitEntryDB, error)
}

// EntryCreator defines the interface that the service must implement.
type EntryCreator interface {
	Create(ctx context.Context, userID, habitID int64, date time.Time, completed bool, notes string) (*models.HabitEntryDB, error)
}

// CreateHabitEntryRequest represents the JSON body for recording a habit entry
// swagger:model CreateHabitEntryRequest
type CreateHabitEntryRequest struct {
	// Calendar date in YYYY-MM-DD format
	// required: true
	// example: 2026-08-29
	Date string `json:"date"`

	// Whether the habit was completed on the date
	// required: true
	Completed *bool `json:"completed"`

	// Optional notes
	Notes string `json:"notes"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *CreateHabitEntryRequest) Validate() error {
	if req.Date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	if req.Completed == nil {
		return errors.New("completed is required")
	}
	if utf8.RuneCountInString(req.Notes) > 1000 {
		return errors.New("notes must not exceed 1000 characters")
	}
	return nil
}

// NewListHabitEntriesHandler returns an HTTP handler for listing a habit's entries.
// @Summary List habit entries
// @Description Returns the habit's completion entries, newest date first.
// @Tags entries
// @Produce json
// @Param habitID path int true "Habit ID"
// @Success 200 {object} api.Response{data=[]models.HabitEntryDB} "Entries"
// @Failure 400 {object} api.Response "Invalid habit ID"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 403 {object} api.Response "Not the owner"
// @Router /habits/{habitID}/entries [get]
// @Security BearerAuth
func NewListHabitEntriesHandler(svc EntryLister) http.HandlerFunc {
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

		entries, err := svc.List(r.Context(), habitID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Habit entries retrieved successfully", entries)
	}
}

// NewCreateHabitEntryHandler returns an HTTP handler for recording a habit entry.
// @Summary Record a habit entry
// @Description Records a completion entry for the habit on a date. One entry per habit per date.
// @Tags entries
// @Accept json
// @Produce json
// @Param habitID path int true "Habit ID"
// @Param createHabitEntryRequest body handlers.CreateHabitEntryRequest true "Entry creation request"
// @Success 201 {object} api.Response{data=models.HabitEntryDB} "Created entry"
// @Failure 400 {object} api.Response "Invalid input"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 403 {object} api.Response "Not the owner"
// @Failure 409 {object} api.Response "Entry already exists for the date"
// @Router /habits/{habitID}/entries [post]
// @Security BearerAuth
func NewCreateHabitEntryHandler(svc EntryCreator) http.HandlerFunc {
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

		var req CreateHabitEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		date, _ := time.Parse(dateLayout, req.Date)

		entry, err := svc.Create(r.Context(), claims.UserID, habitID, date, *req.Completed, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateEntry):
				api.WriteError(w, http.StatusConflict, "An entry for this date already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusCreated, "Habit entry recorded successfully", entry)
	}
}
