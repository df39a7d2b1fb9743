package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/middlewares"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/services"
)

// MetricLister defines the interface that the service must implement.
type MetricLister interface {
	List(ctx context.Context, userID int64, metricType string) ([]models.HealthMetricDB, error)
}

// MetricCreator defines the interface that the service must implement.
type MetricCreator interface {
	Create(ctx context.Context, userID int64, metricType string, value float64, unit string, date time.Time, notes string) (*models.HealthMetricDB, error)
}

// MetricDeleter defines the interface that the service must implement.
type MetricDeleter interface {
	Delete(ctx context.Context, id, userID int64) error
}

// CreateHealthMetricRequest represents the JSON body for recording a health metric
// swagger:model CreateHealthMetricRequest
type CreateHealthMetricRequest struct {
	// Metric type: weight, blood_pressure, heart_rate, sleep_hours, water_intake or steps
	// required: true
	// example: weight
	Type string `json:"type"`

	// Measured value
	// required: true
	// example: 72.5
	Value float64 `json:"value"`

	// Unit of measure
	// required: true
	// example: kg
	Unit string `json:"unit"`

	// Calendar date in YYYY-MM-DD format
	// required: true
	// example: 2026-08-29
	Date string `json:"date"`

	// Optional notes
	Notes string `json:"notes"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *CreateHealthMetricRequest) Validate() error {
	if !models.IsValidMetricType(req.Type) {
		return errors.New("type must be one of weight, blood_pressure, heart_rate, sleep_hours, water_intake or steps")
	}
	if req.Value <= 0 {
		return errors.New("value must be greater than zero")
	}
	if n := utf8.RuneCountInString(req.Unit); n < 1 || n > 50 {
		return errors.New("unit must be between 1 and 50 characters")
	}
	if req.Date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	if utf8.RuneCountInString(req.Notes) > 1000 {
		return errors.New("notes must not exceed 1000 characters")
	}
	return nil
}

// NewListHealthMetricsHandler returns an HTTP handler for listing the caller's metrics.
// @Summary List health metrics
// @Description Returns the authenticated user's health metrics, newest date first. Pass type to filter by metric type.
// @Tags metrics
// @Produce json
// @Param type query string false "Metric type filter"
// @Success 200 {object} api.Response{data=[]models.HealthMetricDB} "Metrics"
// @Failure 400 {object} api.Response "Invalid metric type"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Router /metrics [get]
// @Security BearerAuth
func NewListHealthMetricsHandler(svc MetricLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		metricType := r.URL.Query().Get("type")

		metrics, err := svc.List(r.Context(), claims.UserID, metricType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMetricType):
				api.WriteError(w, http.StatusBadRequest, "Invalid metric type")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Health metrics retrieved successfully", metrics)
	}
}

// NewCreateHealthMetricHandler returns an HTTP handler for recording a metric.
// @Summary Record a health metric
// @Description Records a health measurement for the authenticated user.
// @Tags metrics
// @Accept json
// @Produce json
// @Param createHealthMetricRequest body handlers.CreateHealthMetricRequest true "Metric creation request"
// @Success 201 {object} api.Response{data=models.HealthMetricDB} "Created metric"
// @Failure 400 {object} api.Response "Invalid input"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Router /metrics [post]
// @Security BearerAuth
func NewCreateHealthMetricHandler(svc MetricCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req CreateHealthMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		date, _ := time.Parse(dateLayout, req.Date)

		metric, err := svc.Create(r.Context(), claims.UserID, req.Type, req.Value, req.Unit, date, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMetricType):
				api.WriteError(w, http.StatusBadRequest, "Invalid metric type")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusCreated, "Health metric recorded successfully", metric)
	}
}

// NewDeleteHealthMetricHandler returns an HTTP handler for deleting a metric.
// @Summary Delete a health metric
// @Description Deletes a metric owned by the authenticated user.
// @Tags metrics
// @Produce json
// @Param metricID path int true "Metric ID"
// @Success 200 {object} api.Response "Metric deleted"
// @Failure 400 {object} api.Response "Invalid metric ID"
// @Failure 401 {object} api.Response "Missing, invalid or expired token"
// @Failure 404 {object} api.Response "Metric not found"
// @Router /metrics/{metricID} [delete]
// @Security BearerAuth
func NewDeleteHealthMetricHandler(svc MetricDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			api.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		metricID, err := strconv.ParseInt(chi.URLParam(r, "metricID"), 10, 64)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid metric ID")
			return
		}

		if err := svc.Delete(r.Context(), metricID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrMetricNotFound):
				api.WriteError(w, http.StatusNotFound, "Health metric not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Health metric deleted successfully", nil)
	}
}
