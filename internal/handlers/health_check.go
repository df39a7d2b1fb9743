package handlers

import (
	"net/http"
	"time"

	"github.com/metricmind/habit-health-api/internal/api"
)

// HealthCheckPayload carries liveness details.
type HealthCheckPayload struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// NewHealthCheckHandler returns an HTTP handler reporting service liveness.
// @Summary Health check
// @Description Returns the service status, current time and build version.
// @Tags health
// @Produce json
// @Success 200 {object} api.Response{data=handlers.HealthCheckPayload} "Service is up"
// @Router /health-check [get]
func NewHealthCheckHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteSuccess(w, http.StatusOK, "API is running", HealthCheckPayload{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   version,
		})
	}
}
