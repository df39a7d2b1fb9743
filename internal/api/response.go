// Package api defines the uniform response envelope used by every endpoint.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/metricmind/habit-health-api/internal/logger"
)

// Response is the envelope wrapped around every JSON response.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Human-readable outcome message
	Message string `json:"message"`

	// Payload, present on success
	Data interface{} `json:"data,omitempty"`

	// Error detail, present on some failures
	Error string `json:"error,omitempty"`
}

// WriteJSON writes the envelope with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// WriteSuccess writes a successful envelope with an optional payload.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	WriteJSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteError writes a failure envelope with a user-facing message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}

// WriteErrorDetail writes a failure envelope with an additional error detail.
func WriteErrorDetail(w http.ResponseWriter, statusCode int, message, detail string) {
	WriteJSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
