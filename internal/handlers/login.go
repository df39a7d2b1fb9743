package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/metricmind/habit-health-api/internal/api"
	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, plaintext string) (*models.UserProfile, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: Secret123
	Password string `json:"password"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *LoginRequest) Validate() error {
	if req.Email == "" {
		return errors.New("email is required")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and return a fresh identity token. An unknown email and a wrong password produce the same response.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} api.Response{data=handlers.AuthPayload} "Authenticated"
// @Failure 400 {object} api.Response "Invalid request body"
// @Failure 401 {object} api.Response "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				api.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusOK, "Login successful", AuthPayload{
			User:  user,
			Token: token,
		})
	}
}
