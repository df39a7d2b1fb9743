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
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/password"
	"github.com/metricmind/habit-health-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, name, plaintext string) (*models.UserProfile, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Display name
	// required: true
	// example: John Doe
	Name string `json:"name"`

	// Password
	// required: true
	// example: Secret123
	Password string `json:"password"`
}

// Validate checks the request shape before it reaches the service layer.
func (req *RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return errors.New("a valid email is required")
	}
	if n := utf8.RuneCountInString(req.Name); n < 2 || n > 100 {
		return errors.New("name must be between 2 and 100 characters")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// AuthPayload carries the user projection and the issued token.
// swagger:model AuthPayload
type AuthPayload struct {
	// Registered or authenticated user, without the password digest
	User *models.UserProfile `json:"user"`

	// Signed identity token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is checked against the strength policy and hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} api.Response{data=handlers.AuthPayload} "User registered"
// @Failure 400 {object} api.Response "Invalid input or weak password"
// @Failure 409 {object} api.Response "Email already registered"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			api.WriteErrorDetail(w, http.StatusBadRequest, "Invalid input data", err.Error())
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Name, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				api.WriteError(w, http.StatusConflict, "A user with this email already exists")
			case password.IsPolicyViolation(err):
				api.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				api.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		api.WriteSuccess(w, http.StatusCreated, "User registered successfully", AuthPayload{
			User:  user,
			Token: token,
		})
	}
}
