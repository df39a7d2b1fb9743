package services

import (
	"context"
	"errors"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/password"
	"github.com/metricmind/habit-health-api/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email is already in use")
	ErrInvalidOldPassword = errors.New("current password is incorrect")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, name, passwordHash string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, name, email *string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error)
}

// TokenGenerator defines an interface for issuing identity tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles registration, login, profile management and password changes.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
	events EventWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, events EventWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
		events: events,
	}
}

// Register creates a new user and issues a token bound to it.
// Password policy errors are returned as-is so callers can surface the rule message.
func (svc *AuthService) Register(ctx context.Context, email, name, plaintext string) (*models.UserProfile, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	if err := password.ValidateStrength(plaintext); err != nil {
		return nil, "", err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Create(ctx, email, name, hash)
	if err != nil {
		// A concurrent registration can still hit the unique index.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	publishEvent(ctx, svc.events, user.ID, "user.registered", 0)

	return user.Profile(), token, nil
}

// Login authenticates a user and issues a fresh token. An unknown email and
// a wrong password collapse into the same error, so callers cannot tell
// registered emails apart from unregistered ones.
func (svc *AuthService) Login(ctx context.Context, email, plaintext string) (*models.UserProfile, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := password.Compare(plaintext, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to verify password", "userID", user.ID, "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user.Profile(), token, nil
}

// GetProfile returns the stored user without the password digest.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Profile(), nil
}

// UpdateProfile applies a partial update to name and email.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID int64, name, email *string) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if email != nil && *email != user.Email {
		other, err := svc.reader.GetByEmail(ctx, *email)
		if err != nil {
			logger.Log.Errorw("failed to check email in use", "err", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailInUse
		}
	}

	updated, err := svc.writer.Update(ctx, userID, name, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrEmailInUse
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	return updated.Profile(), nil
}

// ChangePassword verifies the old password and stores a new digest.
// Previously issued tokens stay valid until they expire.
func (svc *AuthService) ChangePassword(ctx context.Context, userID int64, oldPlaintext, newPlaintext string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := password.Compare(oldPlaintext, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return ErrInvalidOldPassword
		}
		logger.Log.Errorw("failed to verify password", "userID", userID, "err", err)
		return err
	}

	if err := password.ValidateStrength(newPlaintext); err != nil {
		return err
	}

	hash, err := password.Hash(newPlaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	ok, err := svc.writer.UpdatePassword(ctx, userID, hash)
	if err != nil {
		logger.Log.Errorw("failed to update password", "userID", userID, "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	publishEvent(ctx, svc.events, userID, "user.password_changed", 0)

	return nil
}
