package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/password"
	"github.com/metricmind/habit-health-api/internal/repositories"
	"github.com/metricmind/habit-health-api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			password: "Secret123",
			wantErr:  nil,
		},
		{
			name:         "email already taken",
			email:        "bob@example.com",
			password:     "Secret123",
			existingUser: &models.UserDB{ID: 1, Email: "bob@example.com"},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:     "weak password",
			email:    "carol@example.com",
			password: "abc12",
			wantErr:  password.ErrTooShort,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "Secret123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "dan@example.com",
			password:  "Secret123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil && !password.IsPolicyViolation(tt.wantErr) {
				stored := &models.UserDB{ID: 10, Email: tt.email, Name: "Test User"}
				if tt.writerErr != nil {
					stored = nil
				}
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.email, "Test User", gomock.Any()).
					Return(stored, tt.writerErr)

				if tt.writerErr == nil {
					mockTokens.EXPECT().
						Generate(gomock.Any(), int64(10), tt.email).
						Return("token123", nil)
				}
			}

			user, token, err := svc.Register(context.Background(), tt.email, "Test User", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, "token123", token)
			}
		})
	}
}

func TestAuthService_Register_DuplicateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	// The pre-check passes but the insert still hits the unique index.
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "race@example.com").
		Return(nil, nil)
	mockWriter.EXPECT().
		Create(gomock.Any(), "race@example.com", "Racer", gomock.Any()).
		Return(nil, repositories.ErrUniqueViolation)

	user, token, err := svc.Register(context.Background(), "race@example.com", "Racer", "Secret123")
	assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	plaintext := "Secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      &models.UserDB{ID: 1, Email: "alice@example.com", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: plaintext,
		},
		{
			name:      "unknown email",
			email:     "bob@example.com",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: plaintext,
		},
		{
			name:      "wrong password",
			email:     "carol@example.com",
			user:      &models.UserDB{ID: 2, Email: "carol@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "Wrong1234",
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: plaintext,
		},
		{
			name:      "token generation error",
			email:     "dan@example.com",
			user:      &models.UserDB{ID: 3, Email: "dan@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: plaintext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == plaintext {
				mockTokens.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Email).
					Return(tt.expectJWT, tt.jwtErr)
			}

			user, token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)

	// Unknown email and wrong password must be indistinguishable.
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "missing@example.com").
		Return(nil, nil)
	_, _, errUnknown := svc.Login(context.Background(), "missing@example.com", "Secret123")

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "known@example.com").
		Return(&models.UserDB{ID: 1, Email: "known@example.com", PasswordHash: string(hashed)}, nil)
	_, _, errWrong := svc.Login(context.Background(), "known@example.com", "Wrong1234")

	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, services.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Email: "alice@example.com", Name: "Alice", PasswordHash: "digest"}, nil)

		profile, err := svc.GetProfile(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), profile.ID)
		assert.Equal(t, "alice@example.com", profile.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(2)).
			Return(nil, nil)

		profile, err := svc.GetProfile(context.Background(), 2)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, profile)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	name := "New Name"
	newEmail := "new@example.com"

	t.Run("name only", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Email: "old@example.com", Name: "Old"}, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), &name, (*string)(nil)).
			Return(&models.UserDB{ID: 1, Email: "old@example.com", Name: name}, nil)

		profile, err := svc.UpdateProfile(context.Background(), 1, &name, nil)
		assert.NoError(t, err)
		assert.Equal(t, name, profile.Name)
	})

	t.Run("email change to taken address", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Email: "old@example.com"}, nil)
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), newEmail).
			Return(&models.UserDB{ID: 2, Email: newEmail}, nil)

		profile, err := svc.UpdateProfile(context.Background(), 1, nil, &newEmail)
		assert.ErrorIs(t, err, services.ErrEmailInUse)
		assert.Nil(t, profile)
	})

	t.Run("user missing", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(9)).
			Return(nil, nil)

		profile, err := svc.UpdateProfile(context.Background(), 9, &name, nil)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, profile)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("OldSecret1"), bcrypt.DefaultCost)
	user := &models.UserDB{ID: 1, Email: "alice@example.com", PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(user, nil)
		mockWriter.EXPECT().UpdatePassword(gomock.Any(), int64(1), gomock.Any()).Return(true, nil)

		err := svc.ChangePassword(context.Background(), 1, "OldSecret1", "NewSecret1")
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(user, nil)

		err := svc.ChangePassword(context.Background(), 1, "Wrong1234", "NewSecret1")
		assert.ErrorIs(t, err, services.ErrInvalidOldPassword)
	})

	t.Run("weak new password", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(user, nil)

		err := svc.ChangePassword(context.Background(), 1, "OldSecret1", "short")
		assert.ErrorIs(t, err, password.ErrTooShort)
	})

	t.Run("user missing", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		err := svc.ChangePassword(context.Background(), 9, "OldSecret1", "NewSecret1")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
