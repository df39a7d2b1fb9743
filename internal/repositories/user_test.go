package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userColumns() []string {
	return []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewUserReadRepository(sqlxDB)

	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE email = $1")

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "user@example.com", "Alice", "$2a$10$hash", now, now))

		user, err := repo.GetByEmail(context.Background(), "user@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com").
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByEmail(context.Background(), "user@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewUserReadRepository(sqlxDB)

	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(7), "user@example.com", "Alice", "$2a$10$hash", now, now))

		user, err := repo.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByID(context.Background(), 8)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO users (email, name, password_hash, created_at, updated_at) VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id, email, name, password_hash, created_at, updated_at")

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com", "Alice", "$2a$10$hash").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "user@example.com", "Alice", "$2a$10$hash", now, now))

		user, err := repo.Create(context.Background(), "user@example.com", "Alice", "$2a$10$hash")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com", "Alice", "$2a$10$hash").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		user, err := repo.Create(context.Background(), "user@example.com", "Alice", "$2a$10$hash")
		assert.ErrorIs(t, err, ErrUniqueViolation)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Update(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	now := time.Now()
	query := regexp.QuoteMeta("UPDATE users SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = NOW() WHERE id = $1 RETURNING id, email, name, password_hash, created_at, updated_at")

	t.Run("name only", func(t *testing.T) {
		name := "Bob"
		mock.ExpectQuery(query).
			WithArgs(int64(1), "Bob", nil).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "user@example.com", "Bob", "$2a$10$hash", now, now))

		user, err := repo.Update(context.Background(), 1, &name, nil)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Bob", user.Name)
	})

	t.Run("user absent", func(t *testing.T) {
		name := "Bob"
		mock.ExpectQuery(query).
			WithArgs(int64(99), "Bob", nil).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.Update(context.Background(), 99, &name, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("email taken", func(t *testing.T) {
		email := "taken@example.com"
		mock.ExpectQuery(query).
			WithArgs(int64(1), nil, "taken@example.com").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		user, err := repo.Update(context.Background(), 1, nil, &email)
		assert.ErrorIs(t, err, ErrUniqueViolation)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdatePassword(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	query := regexp.QuoteMeta("UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1")

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), "$2a$10$newhash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdatePassword(context.Background(), 1, "$2a$10$newhash")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("user absent", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(99), "$2a$10$newhash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdatePassword(context.Background(), 99, "$2a$10$newhash")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), "$2a$10$newhash").
			WillReturnError(errors.New("connection refused"))

		ok, err := repo.UpdatePassword(context.Background(), 1, "$2a$10$newhash")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
