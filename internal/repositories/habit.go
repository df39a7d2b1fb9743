package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
)

type HabitReadRepository struct {
	db *sqlx.DB
}

func NewHabitReadRepository(db *sqlx.DB) *HabitReadRepository {
	return &HabitReadRepository{db: db}
}

// ListByUser returns the user's habits, newest first.
// When activeOnly is set, inactive habits are filtered out.
func (r *HabitReadRepository) ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]models.HabitDB, error) {
	const query = `
		SELECT id, user_id, title, description, frequency, is_active, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		  AND (NOT $2 OR is_active)
		ORDER BY created_at DESC
	`

	habits := []models.HabitDB{}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &habits, query, userID, activeOnly); err != nil {
		logger.Log.Errorw("habit query failed", "query", squash(query), "userID", userID, "error", err)
		return nil, err
	}
	return habits, nil
}

// GetByIDAndUser loads a habit filtered by both its id and the owner's id
// in a single lookup. Returns nil when no such habit exists for this user.
func (r *HabitReadRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.HabitDB, error) {
	const query = `
		SELECT id, user_id, title, description, frequency, is_active, created_at, updated_at
		FROM habits
		WHERE id = $1 AND user_id = $2
	`

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("habit query failed", "query", squash(query), "id", id, "userID", userID, "error", err)
		return nil, err
	}
	return &habit, nil
}

// ExistsByIDAndUser reports whether the habit exists and belongs to the user.
func (r *HabitReadRepository) ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM habits WHERE id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, id, userID); err != nil {
		logger.Log.Errorw("habit existence query failed", "query", squash(query), "id", id, "userID", userID, "error", err)
		return false, err
	}
	return exists, nil
}

type HabitWriteRepository struct {
	db *sqlx.DB
}

func NewHabitWriteRepository(db *sqlx.DB) *HabitWriteRepository {
	return &HabitWriteRepository{db: db}
}

// Create inserts a new habit owned by the user and returns the stored record.
func (r *HabitWriteRepository) Create(ctx context.Context, userID int64, title, description, frequency string) (*models.HabitDB, error) {
	const query = `
		INSERT INTO habits (user_id, title, description, frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, user_id, title, description, frequency, is_active, created_at, updated_at
	`

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, userID, title, description, frequency)
	if err != nil {
		logger.Log.Errorw("habit insert failed", "query", squash(query), "userID", userID, "error", err)
		return nil, translateError(err)
	}
	return &habit, nil
}

// Update applies a partial update, scoped to the owner. Nil fields keep
// their stored values. Returns nil when no such habit exists for this user.
func (r *HabitWriteRepository) Update(ctx context.Context, id, userID int64, title, description, frequency *string, isActive *bool) (*models.HabitDB, error) {
	const query = `
		UPDATE habits
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    frequency = COALESCE($5, frequency),
		    is_active = COALESCE($6, is_active),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, frequency, is_active, created_at, updated_at
	`

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, id, userID, title, description, frequency, isActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("habit update failed", "query", squash(query), "id", id, "userID", userID, "error", err)
		return nil, translateError(err)
	}
	return &habit, nil
}

// Delete removes the habit, scoped to the owner.
// Returns false when no such habit exists for this user.
func (r *HabitWriteRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	const query = `
		DELETE FROM habits
		WHERE id = $1 AND user_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Log.Errorw("habit delete failed", "query", squash(query), "id", id, "userID", userID, "error", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ToggleActive flips the active flag in place, scoped to the owner.
// Returns nil when no such habit exists for this user.
func (r *HabitWriteRepository) ToggleActive(ctx context.Context, id, userID int64) (*models.HabitDB, error) {
	const query = `
		UPDATE habits
		SET is_active = NOT is_active,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, frequency, is_active, created_at, updated_at
	`

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("habit toggle failed", "query", squash(query), "id", id, "userID", userID, "error", err)
		return nil, err
	}
	return &habit, nil
}
