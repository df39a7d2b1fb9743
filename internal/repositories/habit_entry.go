package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
)

type HabitEntryReadRepository struct {
	db *sqlx.DB
}

func NewHabitEntryReadRepository(db *sqlx.DB) *HabitEntryReadRepository {
	return &HabitEntryReadRepository{db: db}
}

// ListByHabit returns the habit's entries, newest date first.
func (r *HabitEntryReadRepository) ListByHabit(ctx context.Context, habitID int64) ([]models.HabitEntryDB, error) {
	const query = `
		SELECT id, habit_id, entry_date, completed, notes, created_at
		FROM habit_entries
		WHERE habit_id = $1
		ORDER BY entry_date DESC
	`

	entries := []models.HabitEntryDB{}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &entries, query, habitID); err != nil {
		logger.Log.Errorw("habit entry query failed", "query", squash(query), "habitID", habitID, "error", err)
		return nil, err
	}
	return entries, nil
}

type HabitEntryWriteRepository struct {
	db *sqlx.DB
}

func NewHabitEntryWriteRepository(db *sqlx.DB) *HabitEntryWriteRepository {
	return &HabitEntryWriteRepository{db: db}
}

// Create inserts an entry for the habit on the given date.
// Returns ErrUniqueViolation when an entry for that date already exists.
func (r *HabitEntryWriteRepository) Create(ctx context.Context, habitID int64, date time.Time, completed bool, notes string) (*models.HabitEntryDB, error) {
	const query = `
		INSERT INTO habit_entries (habit_id, entry_date, completed, notes, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, habit_id, entry_date, completed, notes, created_at
	`

	var entry models.HabitEntryDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &entry, query, habitID, date, completed, notes)
	if err != nil {
		logger.Log.Errorw("habit entry insert failed", "query", squash(query), "habitID", habitID, "error", err)
		return nil, translateError(err)
	}
	return &entry, nil
}
