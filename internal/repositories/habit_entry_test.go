package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryColumns() []string {
	return []string{"id", "habit_id", "entry_date", "completed", "notes", "created_at"}
}

func TestHabitEntryReadRepository_ListByHabit(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewHabitEntryReadRepository(sqlxDB)

	now := time.Now()
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, habit_id, entry_date, completed, notes, created_at FROM habit_entries WHERE habit_id = $1 ORDER BY entry_date DESC")

	t.Run("entries returned", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(entryColumns()).
				AddRow(int64(2), int64(5), date, true, "felt good", now).
				AddRow(int64(1), int64(5), date.AddDate(0, 0, -1), false, "", now))

		entries, err := repo.ListByHabit(context.Background(), 5)
		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Completed)
		assert.Equal(t, "felt good", entries[0].Notes)
	})

	t.Run("empty result", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(6)).
			WillReturnRows(sqlmock.NewRows(entryColumns()))

		entries, err := repo.ListByHabit(context.Background(), 6)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitEntryWriteRepository_Create(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewHabitEntryWriteRepository(sqlxDB)

	now := time.Now()
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO habit_entries (habit_id, entry_date, completed, notes, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id, habit_id, entry_date, completed, notes, created_at")

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(5), date, true, "felt good").
			WillReturnRows(sqlmock.NewRows(entryColumns()).
				AddRow(int64(1), int64(5), date, true, "felt good", now))

		entry, err := repo.Create(context.Background(), 5, date, true, "felt good")
		assert.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, int64(1), entry.ID)
		assert.Equal(t, int64(5), entry.HabitID)
	})

	t.Run("duplicate date", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(5), date, true, "").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		entry, err := repo.Create(context.Background(), 5, date, true, "")
		assert.ErrorIs(t, err, ErrUniqueViolation)
		assert.Nil(t, entry)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
