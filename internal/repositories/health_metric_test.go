package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricColumns() []string {
	return []string{"id", "user_id", "metric_type", "value", "unit", "metric_date", "notes", "created_at"}
}

func TestHealthMetricReadRepository_ListByUser(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewHealthMetricReadRepository(sqlxDB)

	now := time.Now()
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, user_id, metric_type, value, unit, metric_date, notes, created_at FROM health_metrics WHERE user_id = $1 AND ($2 = '' OR metric_type = $2) ORDER BY metric_date DESC")

	t.Run("all metrics", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(1), "").
			WillReturnRows(sqlmock.NewRows(metricColumns()).
				AddRow(int64(2), int64(1), "weight", 71.5, "kg", date, "", now).
				AddRow(int64(1), int64(1), "sleep_hours", 7.5, "hours", date.AddDate(0, 0, -1), "", now))

		metrics, err := repo.ListByUser(context.Background(), 1, "")
		assert.NoError(t, err)
		require.Len(t, metrics, 2)
		assert.Equal(t, "weight", metrics[0].Type)
	})

	t.Run("filtered by type", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(1), "weight").
			WillReturnRows(sqlmock.NewRows(metricColumns()).
				AddRow(int64(2), int64(1), "weight", 71.5, "kg", date, "", now))

		metrics, err := repo.ListByUser(context.Background(), 1, "weight")
		assert.NoError(t, err)
		require.Len(t, metrics, 1)
		assert.Equal(t, "weight", metrics[0].Type)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthMetricWriteRepository_Create(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewHealthMetricWriteRepository(sqlxDB)

	now := time.Now()
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO health_metrics (user_id, metric_type, value, unit, metric_date, notes, created_at) VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, user_id, metric_type, value, unit, metric_date, notes, created_at")

	mock.ExpectQuery(query).
		WithArgs(int64(1), "weight", 71.5, "kg", date, "after run").
		WillReturnRows(sqlmock.NewRows(metricColumns()).
			AddRow(int64(3), int64(1), "weight", 71.5, "kg", date, "after run", now))

	metric, err := repo.Create(context.Background(), 1, "weight", 71.5, "kg", date, "after run")
	assert.NoError(t, err)
	require.NotNil(t, metric)
	assert.Equal(t, int64(3), metric.ID)
	assert.Equal(t, 71.5, metric.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthMetricWriteRepository_Delete(t *testing.T) {
	sqlxDB, mock := newTestDB(t)
	repo := NewHealthMetricWriteRepository(sqlxDB)

	query := regexp.QuoteMeta("DELETE FROM health_metrics WHERE id = $1 AND user_id = $2")

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(3), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(context.Background(), 3, 1)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("metric absent", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(3), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(context.Background(), 3, 2)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
