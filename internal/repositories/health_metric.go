package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
)

type HealthMetricReadRepository struct {
	db *sqlx.DB
}

func NewHealthMetricReadRepository(db *sqlx.DB) *HealthMetricReadRepository {
	return &HealthMetricReadRepository{db: db}
}

// ListByUser returns the user's health metrics, newest date first,
// optionally filtered by metric type.
func (r *HealthMetricReadRepository) ListByUser(ctx context.Context, userID int64, metricType string) ([]models.HealthMetricDB, error) {
	const query = `
		SELECT id, user_id, metric_type, value, unit, metric_date, notes, created_at
		FROM health_metrics
		WHERE user_id = $1
		  AND ($2 = '' OR metric_type = $2)
		ORDER BY metric_date DESC
	`

	metrics := []models.HealthMetricDB{}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &metrics, query, userID, metricType); err != nil {
		logger.Log.Errorw("health metric query failed", "query", squash(query), "userID", userID, "error", err)
		return nil, err
	}
	return metrics, nil
}

type HealthMetricWriteRepository struct {
	db *sqlx.DB
}

func NewHealthMetricWriteRepository(db *sqlx.DB) *HealthMetricWriteRepository {
	return &HealthMetricWriteRepository{db: db}
}

// Create inserts a health measurement for the user and returns the stored record.
func (r *HealthMetricWriteRepository) Create(ctx context.Context, userID int64, metricType string, value float64, unit string, date time.Time, notes string) (*models.HealthMetricDB, error) {
	const query = `
		INSERT INTO health_metrics (user_id, metric_type, value, unit, metric_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, user_id, metric_type, value, unit, metric_date, notes, created_at
	`

	var metric models.HealthMetricDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &metric, query, userID, metricType, value, unit, date, notes)
	if err != nil {
		logger.Log.Errorw("health metric insert failed", "query", squash(query), "userID", userID, "error", err)
		return nil, translateError(err)
	}
	return &metric, nil
}

// Delete removes the metric, scoped to the owner.
// Returns false when no such metric exists for this user.
func (r *HealthMetricWriteRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	const query = `
		DELETE FROM health_metrics
		WHERE id = $1 AND user_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Log.Errorw("health metric delete failed", "query", squash(query), "id", id, "userID", userID, "error", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
