package services

import (
	"context"
	"errors"
	"time"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
)

// Error variables
var (
	ErrMetricNotFound    = errors.New("health metric not found")
	ErrInvalidMetricType = errors.New("invalid health metric type")
)

// MetricReader defines read-only operations for health metrics.
type MetricReader interface {
	ListByUser(ctx context.Context, userID int64, metricType string) ([]models.HealthMetricDB, error)
}

// MetricWriter defines write operations for health metrics.
type MetricWriter interface {
	Create(ctx context.Context, userID int64, metricType string, value float64, unit string, date time.Time, notes string) (*models.HealthMetricDB, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// MetricService handles user-scoped health measurements.
type MetricService struct {
	reader MetricReader
	writer MetricWriter
	events EventWriter
}

// NewMetricService creates a new MetricService instance.
func NewMetricService(reader MetricReader, writer MetricWriter, events EventWriter) *MetricService {
	return &MetricService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// List returns the user's metrics, optionally filtered by type.
func (svc *MetricService) List(ctx context.Context, userID int64, metricType string) ([]models.HealthMetricDB, error) {
	if metricType != "" && !models.IsValidMetricType(metricType) {
		return nil, ErrInvalidMetricType
	}
	return svc.reader.ListByUser(ctx, userID, metricType)
}

// Create records a health measurement for the user.
func (svc *MetricService) Create(ctx context.Context, userID int64, metricType string, value float64, unit string, date time.Time, notes string) (*models.HealthMetricDB, error) {
	if !models.IsValidMetricType(metricType) {
		return nil, ErrInvalidMetricType
	}

	metric, err := svc.writer.Create(ctx, userID, metricType, value, unit, date, notes)
	if err != nil {
		logger.Log.Errorw("failed to create health metric", "userID", userID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, userID, "metric.recorded", metric.ID)

	return metric, nil
}

// Delete removes the metric if it belongs to the user.
func (svc *MetricService) Delete(ctx context.Context, id, userID int64) error {
	deleted, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete health metric", "id", id, "userID", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrMetricNotFound
	}
	return nil
}
