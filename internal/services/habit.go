package services

import (
	"context"
	"errors"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
)

// ErrHabitNotFound is returned when a habit does not exist for the caller.
var ErrHabitNotFound = errors.New("habit not found")

// HabitReader defines read-only operations for habits.
type HabitReader interface {
	ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]models.HabitDB, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.HabitDB, error)
	ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error)
}

// HabitWriter defines write operations for habits.
type HabitWriter interface {
	Create(ctx context.Context, userID int64, title, description, frequency string) (*models.HabitDB, error)
	Update(ctx context.Context, id, userID int64, title, description, frequency *string, isActive *bool) (*models.HabitDB, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
	ToggleActive(ctx context.Context, id, userID int64) (*models.HabitDB, error)
}

// HabitService handles user-scoped habit CRUD and the ownership check.
type HabitService struct {
	reader HabitReader
	writer HabitWriter
	events EventWriter
}

// NewHabitService creates a new HabitService instance.
func NewHabitService(reader HabitReader, writer HabitWriter, events EventWriter) *HabitService {
	return &HabitService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// List returns the user's habits, optionally only the active ones.
func (svc *HabitService) List(ctx context.Context, userID int64, activeOnly bool) ([]models.HabitDB, error) {
	return svc.reader.ListByUser(ctx, userID, activeOnly)
}

// Create adds a habit owned by the user.
func (svc *HabitService) Create(ctx context.Context, userID int64, title, description, frequency string) (*models.HabitDB, error) {
	habit, err := svc.writer.Create(ctx, userID, title, description, frequency)
	if err != nil {
		logger.Log.Errorw("failed to create habit", "userID", userID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, userID, "habit.created", habit.ID)

	return habit, nil
}

// Get returns the habit if it belongs to the user.
func (svc *HabitService) Get(ctx context.Context, id, userID int64) (*models.HabitDB, error) {
	habit, err := svc.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

// Update applies a partial update if the habit belongs to the user.
func (svc *HabitService) Update(ctx context.Context, id, userID int64, title, description, frequency *string, isActive *bool) (*models.HabitDB, error) {
	habit, err := svc.writer.Update(ctx, id, userID, title, description, frequency, isActive)
	if err != nil {
		logger.Log.Errorw("failed to update habit", "id", id, "userID", userID, "err", err)
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

// Delete removes the habit if it belongs to the user.
func (svc *HabitService) Delete(ctx context.Context, id, userID int64) error {
	deleted, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete habit", "id", id, "userID", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrHabitNotFound
	}

	publishEvent(ctx, svc.events, userID, "habit.deleted", id)

	return nil
}

// Toggle flips the habit's active flag if it belongs to the user.
func (svc *HabitService) Toggle(ctx context.Context, id, userID int64) (*models.HabitDB, error) {
	habit, err := svc.writer.ToggleActive(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to toggle habit", "id", id, "userID", userID, "err", err)
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	publishEvent(ctx, svc.events, userID, "habit.toggled", id)

	return habit, nil
}

// VerifyOwnership confirms the habit belongs to the user. The lookup is
// filtered by both ids at once, so a habit owned by someone else and a habit
// that does not exist are indistinguishable to the caller.
func (svc *HabitService) VerifyOwnership(ctx context.Context, habitID, userID int64) (bool, error) {
	return svc.reader.ExistsByIDAndUser(ctx, habitID, userID)
}
