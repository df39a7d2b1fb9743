package services

import (
	"context"
	"errors"
	"time"

	"github.com/metricmind/habit-health-api/internal/logger"
	"github.com/metricmind/habit-health-api/internal/models"
	"github.com/metricmind/habit-health-api/internal/repositories"
)

// ErrDuplicateEntry is returned when the habit already has an entry for the date.
var ErrDuplicateEntry = errors.New("an entry for this date already exists")

// EntryReader defines read-only operations for habit entries.
type EntryReader interface {
	ListByHabit(ctx context.Context, habitID int64) ([]models.HabitEntryDB, error)
}

// EntryWriter defines write operations for habit entries.
type EntryWriter interface {
	Create(ctx context.Context, habitID int64, date time.Time, completed bool, notes string) (*models.HabitEntryDB, error)
}

// EntryService handles daily completion records for habits.
// Ownership of the habit is checked upstream by the ownership middleware.
type EntryService struct {
	reader EntryReader
	writer EntryWriter
	events EventWriter
}

// NewEntryService creates a new EntryService instance.
func NewEntryService(reader EntryReader, writer EntryWriter, events EventWriter) *EntryService {
	return &EntryService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// List returns the habit's entries.
func (svc *EntryService) List(ctx context.Context, habitID int64) ([]models.HabitEntryDB, error) {
	return svc.reader.ListByHabit(ctx, habitID)
}

// Create records a completion entry for the habit on the given date.
func (svc *EntryService) Create(ctx context.Context, userID, habitID int64, date time.Time, completed bool, notes string) (*models.HabitEntryDB, error) {
	entry, err := svc.writer.Create(ctx, habitID, date, completed, notes)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrDuplicateEntry
		}
		logger.Log.Errorw("failed to create habit entry", "habitID", habitID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, userID, "habit.entry_recorded", habitID)

	return entry, nil
}
