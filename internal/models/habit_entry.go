package models

import (
	"time"
)

// HabitEntryDB represents a single completion record for a habit.
// At most one entry exists per habit per date.
type HabitEntryDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	HabitID   int64     `json:"habit_id" db:"habit_id"`     // Habit foreign key
	EntryDate time.Time `json:"date" db:"entry_date"`       // Calendar date of the entry
	Completed bool      `json:"completed" db:"completed"`   // Whether the habit was completed
	Notes     string    `json:"notes" db:"notes"`           // Optional notes
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
