package models

import (
	"time"
)

// Habit frequencies
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// IsValidFrequency reports whether s is a supported habit frequency.
func IsValidFrequency(s string) bool {
	switch s {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// HabitDB represents a habit record in the database.
type HabitDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`         // Owner foreign key
	Title       string    `json:"title" db:"title"`             // Habit title
	Description string    `json:"description" db:"description"` // Optional description
	Frequency   string    `json:"frequency" db:"frequency"`     // daily, weekly or monthly
	IsActive    bool      `json:"is_active" db:"is_active"`     // Toggleable active flag
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
