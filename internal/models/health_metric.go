package models

import (
	"time"
)

// Health metric types
const (
	MetricWeight        = "weight"
	MetricBloodPressure = "blood_pressure"
	MetricHeartRate     = "heart_rate"
	MetricSleepHours    = "sleep_hours"
	MetricWaterIntake   = "water_intake"
	MetricSteps         = "steps"
)

// IsValidMetricType reports whether s is a supported health metric type.
func IsValidMetricType(s string) bool {
	switch s {
	case MetricWeight, MetricBloodPressure, MetricHeartRate,
		MetricSleepHours, MetricWaterIntake, MetricSteps:
		return true
	}
	return false
}

// HealthMetricDB represents a health measurement record in the database.
type HealthMetricDB struct {
	ID         int64     `json:"id" db:"id"`                 // Primary key
	UserID     int64     `json:"user_id" db:"user_id"`       // Owner foreign key
	Type       string    `json:"type" db:"metric_type"`      // Metric type
	Value      float64   `json:"value" db:"value"`           // Measured value
	Unit       string    `json:"unit" db:"unit"`             // Measurement unit
	MetricDate time.Time `json:"date" db:"metric_date"`      // Calendar date of the measurement
	Notes      string    `json:"notes" db:"notes"`           // Optional notes
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
