package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderFemale = 0
	GenderMale   = 1
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile holds the static attributes used by the calorie and warning models.
// Weight in kilograms, height in centimeters, gender is 1=male / 0=female.
type Profile struct {
	Weight float64 `json:"weight"`
	Age    int     `json:"age"`
	Gender int     `json:"gender"`
	Height float64 `json:"height"`
}

// HeartSample is the latest reading pushed by the wearable.
type HeartSample struct {
	BPM        int       `json:"bpm"`
	SpO2       int       `json:"spo2"`
	RecordedAt time.Time `json:"recorded_at"`
}

// DailyCalorieRecord is the per-user running total for one calendar date.
// Date is formatted YYYY-MM-DD and acts as the reset key: a stored record
// with a different date is stale and gets replaced on the next write, never merged.
type DailyCalorieRecord struct {
	Date          string    `json:"date"`
	TotalCalories float64   `json:"total_calories"`
	TotalMinutes  int       `json:"total_minutes"`
	LastUpdated   time.Time `json:"last_updated"`
}
