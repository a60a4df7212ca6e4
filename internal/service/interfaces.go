package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/heartmon/pkg/entity"
)

type RegisterRequest struct {
	Email    string   `validate:"required,email,max=254"`
	Password string   `validate:"required,min=8,max=72"`
	Name     string   `validate:"required,min=1,max=100"`
	Weight   *float64 `validate:"omitempty,gt=0,lte=400"`
	Age      *int     `validate:"omitempty,gt=0,lte=130"`
	Gender   *int     `validate:"omitempty,oneof=0 1"`
	Height   *float64 `validate:"omitempty,gt=0,lte=250"`
}

type UpdateProfileRequest struct {
	Weight float64 `validate:"required,gt=0,lte=400"`
	Age    int     `validate:"required,gt=0,lte=130"`
	Gender int     `validate:"oneof=0 1"`
	Height float64 `validate:"required,gt=0,lte=250"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database with profile
	// defaults for omitted fields. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) error
}

type TokenServiceI interface {
	// Stores the active refresh token of user, replacing the previous one
	StoreRefreshToken(ctx context.Context, uid uuid.UUID, token string) error
	// Compares given token against the stored one; ErrInvalidToken on mismatch
	ValidateRefreshToken(ctx context.Context, uid uuid.UUID, token string) error
	// Drops stored refresh token (logout)
	RevokeRefreshToken(ctx context.Context, uid uuid.UUID) error
}

// CalorieReport is the per-request calorie snapshot: the instantaneous rate,
// the accumulated day totals and the projected daily expenditure. Every float
// is rounded to 2 decimal places for presentation; internal accumulation keeps
// full precision.
type CalorieReport struct {
	CaloriesPerMinute      float64 `json:"caloriesPerMinute"`
	TotalCaloriesToday     float64 `json:"totalCaloriesToday"`
	TotalMinutesTracked    int     `json:"totalMinutesTracked"`
	ActiveCaloriesPerHour  float64 `json:"activeCaloriesPerHour"`
	BMRCaloriesPerDay      float64 `json:"bmrCaloriesPerDay"`
	EstimatedDailyCalories float64 `json:"estimatedDailyCalories"`
}

type CaloriesServiceI interface {
	// Reads the latest heart sample and profile of user, records one minute's
	// calorie contribution and returns the running daily report.
	// Returns ErrSampleNotFound when the device never reported and
	// ErrDeviceNotWorn (without writing anything) when bpm is 0
	ComputeCalories(ctx context.Context, uid uuid.UUID) (*CalorieReport, error)
}

type HeartStatus struct {
	UserID  string `json:"userId"`
	BPM     int    `json:"bpm"`
	SpO2    int    `json:"spo2"`
	Warning int    `json:"warning"`
}

type HeartServiceI interface {
	// Returns the latest sample of user with the binary health warning
	// from the inference service
	RealtimeHeart(ctx context.Context, uid uuid.UUID) (*HeartStatus, error)
	// Stores a fresh sample pushed by the wearable
	IngestSample(ctx context.Context, uid uuid.UUID, bpm, spo2 int) error
}

// WarningFeatures is the flat feature vector the model server expects.
// Smoke and alco stay 0 until the profile tracks them.
type WarningFeatures struct {
	Age    int     `json:"age"`
	Gender int     `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	BPM    int     `json:"bpm"`
	SpO2   int     `json:"spo2"`
	Smoke  int     `json:"smoke"`
	Alco   int     `json:"alco"`
}

type WarningPredictorI interface {
	// Returns 1 for abnormal, 0 for normal
	PredictWarning(ctx context.Context, features *WarningFeatures) (int, error)
}
