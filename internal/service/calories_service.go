package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository"
	"github.com/limbo/heartmon/pkg/entity"
)

// Fallback profile attributes when the user row is gone by the time
// /calories is served.
const (
	fallbackWeight = 70.0
	fallbackAge    = 30
	fallbackGender = entity.GenderMale
	fallbackHeight = 170.0
)

const dateLayout = "2006-01-02"

type CaloriesService struct {
	caloriesRepo repository.CaloriesRepositoryI
	heartRepo    repository.HeartRepositoryI
	usersRepo    repository.UsersRepositoryI

	// Serializes the read-modify-write per user; accumulation for different
	// users proceeds in parallel.
	mu        sync.Mutex
	userLocks map[uuid.UUID]*sync.Mutex
}

func NewCaloriesService(caloriesRepo repository.CaloriesRepositoryI, heartRepo repository.HeartRepositoryI, usersRepo repository.UsersRepositoryI) *CaloriesService {
	return &CaloriesService{
		caloriesRepo: caloriesRepo,
		heartRepo:    heartRepo,
		usersRepo:    usersRepo,
		userLocks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// ComputeCalories is the per-request flow: reject unworn device, estimate the
// instantaneous rate, record one minute's contribution, project the daily
// expenditure on top of BMR.
func (serv *CaloriesService) ComputeCalories(ctx context.Context, uid uuid.UUID) (*CalorieReport, error) {
	sample, err := serv.heartRepo.GetLatestSample(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSampleNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if sample.BPM == 0 {
		return nil, errorvalues.ErrDeviceNotWorn
	}
	profile, err := serv.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errors.New("repository error: " + err.Error())
		}
		profile = &entity.Profile{
			Weight: fallbackWeight,
			Age:    fallbackAge,
			Gender: fallbackGender,
			Height: fallbackHeight,
		}
	}
	rate := EstimateRate(sample.BPM, profile.Weight, profile.Gender)
	record, err := serv.Accumulate(ctx, uid, rate, 1)
	if err != nil {
		return nil, err
	}
	bmr := ComputeBMR(profile.Weight, profile.Height, profile.Age, profile.Gender)
	return &CalorieReport{
		CaloriesPerMinute:      round2(rate),
		TotalCaloriesToday:     round2(record.TotalCalories),
		TotalMinutesTracked:    record.TotalMinutes,
		ActiveCaloriesPerHour:  round2(rate * 60),
		BMRCaloriesPerDay:      round2(bmr),
		EstimatedDailyCalories: round2(ProjectDaily(bmr, rate)),
	}, nil
}

// Accumulate adds one invocation's contribution to the user's daily record
// and returns the post-write state. A stored record dated before today is
// discarded, not merged: the day boundary is a hard discontinuity, not a
// rolling 24-hour window. Storage failures propagate unmodified.
func (serv *CaloriesService) Accumulate(ctx context.Context, uid uuid.UUID, calories float64, minutes int) (*entity.DailyCalorieRecord, error) {
	lock := serv.lockFor(uid)
	lock.Lock()
	defer lock.Unlock()

	today := time.Now().Format(dateLayout)
	record, err := serv.caloriesRepo.GetDailyRecord(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, errors.New("repository error: " + err.Error())
		}
		record = &entity.DailyCalorieRecord{Date: today}
	}
	if record.Date != today {
		record = &entity.DailyCalorieRecord{Date: today}
	}
	record.TotalCalories += calories
	record.TotalMinutes += minutes
	record.LastUpdated = time.Now()
	if err := serv.caloriesRepo.PutDailyRecord(ctx, uid, record); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return record, nil
}

func (serv *CaloriesService) lockFor(uid uuid.UUID) *sync.Mutex {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	lock, ok := serv.userLocks[uid]
	if !ok {
		lock = &sync.Mutex{}
		serv.userLocks[uid] = lock
	}
	return lock
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
