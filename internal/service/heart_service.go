package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository"
	"github.com/limbo/heartmon/pkg/entity"
)

type HeartService struct {
	heartRepo repository.HeartRepositoryI
	usersRepo repository.UsersRepositoryI
	predictor WarningPredictorI
}

func NewHeartService(heartRepo repository.HeartRepositoryI, usersRepo repository.UsersRepositoryI, predictor WarningPredictorI) *HeartService {
	return &HeartService{
		heartRepo: heartRepo,
		usersRepo: usersRepo,
		predictor: predictor,
	}
}

func (serv *HeartService) RealtimeHeart(ctx context.Context, uid uuid.UUID) (*HeartStatus, error) {
	sample, err := serv.heartRepo.GetLatestSample(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSampleNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	profile, err := serv.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errors.New("repository error: " + err.Error())
		}
		profile = &entity.Profile{
			Weight: defaultRegisterWeight,
			Age:    defaultRegisterAge,
			Gender: defaultRegisterGender,
			Height: defaultRegisterHeight,
		}
	}
	warning, err := serv.predictor.PredictWarning(ctx, &WarningFeatures{
		Age:    profile.Age,
		Gender: profile.Gender,
		Height: profile.Height,
		Weight: profile.Weight,
		BPM:    sample.BPM,
		SpO2:   sample.SpO2,
	})
	if err != nil {
		return nil, errors.New("inference error: " + err.Error())
	}
	return &HeartStatus{
		UserID:  uid.String(),
		BPM:     sample.BPM,
		SpO2:    sample.SpO2,
		Warning: warning,
	}, nil
}

func (serv *HeartService) IngestSample(ctx context.Context, uid uuid.UUID, bpm, spo2 int) error {
	if bpm < 0 || spo2 < 0 || spo2 > 100 {
		return errors.New("sample values out of range")
	}
	err := serv.heartRepo.PutSample(ctx, uid, &entity.HeartSample{
		BPM:        bpm,
		SpO2:       spo2,
		RecordedAt: time.Now(),
	})
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
