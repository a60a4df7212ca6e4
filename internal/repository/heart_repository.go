package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/pkg/entity"
)

// HeartRepository keeps only the latest sample per user under heart_data:{uid},
// mirroring the realtime feed written by the wearable.
type HeartRepository struct {
	client *redis.Client
}

func NewHeartRepo(client *redis.Client) *HeartRepository {
	return &HeartRepository{
		client: client,
	}
}

func heartKey(uid uuid.UUID) string {
	return "heart_data:" + uid.String()
}

func (hr *HeartRepository) GetLatestSample(ctx context.Context, uid uuid.UUID) (*entity.HeartSample, error) {
	payload, err := hr.client.Get(ctx, heartKey(uid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrSampleNotFound
		}
		return nil, errors.New("reading heart sample error: " + err.Error())
	}
	var sample entity.HeartSample
	if err := sonic.UnmarshalString(payload, &sample); err != nil {
		return nil, errors.New("decoding heart sample error: " + err.Error())
	}
	return &sample, nil
}

func (hr *HeartRepository) PutSample(ctx context.Context, uid uuid.UUID, sample *entity.HeartSample) error {
	if sample == nil {
		return errors.New("sample is nil")
	}
	payload, err := sonic.MarshalString(sample)
	if err != nil {
		return errors.New("encoding heart sample error: " + err.Error())
	}
	err = hr.client.Set(ctx, heartKey(uid), payload, 0).Err()
	if err != nil {
		return errors.New("writing heart sample error: " + err.Error())
	}
	return nil
}
