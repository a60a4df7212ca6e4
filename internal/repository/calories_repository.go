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

// CaloriesRepository keeps one live DailyCalorieRecord per user under
// calories:{uid}. Records are written whole; the accumulator service owns
// the read-modify-write cycle and its serialization.
type CaloriesRepository struct {
	client *redis.Client
}

func NewCaloriesRepo(client *redis.Client) *CaloriesRepository {
	return &CaloriesRepository{
		client: client,
	}
}

func caloriesKey(uid uuid.UUID) string {
	return "calories:" + uid.String()
}

func (cr *CaloriesRepository) GetDailyRecord(ctx context.Context, uid uuid.UUID) (*entity.DailyCalorieRecord, error) {
	payload, err := cr.client.Get(ctx, caloriesKey(uid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("reading daily record error: " + err.Error())
	}
	var record entity.DailyCalorieRecord
	if err := sonic.UnmarshalString(payload, &record); err != nil {
		return nil, errors.New("decoding daily record error: " + err.Error())
	}
	return &record, nil
}

func (cr *CaloriesRepository) PutDailyRecord(ctx context.Context, uid uuid.UUID, record *entity.DailyCalorieRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	payload, err := sonic.MarshalString(record)
	if err != nil {
		return errors.New("encoding daily record error: " + err.Error())
	}
	err = cr.client.Set(ctx, caloriesKey(uid), payload, 0).Err()
	if err != nil {
		return errors.New("writing daily record error: " + err.Error())
	}
	return nil
}
