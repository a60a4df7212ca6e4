package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository"
	"github.com/limbo/heartmon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestDailyRecordRoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	repo := repository.NewCaloriesRepo(client)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("missing record", func(t *testing.T) {
		_, err := repo.GetDailyRecord(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})

	record := &entity.DailyCalorieRecord{
		Date:          "2026-08-28",
		TotalCalories: 123.456789,
		TotalMinutes:  17,
		LastUpdated:   time.Now().UTC().Truncate(time.Second),
	}
	t.Run("put and get", func(t *testing.T) {
		require.NoError(t, repo.PutDailyRecord(ctx, uid, record))
		result, err := repo.GetDailyRecord(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, record.Date, result.Date)
		// Full float precision survives storage
		assert.Equal(t, record.TotalCalories, result.TotalCalories)
		assert.Equal(t, record.TotalMinutes, result.TotalMinutes)
		assert.True(t, record.LastUpdated.Equal(result.LastUpdated))
	})

	t.Run("overwrite replaces whole record", func(t *testing.T) {
		fresh := &entity.DailyCalorieRecord{
			Date:          "2026-08-29",
			TotalCalories: 4.2,
			TotalMinutes:  1,
			LastUpdated:   time.Now().UTC(),
		}
		require.NoError(t, repo.PutDailyRecord(ctx, uid, fresh))
		result, err := repo.GetDailyRecord(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, fresh.Date, result.Date)
		assert.Equal(t, fresh.TotalCalories, result.TotalCalories)
		assert.Equal(t, fresh.TotalMinutes, result.TotalMinutes)
	})

	t.Run("records are per user", func(t *testing.T) {
		_, err := repo.GetDailyRecord(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
}

func TestGetDailyRecordConnectionError(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := repository.NewCaloriesRepo(client)
	mr.Close()
	_, err := repo.GetDailyRecord(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrRecordNotFound)
}
