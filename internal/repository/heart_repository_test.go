package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository"
	"github.com/limbo/heartmon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartSampleRoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	repo := repository.NewHeartRepo(client)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("missing sample", func(t *testing.T) {
		_, err := repo.GetLatestSample(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrSampleNotFound)
	})

	t.Run("put and get", func(t *testing.T) {
		sample := &entity.HeartSample{
			BPM:        92,
			SpO2:       97,
			RecordedAt: time.Now().UTC().Truncate(time.Second),
		}
		require.NoError(t, repo.PutSample(ctx, uid, sample))
		result, err := repo.GetLatestSample(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, sample.BPM, result.BPM)
		assert.Equal(t, sample.SpO2, result.SpO2)
		assert.True(t, sample.RecordedAt.Equal(result.RecordedAt))
	})

	t.Run("newer sample replaces older", func(t *testing.T) {
		require.NoError(t, repo.PutSample(ctx, uid, &entity.HeartSample{BPM: 120, SpO2: 95, RecordedAt: time.Now()}))
		result, err := repo.GetLatestSample(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 120, result.BPM)
	})
}
