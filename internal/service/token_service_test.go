package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository/mocks"
	"github.com/limbo/heartmon/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tokensRepo := mocks.NewMockRefreshTokensRepositoryI(ctrl)
	serv := service.NewTokenService(tokensRepo)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("matches stored token", func(t *testing.T) {
		tokensRepo.EXPECT().Get(gomock.Any(), uid).Return("stored-token", nil)
		assert.NoError(t, serv.ValidateRefreshToken(ctx, uid, "stored-token"))
	})
	t.Run("mismatch", func(t *testing.T) {
		tokensRepo.EXPECT().Get(gomock.Any(), uid).Return("stored-token", nil)
		err := serv.ValidateRefreshToken(ctx, uid, "other-token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("nothing stored", func(t *testing.T) {
		tokensRepo.EXPECT().Get(gomock.Any(), uid).Return("", errorvalues.ErrTokenNotFound)
		err := serv.ValidateRefreshToken(ctx, uid, "stored-token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("storage error", func(t *testing.T) {
		tokensRepo.EXPECT().Get(gomock.Any(), uid).Return("", errors.New("connection refused"))
		err := serv.ValidateRefreshToken(ctx, uid, "stored-token")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}

func TestStoreAndRevokeRefreshToken(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tokensRepo := mocks.NewMockRefreshTokensRepositoryI(ctrl)
	serv := service.NewTokenService(tokensRepo)
	uid := uuid.New()
	ctx := context.Background()

	tokensRepo.EXPECT().Store(gomock.Any(), uid, "fresh-token").Return(nil)
	assert.NoError(t, serv.StoreRefreshToken(ctx, uid, "fresh-token"))

	tokensRepo.EXPECT().Delete(gomock.Any(), uid).Return(nil)
	assert.NoError(t, serv.RevokeRefreshToken(ctx, uid))
}
