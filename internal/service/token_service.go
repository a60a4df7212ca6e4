package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository"
)

// TokenService tracks the single active refresh token per user, so a stolen
// refresh token stops working after the next login or logout.
type TokenService struct {
	repo repository.RefreshTokensRepositoryI
}

func NewTokenService(tokensRepo repository.RefreshTokensRepositoryI) *TokenService {
	return &TokenService{
		repo: tokensRepo,
	}
}

func (ts *TokenService) StoreRefreshToken(ctx context.Context, uid uuid.UUID, token string) error {
	err := ts.repo.Store(ctx, uid, token)
	if err != nil {
		return errors.New("repository storing error: " + err.Error())
	}
	return nil
}

func (ts *TokenService) ValidateRefreshToken(ctx context.Context, uid uuid.UUID, token string) error {
	stored, err := ts.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTokenNotFound) {
			return errorvalues.ErrInvalidToken
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return errorvalues.ErrInvalidToken
	}
	return nil
}

func (ts *TokenService) RevokeRefreshToken(ctx context.Context, uid uuid.UUID) error {
	err := ts.repo.Delete(ctx, uid)
	if err != nil {
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
