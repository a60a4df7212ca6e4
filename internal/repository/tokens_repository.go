package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
)

// Matches the refresh token TTL; a token that outlived its JWT expiry
// is useless anyway.
var refreshTokenTTL = time.Hour * 24 * 30

type RefreshTokensRepository struct {
	client *redis.Client
}

func NewRefreshTokensRepo(client *redis.Client) *RefreshTokensRepository {
	return &RefreshTokensRepository{
		client: client,
	}
}

func tokenKey(uid uuid.UUID) string {
	return "refresh_tokens:" + uid.String()
}

func (tr *RefreshTokensRepository) Store(ctx context.Context, uid uuid.UUID, token string) error {
	err := tr.client.Set(ctx, tokenKey(uid), token, refreshTokenTTL).Err()
	if err != nil {
		return errors.New("storing refresh token error: " + err.Error())
	}
	return nil
}

func (tr *RefreshTokensRepository) Get(ctx context.Context, uid uuid.UUID) (string, error) {
	token, err := tr.client.Get(ctx, tokenKey(uid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorvalues.ErrTokenNotFound
		}
		return "", errors.New("reading refresh token error: " + err.Error())
	}
	return token, nil
}

func (tr *RefreshTokensRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	err := tr.client.Del(ctx, tokenKey(uid)).Err()
	if err != nil {
		return errors.New("deleting refresh token error: " + err.Error())
	}
	return nil
}
