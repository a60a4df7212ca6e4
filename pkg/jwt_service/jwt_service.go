package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/heartmon/internal/api"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/pkg/entity"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = time.Hour * 24 * 30
)

// JWTService signs access and refresh tokens with separate secrets.
// Both are HS256; the type claim prevents using one in place of the other.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
}

func New(accessSecret, refreshSecret string) *JWTService {
	return &JWTService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (s *JWTService) GenerateAccessToken(user *entity.User) (string, error) {
	return s.generate(user, TokenTypeAccess, accessTokenTTL, s.accessSecret)
}

func (s *JWTService) GenerateRefreshToken(user *entity.User) (string, error) {
	return s.generate(user, TokenTypeRefresh, refreshTokenTTL, s.refreshSecret)
}

func (s *JWTService) ParseAccessToken(tokenString string) (*api.JWTClaims, error) {
	return s.parse(tokenString, TokenTypeAccess, s.accessSecret)
}

func (s *JWTService) ParseRefreshToken(tokenString string) (*api.JWTClaims, error) {
	return s.parse(tokenString, TokenTypeRefresh, s.refreshSecret)
}

func (s *JWTService) generate(user *entity.User, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	expTime := time.Now().Add(ttl)
	claims := &api.JWTClaims{
		UserID:    user.ID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *JWTService) parse(tokenString, tokenType string, secret []byte) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
