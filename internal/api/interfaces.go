package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/heartmon/pkg/entity"
)

type JWTServiceI interface {
	// Issues short-lived token used on protected routes
	GenerateAccessToken(user *entity.User) (string, error)
	// Issues long-lived token exchanged on /refresh
	GenerateRefreshToken(user *entity.User) (string, error)
	ParseAccessToken(tokenString string) (*JWTClaims, error)
	ParseRefreshToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	TokenType string `json:"type"`
}
