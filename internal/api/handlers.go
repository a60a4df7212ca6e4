package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/service"
	"github.com/limbo/heartmon/pkg/entity"
	"github.com/limbo/heartmon/pkg/httputil"
)

type RegisterRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Weight   *float64 `json:"weight,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Gender   *int     `json:"gender,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UpdateProfileRequest struct {
	Weight float64 `json:"weight"`
	Age    int     `json:"age"`
	Gender int     `json:"gender"`
	Height float64 `json:"height"`
}

type IngestHeartDataRequest struct {
	BPM  int `json:"bpm"`
	SpO2 int `json:"spo2"`
}

type AuthResponse struct {
	UserID       string `json:"userId"`
	Name         string `json:"name,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Weight:   req.Weight,
		Age:      req.Age,
		Gender:   req.Gender,
		Height:   req.Height,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "email already registered")
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration")
		return
	}
	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		logger.Error("registering error: issuing tokens error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating tokens")
		return
	}
	httputil.WriteDataResponse(w, http.StatusCreated, AuthResponse{
		UserID:       user.ID.String(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password")
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login")
			return
		}
	}
	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		logger.Error("login error: issuing tokens error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating tokens")
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, AuthResponse{
		UserID:       user.ID.String(),
		Name:         user.Name,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
	logger.Info("successful login")
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RefreshRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("refresh error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	claims, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		logger.Error("refresh error: invalid refresh token")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		logger.Error("refresh error: invalid uid in token claims")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tokenService.ValidateRefreshToken(ctx, uid, req.RefreshToken)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			logger.Error("refresh error: token revoked or replaced")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		logger.Error("refresh error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during token refresh")
		return
	}
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("refresh error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("refresh error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during token refresh")
		return
	}
	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		logger.Error("refresh error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token")
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, map[string]any{
		"accessToken": accessToken,
	})
	logger.Info("token refreshed")
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("logout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tokenService.RevokeRefreshToken(ctx, uid)
	if err != nil {
		logger.Error("logout error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during logout")
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, map[string]any{
		"message": "logged out successfully",
	})
	logger.Info("successful logout")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.userService.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("get profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile")
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, profile)
	logger.Info("profile provided")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req UpdateProfileRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		Weight: req.Weight,
		Age:    req.Age,
		Gender: req.Gender,
		Height: req.Height,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("update profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("update profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating profile")
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, map[string]any{
		"message": "profile updated",
	})
	logger.Info("profile updated")
}

func (s *Server) IngestHeartData(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("ingest error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req IngestHeartDataRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("ingest error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.heartService.IngestSample(ctx, uid, req.BPM, req.SpO2)
	if err != nil {
		logger.Error("ingest error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while storing sample")
		return
	}
	httputil.WriteDataResponse(w, http.StatusCreated, map[string]any{
		"message": "sample stored",
	})
	logger.Info("heart sample stored")
}

func (s *Server) RealtimeHeart(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("realtime heart error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	status, err := s.heartService.RealtimeHeart(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSampleNotFound) {
			logger.Error("realtime heart error: no heart data")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user heart data not found")
			return
		}
		logger.Error("realtime heart error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading heart data")
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, status)
	logger.Info("realtime heart provided")
}

func (s *Server) GetCalories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("calories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	report, err := s.caloriesService.ComputeCalories(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSampleNotFound):
			logger.Error("calories error: no heart data")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user heart data not found")
		case errors.Is(err, errorvalues.ErrDeviceNotWorn):
			logger.Error("calories error: device not worn")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "device is not worn")
		default:
			logger.Error("calories error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing calories")
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, report)
	logger.Info("calories provided")
}

func (s *Server) issueTokenPair(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	if err := s.tokenService.StoreRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
