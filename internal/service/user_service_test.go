package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository/mocks"
	"github.com/limbo/heartmon/internal/service"
	"github.com/limbo/heartmon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewUserService(usersRepo)
	ctx := context.Background()
	uid := uuid.New()
	email := "test@example.com"

	t.Run("success with profile defaults", func(t *testing.T) {
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *entity.User, profile *entity.Profile) error {
				assert.Equal(t, email, user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test_password")))
				assert.Equal(t, 65.0, profile.Weight)
				assert.Equal(t, 25, profile.Age)
				assert.Equal(t, entity.GenderMale, profile.Gender)
				assert.Equal(t, 170.0, profile.Height)
				return nil
			})
		usersRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(&entity.User{ID: uid, Email: email, Name: "tester"}, nil)
		user, err := serv.Register(ctx, &service.RegisterRequest{
			Email:    email,
			Password: "test_password",
			Name:     "tester",
		})
		require.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})

	t.Run("success with explicit profile", func(t *testing.T) {
		weight, age, gender, height := 58.5, 31, entity.GenderFemale, 164.0
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *entity.User, profile *entity.Profile) error {
				assert.Equal(t, weight, profile.Weight)
				assert.Equal(t, age, profile.Age)
				assert.Equal(t, gender, profile.Gender)
				assert.Equal(t, height, profile.Height)
				return nil
			})
		usersRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(&entity.User{ID: uid, Email: email}, nil)
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Email:    email,
			Password: "test_password",
			Name:     "tester",
			Weight:   &weight,
			Age:      &age,
			Gender:   &gender,
			Height:   &height,
		})
		assert.NoError(t, err)
	})

	t.Run("existed user", func(t *testing.T) {
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Email:    email,
			Password: "test_password",
			Name:     "tester",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Email:    "not-an-email",
			Password: "short",
			Name:     "tester",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewUserService(usersRepo)
	ctx := context.Background()
	email := "test@example.com"
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("test_password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Email: email, PasswordHash: string(passwordHash)}

	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(user, nil)
		result, err := serv.Login(ctx, email, "test_password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		usersRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(user, nil)
		_, err := serv.Login(ctx, email, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unexist user", func(t *testing.T) {
		usersRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.Login(ctx, email, "test_password")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewUserService(usersRepo)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().UpdateProfile(gomock.Any(), uid, &entity.Profile{
			Weight: 80,
			Age:    40,
			Gender: entity.GenderMale,
			Height: 180,
		}).Return(nil)
		err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
			Weight: 80,
			Age:    40,
			Gender: entity.GenderMale,
			Height: 180,
		})
		assert.NoError(t, err)
	})
	t.Run("validation error", func(t *testing.T) {
		err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
			Weight: -10,
			Age:    40,
			Gender: entity.GenderMale,
			Height: 180,
		})
		assert.Error(t, err)
	})
	t.Run("unexist user", func(t *testing.T) {
		usersRepo.EXPECT().UpdateProfile(gomock.Any(), uid, gomock.Any()).Return(errorvalues.ErrUserNotFound)
		err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
			Weight: 80,
			Age:    40,
			Gender: entity.GenderMale,
			Height: 180,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetProfile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewUserService(usersRepo)
	uid := uuid.New()

	t.Run("found", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), uid).Return(&entity.Profile{Weight: 70, Age: 30, Gender: 1, Height: 175}, nil)
		profile, err := serv.GetProfile(context.Background(), uid)
		require.NoError(t, err)
		assert.Equal(t, 70.0, profile.Weight)
	})
	t.Run("unexist user", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.GetProfile(context.Background(), uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
