package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/heartmon/internal/error_values"
	"github.com/limbo/heartmon/internal/repository"
	"github.com/limbo/heartmon/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Email:        "test@example.com",
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	profile := entity.Profile{
		Weight: 65,
		Age:    25,
		Gender: entity.GenderMale,
		Height: 170,
	}
	query := regexp.QuoteMeta(`INSERT INTO users (email, name, password_hash, weight, age, gender, height) VALUES ($1, $2, $3, $4, $5, $6, $7);`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	args := []any{user.Email, user.Name, user.PasswordHash, profile.Weight, profile.Age, profile.Gender, profile.Height}
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user, &profile)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user, &profile)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user, &profile)
		assert.Error(t, err)
	})
}

func TestFindByEmail(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
				AddRow(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByEmail(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
				AddRow(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetProfile(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	profile := entity.Profile{
		Weight: 70,
		Age:    30,
		Gender: entity.GenderMale,
		Height: 175,
	}
	query := regexp.QuoteMeta(`SELECT weight, age, gender, height FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"weight", "age", "gender", "height"}).
				AddRow(profile.Weight, profile.Age, profile.Gender, profile.Height))
		result, err := repo.GetProfile(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, profile, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetProfile(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	profile := entity.Profile{
		Weight: 80,
		Age:    40,
		Gender: entity.GenderFemale,
		Height: 168,
	}
	query := regexp.QuoteMeta(`UPDATE users SET weight = $1, age = $2, gender = $3, height = $4 WHERE id = $5;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(profile.Weight, profile.Age, profile.Gender, profile.Height, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateProfile(ctx, uid, &profile)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(profile.Weight, profile.Age, profile.Gender, profile.Height, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateProfile(ctx, uid, &profile)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
