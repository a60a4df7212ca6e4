package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/heartmon/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user row with embedded profile columns
	Create(ctx context.Context, user *entity.User, profile *entity.Profile) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Provides profile attributes of user with uid
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Overwrites profile attributes of user with uid
	UpdateProfile(ctx context.Context, uid uuid.UUID, profile *entity.Profile) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type CaloriesRepositoryI interface {
	// Reads the live daily record of user. Returns ErrRecordNotFound when user
	// has never accumulated anything
	GetDailyRecord(ctx context.Context, uid uuid.UUID) (*entity.DailyCalorieRecord, error)
	// Full overwrite of the daily record, not a delta write
	PutDailyRecord(ctx context.Context, uid uuid.UUID, record *entity.DailyCalorieRecord) error
}

type HeartRepositoryI interface {
	// Provides the latest sample pushed by the wearable. Returns ErrSampleNotFound
	// when the device never reported
	GetLatestSample(ctx context.Context, uid uuid.UUID) (*entity.HeartSample, error)
	// Overwrites the latest sample of user
	PutSample(ctx context.Context, uid uuid.UUID, sample *entity.HeartSample) error
}

type RefreshTokensRepositoryI interface {
	// Stores the active refresh token of user, replacing the previous one
	Store(ctx context.Context, uid uuid.UUID, token string) error
	// Returns the active refresh token or ErrTokenNotFound
	Get(ctx context.Context, uid uuid.UUID) (string, error)
	// Drops the active refresh token (logout)
	Delete(ctx context.Context, uid uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}
