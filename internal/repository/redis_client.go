package repository

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/limbo/heartmon/pkg/cleanup"
)

// NewRedisClient creates the shared client for the realtime-data repositories
// (heart samples, daily calorie records, refresh tokens).
func NewRedisClient(cfg *RedisCfg) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	err := client.Ping(context.Background()).Err()
	if err != nil {
		log.Fatal("error while pinging redis: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F: func() error {
			return client.Close()
		},
	})
	return client
}
