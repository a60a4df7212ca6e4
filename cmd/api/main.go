// @title Heart-monitor API
// @description Backend for the wearable heart-monitoring app "Heartmon"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/heartmon/internal/api"
	"github.com/limbo/heartmon/internal/inference"
	"github.com/limbo/heartmon/internal/repository"
	"github.com/limbo/heartmon/internal/service"
	"github.com/limbo/heartmon/pkg/cleanup"
	"github.com/limbo/heartmon/pkg/config"
	jwtservice "github.com/limbo/heartmon/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	redisClient := repository.NewRedisClient(&repository.RedisCfg{
		Addr:     cfg.GetString("REDIS_ADDRESS"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB"),
	})
	usersRepo := repository.NewUsersRepo(&dbCfg)
	userService := service.NewUserService(usersRepo)
	tokenService := service.NewTokenService(repository.NewRefreshTokensRepo(redisClient))
	heartRepo := repository.NewHeartRepo(redisClient)
	caloriesService := service.NewCaloriesService(repository.NewCaloriesRepo(redisClient), heartRepo, usersRepo)
	heartService := service.NewHeartService(heartRepo, usersRepo, inference.New(cfg.GetString("MODEL_API_URL")))
	serv := api.New(&api.ServicesList{
		UserService:     userService,
		TokenService:    tokenService,
		CaloriesService: caloriesService,
		HeartService:    heartService,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetString("JWT_REFRESH_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
