package main

import (
	"log"
	"net/http"
	"time"

	"jobtrack/internal/config"
	apihttp "jobtrack/internal/http"
	"jobtrack/internal/repository"
	"jobtrack/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Almacenes en memoria: todo se pierde al reiniciar el proceso.
	userRepo := repository.NewMemoryUserRepository()
	jobRepo := repository.NewMemoryJobRepository()

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	userSvc := service.NewUserService(logger, userRepo, cfg.BcryptCost)
	jobSvc := service.NewJobService(logger, jobRepo)

	authHandler := apihttp.NewAuthHandler(logger, userSvc, jwtSvc)
	jobHandler := apihttp.NewJobHandler(logger, jobSvc)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, jobHandler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
