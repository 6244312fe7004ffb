package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-backend/config"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/notification"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend with role-based access control over jobs, applications and profiles.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.ApplyMigrations("file://internal/repository/postgres/migrations", cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// Notification delivery is best effort. Without a broker the API
	// still works; notifications are just dropped.
	var notifier domain.NotificationPublisher = notification.NoopPublisher{}
	if cfg.AMQPURL != "" {
		publisher, err := notification.NewPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			logger.Log.Warn("Notification broker unavailable", "error", err)
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	userRepo := postgres.NewUserRepository(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerProfileRepository(dbPool)
	employerRepo := postgres.NewEmployerProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, jobSeekerRepo, employerRepo, validate, cfg.JWTSecret, cfg.JWTExpiry)
	profileUC := usecase.NewProfileUsecase(jobSeekerRepo, employerRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, jobSeekerRepo, employerRepo, notifier)
	dashboardUC := usecase.NewDashboardUsecase(statsRepo, jobSeekerRepo, employerRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		DashboardUC:   dashboardUC,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
