package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpapi "jobboard-backend/internal/api/http"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/ratelimit"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/security"
	"jobboard-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Job Board Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "provider", cfg.Email.Provider)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize Rate Limiter
	var limiter ratelimit.Limiter
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Invalid redis url: %v", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second, "jobboard:rl")
		logger.Info("Rate limiting enabled", "requests", cfg.RateLimit.Requests, "window_seconds", cfg.RateLimit.WindowSeconds)
	} else {
		logger.Warn("Redis not configured, rate limiting disabled")
	}

	// Initialize Services
	emailSvc, err := service.NewEmailServiceFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	notifier := service.NewStatusNotificationService(
		store.ApplicationRepository,
		store.JobRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		service.SystemClock,
	)
	svcs := httpapi.Services{
		Applications:  service.NewApplicationService(store.ApplicationRepository, store.JobRepository, notifier),
		SavedSearches: service.NewSavedSearchService(store.SavedSearchRepository),
		CareerAdvice:  service.NewCareerAdviceService(store.CareerAdviceRepository, service.SystemClock),
		Notifications: service.NewNotificationService(store.NotificationRepository),
	}

	router := httpapi.NewRouter(svcs, tokenManager, limiter, cfg.RateLimit.TrustedProxies, db)
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSecond)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
