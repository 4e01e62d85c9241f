package main

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/TripMitra/trip-mitra-backend/config"
	"github.com/TripMitra/trip-mitra-backend/db"
	"github.com/TripMitra/trip-mitra-backend/handlers"
	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/router"
	"github.com/TripMitra/trip-mitra-backend/services"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tripDB := db.NewTripDB(pool)

	// Redis with TLS in production
	redisOptions := &redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}

	if cfg.IsProduction() || cfg.Redis.UseTLS {
		host, _, err := net.SplitHostPort(cfg.Redis.Address)
		if err != nil {
			host = cfg.Redis.Address
		}
		redisOptions.TLSConfig = &tls.Config{
			ServerName: host,
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(redisOptions)
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warnw("Failed to close redis client", "error", err)
		}
	}()

	// Services
	rateLimitService := services.NewRateLimitService(redisClient)
	planCache := services.NewPlanCacheService(redisClient, time.Duration(cfg.Cache.PlanTTLSeconds)*time.Second)
	aiService := services.NewAIService(cfg.OpenAI)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	// Handlers
	planHandler := handlers.NewPlanHandler(planCache, aiService)
	tripHandler := handlers.NewTripHandler(tripDB)
	healthHandler := handlers.NewHealthHandler(healthService)

	r := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		PlanHandler:   planHandler,
		TripHandler:   tripHandler,
		HealthHandler: healthHandler,
		RateLimiter:   rateLimitService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}
