// Package main is the entry point for the textdesk HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/textdesk/textdesk/internal/config"
	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/handler"
	"github.com/textdesk/textdesk/internal/middleware"
	"github.com/textdesk/textdesk/internal/repository"
	"github.com/textdesk/textdesk/internal/repository/memory"
	"github.com/textdesk/textdesk/internal/service"
	"github.com/textdesk/textdesk/internal/session"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	repo, cleanup, err := buildRepository(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	var redisClient *redis.Client
	if cfg.Session.Store == "redis" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	sessionStore, closeSessions := buildSessionStore(cfg, redisClient)
	defer closeSessions()

	sessions := session.NewManager(sessionStore, &cfg.Session)

	gatewayClient := gateway.NewClient(&cfg.Gateway, logger)

	svc := service.NewService(repo, gatewayClient, redisClient, logger)

	h := handler.NewHandler(svc, sessions, logger)

	router := setupRouter(h, sessions)

	middlewareConfig := &middleware.Config{
		Logger: logger,
		CORS: &middleware.CORSConfig{
			AllowedOrigins:   cfg.Middleware.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: 30 * time.Second,
	}

	finalHandler := middleware.Chain(middlewareConfig)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("storage", cfg.Storage.Driver),
			zap.String("session_store", cfg.Session.Store))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildRepository selects the configured persistence backend.
func buildRepository(cfg *config.Config, logger *zap.Logger) (repository.Repository, func(), error) {
	if cfg.Storage.Driver == "memory" {
		logger.Warn("Using in-memory storage; data will not survive restarts")
		return memory.NewRepository(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	return repository.NewRepository(db), cleanup, nil
}

// buildSessionStore selects the configured session backend.
func buildSessionStore(cfg *config.Config, redisClient *redis.Client) (session.Store, func()) {
	if cfg.Session.Store == "redis" && redisClient != nil {
		return session.NewRedisStore(redisClient), func() {}
	}

	store := session.NewMemoryStore()
	return store, store.Close
}
