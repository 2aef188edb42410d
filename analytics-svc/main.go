package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "alianza-shop/analytics-svc/internal/api/http"
	"alianza-shop/analytics-svc/internal/service"
	"alianza-shop/analytics-svc/internal/storage"
	"alianza-shop/auth"
	"alianza-shop/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func buildHandler(cfg *config.Config, db *sql.DB, rdb *redis.Client, logger *zap.Logger) http.Handler {
	analytics := service.NewAnalyticsService(
		storage.NewPostgresReports(db),
		storage.NewRedisLeaderboard(rdb),
		logger.Named("reports"),
	)
	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	return httpapi.NewRouter(httpapi.NewHandler(analytics, tokens.Middleware))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", "analytics-svc"))

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	srv := &http.Server{
		Addr:              cfg.Addr("8083"),
		Handler:           buildHandler(cfg, db, rdb, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Analytics service starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
