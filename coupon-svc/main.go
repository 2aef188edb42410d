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

	"alianza-shop/auth"
	"alianza-shop/config"
	httpapi "alianza-shop/coupon-svc/internal/api/http"
	"alianza-shop/coupon-svc/internal/service"
	"alianza-shop/coupon-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const usageMarkerTTL = 30 * 24 * time.Hour

// buildHandler wires the coupon service. A nil writer disables usage events.
func buildHandler(cfg *config.Config, db *sql.DB, rdb *redis.Client, writer *kafka.Writer, logger *zap.Logger) http.Handler {
	var publisher service.EventPublisher
	if writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
	}

	coupons := service.NewCouponService(
		storage.NewPostgresRepository(db),
		storage.NewRedisCache(rdb, usageMarkerTTL),
		publisher,
		logger.Named("coupons"),
	)
	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	return httpapi.NewRouter(httpapi.NewHandler(coupons, tokens.Middleware, tokens.Require(auth.RoleService), logger.Named("http")))
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
	logger = logger.With(zap.String("service", "coupon-svc"))

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg, cfg.OrderEventsTopic)
	defer writer.Close()

	srv := &http.Server{
		Addr:              cfg.Addr("8082"),
		Handler:           buildHandler(cfg, db, rdb, writer, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Coupon service starting", zap.String("addr", srv.Addr))
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
