package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"alianza-shop/config"
	"alianza-shop/stats-svc/internal/service"
	"alianza-shop/stats-svc/internal/storage"

	"go.uber.org/zap"
)

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
	logger = logger.With(zap.String("service", "stats-svc"))

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, cfg.OrderEventsTopic, cfg.StatsGroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), logger)
	consumer.Start(ctx)
}
