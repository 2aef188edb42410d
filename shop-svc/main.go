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
	httpapi "alianza-shop/shop-svc/internal/api/http"
	"alianza-shop/shop-svc/internal/checkout"
	"alianza-shop/shop-svc/internal/service"
	"alianza-shop/shop-svc/internal/settings"
	"alianza-shop/shop-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const settingsCacheTTL = time.Hour

type app struct {
	handler  *httpapi.Handler
	provider *settings.Provider
}

func buildApp(cfg *config.Config, db *sql.DB, rdb *redis.Client, writer *kafka.Writer, logger *zap.Logger) *app {
	repo := storage.NewPostgresRepository(db)
	provider := settings.NewProvider(repo, storage.NewRedisSettingsCache(rdb, settingsCacheTTL), logger.Named("settings"))
	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	checkoutSvc := checkout.NewService(checkout.Deps{
		Carts:     storage.NewRedisCartStore(rdb, cfg.CartTTL),
		Settings:  provider,
		Zones:     repo,
		Customers: repo,
		Orders:    repo,
		Coupons:   checkout.NewHTTPCouponClient(cfg.CouponSvcURL, tokens),
		Events:    storage.NewKafkaPublisher(writer),
		Tokens:    tokens,
		Logger:    logger.Named("checkout"),
	})

	svcs := httpapi.Services{
		Categories: service.NewCategoryService(repo),
		Products:   service.NewProductService(repo),
		Offers:     service.NewOfferService(repo, time.Now),
		Customers:  service.NewCustomerService(repo),
		Orders:     service.NewOrderService(repo, service.DefaultQRGenerator{}, provider, logger.Named("orders")),
		Zones:      service.NewZoneService(repo),
		Locations:  service.NewLocationService(repo),
		Config:     service.NewConfigService(repo, provider),
		Auth:       service.NewAuthService(repo, tokens, auth.CheckPassword),
		Checkout:   checkoutSvc,
	}

	handler := httpapi.NewHandler(svcs, tokens.Middleware, logger.Named("http"))
	handler.OrderTokens = tokens

	return &app{
		handler:  handler,
		provider: provider,
	}
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
	logger = logger.With(zap.String("service", "shop-svc"))

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()
	if err := storage.EnsureSchema(db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg, cfg.OrderEventsTopic)
	defer writer.Close()

	a := buildApp(cfg, db, rdb, writer, logger)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go a.provider.Watch(watchCtx)

	srv := &http.Server{
		Addr:              cfg.Addr("8081"),
		Handler:           httpapi.NewRouter(a.handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Shop service starting", zap.String("addr", srv.Addr))
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
