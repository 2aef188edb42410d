package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alianza-shop/api-gateway/internal/gateway"
	"alianza-shop/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func buildHandler(cfg *config.Config, client gateway.HTTPClient, logger *zap.Logger) http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		ShopSvcURL:      cfg.ShopSvcURL,
		CouponSvcURL:    cfg.CouponSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
		FrontendDir:     cfg.FrontendDir,
	}, client, logger.Named("gateway"))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.PublicBaseURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Cart-Session"},
		ExposedHeaders:   []string{"X-Cart-Session", "X-View"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
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
	logger = logger.With(zap.String("service", "api-gateway"))

	srv := &http.Server{
		Addr:              cfg.Addr("8080"),
		Handler:           buildHandler(cfg, &http.Client{Timeout: 30 * time.Second}, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API Gateway starting",
			zap.String("addr", srv.Addr),
			zap.String("shop", cfg.ShopSvcURL),
			zap.String("coupons", cfg.CouponSvcURL),
			zap.String("analytics", cfg.AnalyticsSvcURL))
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
