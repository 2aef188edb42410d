package service

import (
	"context"

	"alianza-shop/analytics-svc/internal/domain"
	"alianza-shop/analytics-svc/internal/storage"
)

type AnalyticsInterface interface {
	Daily(days int) []domain.DailyAnalytics
	TopProducts(ctx context.Context, limit int) []domain.ProductSales
	InventoryAlerts() []domain.InventoryAlert
	FrequentCustomers(limit int) []domain.FrequentCustomer
	SalesByCategory() []domain.CategorySales
	Summary(days int) domain.Summary
}

type ReportRepository interface {
	DailyAnalytics(days int) ([]domain.DailyAnalytics, error)
	TopProducts(limit int) ([]domain.ProductSales, error)
	InventoryAlerts(threshold float64) ([]domain.InventoryAlert, error)
	FrequentCustomers(limit int) ([]domain.FrequentCustomer, error)
	SalesByCategory() ([]domain.CategorySales, error)
}

type Leaderboard interface {
	TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error)
}

var (
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ ReportRepository   = (*storage.PostgresReports)(nil)
	_ Leaderboard        = (*storage.RedisLeaderboard)(nil)
)
