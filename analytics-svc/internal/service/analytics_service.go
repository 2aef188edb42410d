package service

import (
	"context"
	"math"

	"alianza-shop/analytics-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultDays       = 30
	MaxDays           = 365
	DefaultLimit      = 5
	MaxLimit          = 50
	LowStockThreshold = 5
)

// AnalyticsService builds the admin reports. Every report degrades to an
// empty result when its source fails; failures are only logged.
type AnalyticsService struct {
	reports     ReportRepository
	leaderboard Leaderboard
	logger      *zap.Logger
}

func NewAnalyticsService(reports ReportRepository, leaderboard Leaderboard, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{reports: reports, leaderboard: leaderboard, logger: logger}
}

func clamp(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

func (s *AnalyticsService) Daily(days int) []domain.DailyAnalytics {
	series, err := s.reports.DailyAnalytics(clamp(days, DefaultDays, MaxDays))
	if err != nil {
		s.logger.Error("Error fetching analytics", zap.Error(err))
		return []domain.DailyAnalytics{}
	}
	return series
}

// TopProducts reads the leaderboard and falls back to order items when it is
// empty or unreachable.
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) []domain.ProductSales {
	limit = clamp(limit, DefaultLimit, MaxLimit)

	if s.leaderboard != nil {
		products, err := s.leaderboard.TopProducts(ctx, limit)
		if err == nil && len(products) > 0 {
			return products
		}
		if err != nil {
			s.logger.Warn("Leaderboard unavailable, using order items", zap.Error(err))
		}
	}

	products, err := s.reports.TopProducts(limit)
	if err != nil {
		s.logger.Error("Error fetching top products", zap.Error(err))
		return []domain.ProductSales{}
	}
	return products
}

func (s *AnalyticsService) InventoryAlerts() []domain.InventoryAlert {
	alerts, err := s.reports.InventoryAlerts(LowStockThreshold)
	if err != nil {
		s.logger.Error("Error fetching inventory alerts", zap.Error(err))
		return []domain.InventoryAlert{}
	}
	return alerts
}

func (s *AnalyticsService) FrequentCustomers(limit int) []domain.FrequentCustomer {
	customers, err := s.reports.FrequentCustomers(clamp(limit, DefaultLimit, MaxLimit))
	if err != nil {
		s.logger.Error("Error fetching frequent customers", zap.Error(err))
		return []domain.FrequentCustomer{}
	}
	return customers
}

// SalesByCategory fills each category's share of the summed category revenue,
// rounded to whole percent.
func (s *AnalyticsService) SalesByCategory() []domain.CategorySales {
	sales, err := s.reports.SalesByCategory()
	if err != nil {
		s.logger.Error("Error fetching sales by category", zap.Error(err))
		return []domain.CategorySales{}
	}

	var total float64
	for _, c := range sales {
		total += c.Amount
	}
	for i := range sales {
		if total > 0 {
			sales[i].Percentage = int(math.Round(sales[i].Amount / total * 100))
		}
	}
	return sales
}

func (s *AnalyticsService) Summary(days int) domain.Summary {
	days = clamp(days, DefaultDays, MaxDays)
	summary := domain.Summary{Days: days}

	for _, d := range s.Daily(days) {
		summary.TotalSales += d.TotalSales
		summary.TotalOrders += d.TotalOrders
		summary.NewCustomers += d.NewCustomers
		summary.TotalDiscount += d.TotalDiscount
	}
	if summary.TotalOrders > 0 {
		summary.AverageTicket = math.Round(summary.TotalSales / float64(summary.TotalOrders))
	}
	return summary
}
