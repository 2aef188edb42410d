package storage

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"alianza-shop/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailySalesTTL = 7 * 24 * time.Hour

	AllTimeQuantityKey = "sales:alltime"
	AllTimeRevenueKey  = "sales:revenue:alltime"
	ProductNamesKey    = "sales:names"
)

func DailyQuantityKey(day time.Time) string {
	return "sales:daily:" + day.Format("2006-01-02")
}

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func (s *Store) RecordOrder(ctx context.Context, day time.Time, total float64, newCustomer bool) error {
	newCustomers := 0
	if newCustomer {
		newCustomers = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analytics (date, total_sales, total_orders, new_customers)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (date) DO UPDATE
		SET total_sales = analytics.total_sales + EXCLUDED.total_sales,
			total_orders = analytics.total_orders + 1,
			new_customers = analytics.new_customers + EXCLUDED.new_customers
	`, day.Format("2006-01-02"), total, newCustomers)
	return err
}

func (s *Store) RecordDiscount(ctx context.Context, day time.Time, amount float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analytics (date, total_discount)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE
		SET total_discount = analytics.total_discount + EXCLUDED.total_discount
	`, day.Format("2006-01-02"), amount)
	return err
}

// RecordProductSales bumps the per-product leaderboards in one pipeline.
func (s *Store) RecordProductSales(ctx context.Context, day time.Time, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}
	dailyKey := DailyQuantityKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			member := strconv.Itoa(item.ProductID)
			pipe.ZIncrBy(ctx, dailyKey, item.Quantity, member)
			pipe.ZIncrBy(ctx, AllTimeQuantityKey, item.Quantity, member)
			pipe.ZIncrBy(ctx, AllTimeRevenueKey, item.Quantity*item.Price, member)
			if item.ProductName != "" {
				pipe.HSet(ctx, ProductNamesKey, member, item.ProductName)
			}
		}
		pipe.Expire(ctx, dailyKey, dailySalesTTL)
		return nil
	})
	return err
}
