package storage

import (
	"context"
	"strconv"

	"alianza-shop/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Keys written by the stats consumer.
const (
	AllTimeQuantityKey = "sales:alltime"
	AllTimeRevenueKey  = "sales:revenue:alltime"
	ProductNamesKey    = "sales:names"
)

type RedisLeaderboard struct {
	Client *redis.Client
}

func NewRedisLeaderboard(client *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{Client: client}
}

// TopProducts returns an empty slice when the leaderboard has not been built yet.
func (l *RedisLeaderboard) TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	ranked, err := l.Client.ZRevRangeWithScores(ctx, AllTimeQuantityKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return []domain.ProductSales{}, nil
	}

	members := make([]string, len(ranked))
	for i, z := range ranked {
		members[i] = z.Member.(string)
	}

	names, err := l.Client.HMGet(ctx, ProductNamesKey, members...).Result()
	if err != nil {
		return nil, err
	}
	revenue, err := l.Client.ZMScore(ctx, AllTimeRevenueKey, members...).Result()
	if err != nil {
		return nil, err
	}

	products := make([]domain.ProductSales, 0, len(ranked))
	for i, z := range ranked {
		id, err := strconv.Atoi(members[i])
		if err != nil {
			continue
		}
		name, _ := names[i].(string)
		products = append(products, domain.ProductSales{
			ProductID: id,
			Name:      name,
			Sales:     z.Score,
			Revenue:   revenue[i],
		})
	}
	return products, nil
}
