package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) UsageMarkerKey(code, orderID string) string {
	return "coupon:used:" + code + ":" + orderID
}

// MarkUsed sets the marker and reports whether it was newly set.
func (c *RedisCache) MarkUsed(ctx context.Context, key string) (bool, error) {
	return c.Client.SetNX(ctx, key, "1", c.TTL).Result()
}

func (c *RedisCache) Unmark(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
