package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"alianza-shop/shop-svc/internal/cart"
	"alianza-shop/shop-svc/internal/settings"

	"github.com/redis/go-redis/v9"
)

const (
	SettingsKey     = "config:store"
	SettingsChannel = "config:updated"
)

type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Load returns an empty cart for unknown sessions and refreshes the TTL of known ones.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	raw, err := s.Client.GetEx(ctx, s.CartKey(sessionID), s.TTL).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(sessionID), nil
	}
	if err != nil {
		return nil, err
	}

	c := cart.New(sessionID)
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	c.SessionID = sessionID
	return c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.CartKey(c.SessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.CartKey(sessionID)).Err()
}

type RedisSettingsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSettingsCache(client *redis.Client, ttl time.Duration) *RedisSettingsCache {
	return &RedisSettingsCache{Client: client, TTL: ttl}
}

func (c *RedisSettingsCache) Load(ctx context.Context) (*settings.StoreSettings, error) {
	raw, err := c.Client.Get(ctx, SettingsKey).Bytes()
	if err != nil {
		return nil, err
	}
	var s settings.StoreSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RedisSettingsCache) Save(ctx context.Context, s settings.StoreSettings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, SettingsKey, payload, c.TTL).Err()
}

func (c *RedisSettingsCache) PublishUpdate(ctx context.Context) error {
	if err := c.Client.Del(ctx, SettingsKey).Err(); err != nil {
		return err
	}
	return c.Client.Publish(ctx, SettingsChannel, "reload").Err()
}

// Updates emits one signal per message on the update channel until ctx is done.
func (c *RedisSettingsCache) Updates(ctx context.Context) <-chan struct{} {
	sub := c.Client.Subscribe(ctx, SettingsChannel)
	out := make(chan struct{})

	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
