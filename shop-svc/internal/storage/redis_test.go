package storage

import (
	"context"
	"testing"
	"time"

	"alianza-shop/shop-svc/internal/cart"
	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/settings"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisCartStore_UnknownSessionIsEmpty(t *testing.T) {
	_, client := newRedis(t)
	store := NewRedisCartStore(client, time.Hour)

	c, err := store.Load(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc", c.SessionID)
	assert.Empty(t, c.Items)
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisCartStore(client, time.Hour)
	ctx := context.Background()

	c := cart.New("abc")
	require.NoError(t, c.Add(cart.Item{ProductID: 7, Name: "Lomo Vetado", Price: 15990, UnitType: domain.UnitKg}, 1.5))
	require.NoError(t, store.Save(ctx, c))

	assert.True(t, mr.Exists("cart:abc"))
	assert.Equal(t, time.Hour, mr.TTL("cart:abc"))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 1.5, loaded.Items[0].Quantity)
	assert.Equal(t, domain.UnitKg, loaded.Items[0].UnitType)
}

func TestRedisCartStore_LoadRefreshesTTL(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisCartStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, cart.New("abc")))
	mr.FastForward(40 * time.Minute)

	_, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("cart:abc"))

	mr.FastForward(2 * time.Hour)
	assert.False(t, mr.Exists("cart:abc"))
}

func TestRedisCartStore_Delete(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisCartStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, cart.New("abc")))
	require.NoError(t, store.Delete(ctx, "abc"))

	assert.False(t, mr.Exists("cart:abc"))
}

func TestRedisCartStore_CorruptPayload(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisCartStore(client, time.Hour)
	require.NoError(t, mr.Set("cart:abc", "{not json"))

	_, err := store.Load(context.Background(), "abc")

	assert.Error(t, err)
}

func TestRedisSettingsCache_SaveLoad(t *testing.T) {
	mr, client := newRedis(t)
	cache := NewRedisSettingsCache(client, time.Hour)
	ctx := context.Background()

	_, err := cache.Load(ctx)
	assert.ErrorIs(t, err, redis.Nil)

	s := settings.Defaults()
	s.MinimumOrder = 25000
	s.AvailableCommunes = []string{"Providencia"}
	require.NoError(t, cache.Save(ctx, s))
	assert.Equal(t, time.Hour, mr.TTL(SettingsKey))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, loaded.MinimumOrder)
	assert.Equal(t, []string{"Providencia"}, loaded.AvailableCommunes)
}

func TestRedisSettingsCache_PublishUpdate(t *testing.T) {
	mr, client := newRedis(t)
	cache := NewRedisSettingsCache(client, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, cache.Save(ctx, settings.Defaults()))
	updates := cache.Updates(ctx)

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(SettingsChannel)[SettingsChannel] == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, cache.PublishUpdate(ctx))
	assert.False(t, mr.Exists(SettingsKey))

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("no update signal received")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-updates
		return !open
	}, time.Second, 10*time.Millisecond)
}
