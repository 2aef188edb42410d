package settings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alianza-shop/shop-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	mu      sync.Mutex
	entries []domain.ConfigEntry
	err     error
	calls   int
}

func (s *stubSource) ListConfigurations() ([]domain.ConfigEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.entries, s.err
}

func (s *stubSource) set(entries []domain.ConfigEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type memoryCache struct {
	saved     *StoreSettings
	published int
	updates   chan struct{}
}

func (c *memoryCache) Load(ctx context.Context) (*StoreSettings, error) {
	if c.saved == nil {
		return nil, errors.New("miss")
	}
	return c.saved, nil
}

func (c *memoryCache) Save(ctx context.Context, s StoreSettings) error {
	c.saved = &s
	return nil
}

func (c *memoryCache) PublishUpdate(ctx context.Context) error {
	c.published++
	return nil
}

func (c *memoryCache) Updates(ctx context.Context) <-chan struct{} {
	return c.updates
}

func TestParse_Defaults(t *testing.T) {
	s := Parse(nil, nil)

	assert.Equal(t, "+56912345678", s.WhatsAppNumber)
	assert.Equal(t, 3000.0, s.ShippingCost)
	assert.Equal(t, 20000.0, s.MinimumOrder)
	assert.Equal(t, "24-48 horas", s.DeliveryTime)
	assert.Empty(t, s.AvailableCommunes)
	assert.Equal(t, "LA ALIANZA CARNICERIAS", s.Footer.CompanyName)
	assert.True(t, s.Footer.Active)
}

func TestParse_Values(t *testing.T) {
	entries := []domain.ConfigEntry{
		{Key: KeyShippingCost, Value: "4500"},
		{Key: KeyMinimumOrder, Value: " 15000 "},
		{Key: KeyAvailableCommunes, Value: `["Providencia","Ñuñoa"]`},
		{Key: KeyBusinessHours, Value: `{"lunes":"9-18"}`},
		{Key: KeyInfoBarActive, Value: "false"},
		{Key: KeyHeroTitle, Value: "Asados"},
	}

	s := Parse(entries, nil)

	assert.Equal(t, 4500.0, s.ShippingCost)
	assert.Equal(t, 15000.0, s.MinimumOrder)
	assert.Equal(t, []string{"Providencia", "Ñuñoa"}, s.AvailableCommunes)
	assert.Equal(t, "9-18", s.BusinessHours["lunes"])
	assert.False(t, s.InfoBar.Active)
	assert.Equal(t, "Asados", s.HeroTitle)
}

func TestParse_MalformedValuesKeepDefaults(t *testing.T) {
	entries := []domain.ConfigEntry{
		{Key: KeyShippingCost, Value: "tres mil"},
		{Key: KeyMinimumOrder, Value: "-1"},
		{Key: KeyAvailableCommunes, Value: "Providencia"},
		{Key: KeyBusinessHours, Value: "[1,2]"},
	}

	s := Parse(entries, nil)

	assert.Equal(t, 3000.0, s.ShippingCost)
	assert.Equal(t, 20000.0, s.MinimumOrder)
	assert.Empty(t, s.AvailableCommunes)
	assert.Empty(t, s.BusinessHours)
}

func TestDeliveryPolicy(t *testing.T) {
	s := Defaults()
	s.AvailableCommunes = []string{"Providencia"}
	policy := s.DeliveryPolicy([]domain.DeliveryZone{
		{Name: "Providencia", DeliveryPrice: 2000, EstimatedTime: "30 min", IsActive: true},
	})

	d := policy.Resolve("Providencia")
	assert.Equal(t, 2000.0, d.Fee)
	assert.True(t, d.Available)
	assert.Equal(t, "30 min", d.EstimatedTime)

	lower := policy.Resolve("providencia ")
	assert.Equal(t, d, lower)
}

func TestProvider_CachesUntilInvalidated(t *testing.T) {
	source := &stubSource{entries: []domain.ConfigEntry{{Key: KeyShippingCost, Value: "2500"}}}
	cache := &memoryCache{}
	p := NewProvider(source, cache, nil)
	ctx := context.Background()

	assert.Equal(t, 2500.0, p.Get(ctx).ShippingCost)
	assert.Equal(t, 2500.0, p.Get(ctx).ShippingCost)
	assert.Equal(t, 1, source.callCount())
	require.NotNil(t, cache.saved)

	source.set([]domain.ConfigEntry{{Key: KeyShippingCost, Value: "5000"}})
	p.Invalidate(ctx)

	assert.Equal(t, 1, cache.published)
	assert.Equal(t, 5000.0, p.Get(ctx).ShippingCost)
	assert.Equal(t, 2, source.callCount())
}

func TestProvider_FallsBackToCacheThenDefaults(t *testing.T) {
	ctx := context.Background()
	cached := Defaults()
	cached.MinimumOrder = 12345

	p := NewProvider(&stubSource{err: errors.New("db down")}, &memoryCache{saved: &cached}, nil)
	assert.Equal(t, 12345.0, p.Get(ctx).MinimumOrder)

	p = NewProvider(&stubSource{err: errors.New("db down")}, &memoryCache{}, nil)
	assert.Equal(t, 20000.0, p.Get(ctx).MinimumOrder)

	p = NewProvider(&stubSource{err: errors.New("db down")}, nil, nil)
	assert.Equal(t, Defaults(), p.Get(ctx))
}

func TestProvider_WatchReloadsOnSignal(t *testing.T) {
	source := &stubSource{entries: []domain.ConfigEntry{{Key: KeyDeliveryTime, Value: "hoy"}}}
	cache := &memoryCache{updates: make(chan struct{})}
	p := NewProvider(source, cache, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Equal(t, "hoy", p.Get(ctx).DeliveryTime)

	done := make(chan struct{})
	go func() {
		p.Watch(ctx)
		close(done)
	}()

	source.set([]domain.ConfigEntry{{Key: KeyDeliveryTime, Value: "mañana"}})
	cache.updates <- struct{}{}

	assert.Eventually(t, func() bool {
		return p.Get(ctx).DeliveryTime == "mañana"
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
