package settings

import (
	"context"
	"sync"

	"alianza-shop/shop-svc/internal/domain"

	"go.uber.org/zap"
)

type Source interface {
	ListConfigurations() ([]domain.ConfigEntry, error)
}

// Cache is the shared copy of the resolved record plus the update broadcast.
type Cache interface {
	Load(ctx context.Context) (*StoreSettings, error)
	Save(ctx context.Context, s StoreSettings) error
	PublishUpdate(ctx context.Context) error
	Updates(ctx context.Context) <-chan struct{}
}

type Provider struct {
	source Source
	cache  Cache
	logger *zap.Logger

	mu      sync.RWMutex
	current *StoreSettings
}

func NewProvider(source Source, cache Cache, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{source: source, cache: cache, logger: logger}
}

func (p *Provider) Get(ctx context.Context) StoreSettings {
	p.mu.RLock()
	cur := p.current
	p.mu.RUnlock()
	if cur != nil {
		return *cur
	}
	return p.Reload(ctx)
}

// Reload refetches the table wholesale. When the table cannot be read the
// shared cache is used, then the defaults.
func (p *Provider) Reload(ctx context.Context) StoreSettings {
	var resolved StoreSettings

	entries, err := p.source.ListConfigurations()
	if err == nil {
		resolved = Parse(entries, p.logger)
		if p.cache != nil {
			if err := p.cache.Save(ctx, resolved); err != nil {
				p.logger.Warn("failed to cache settings", zap.Error(err))
			}
		}
	} else {
		p.logger.Error("failed to load configurations", zap.Error(err))
		resolved = p.fallback(ctx)
	}

	p.mu.Lock()
	p.current = &resolved
	p.mu.Unlock()
	return resolved
}

func (p *Provider) fallback(ctx context.Context) StoreSettings {
	if p.cache != nil {
		if cached, err := p.cache.Load(ctx); err == nil && cached != nil {
			return *cached
		}
	}
	return Defaults()
}

// Invalidate drops the local copy and tells every other instance to reload.
func (p *Provider) Invalidate(ctx context.Context) {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	if p.cache == nil {
		return
	}
	if err := p.cache.PublishUpdate(ctx); err != nil {
		p.logger.Warn("failed to publish configuration update", zap.Error(err))
	}
}

// Watch reloads on every broadcast until ctx is done.
func (p *Provider) Watch(ctx context.Context) {
	if p.cache == nil {
		return
	}
	updates := p.cache.Updates(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-updates:
			if !ok {
				return
			}
			p.logger.Info("configuration updated, reloading")
			p.Reload(ctx)
		}
	}
}
