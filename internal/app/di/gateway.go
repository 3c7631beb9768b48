package di

import (
	"context"

	"market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/cache"
)

// Gateway bundles the wired gateway with the startup decisions worth reporting.
type Gateway struct {
	*usecase.Gateway
	CacheBackend string
	close        func()
}

// Close releases the cache backend.
func (g *Gateway) Close() {
	if g.close != nil {
		g.close()
	}
}

// HealthDetails returns the fields reported by /healthz.
func (g *Gateway) HealthDetails() map[string]any {
	return map[string]any{
		"rateProvider": g.RateProviderName(),
		"cache":        g.CacheBackend,
	}
}

// NewGateway wires configuration, providers, the cache backend and the gateway.
// Only configuration errors are returned; they are fatal at startup.
func NewGateway(ctx context.Context) (*Gateway, error) {
	providers, err := NewProviders()
	if err != nil {
		return nil, err
	}

	cfg := cache.LoadConfig()
	store, backend, closeFn := NewCacheStore(ctx, cfg)

	var opts []usecase.Option
	if cfg.Coalesce {
		opts = append(opts, usecase.WithCoalescing())
	}

	return &Gateway{
		Gateway:      usecase.NewGateway(store, providers, NewTTLPolicy(cfg), opts...),
		CacheBackend: backend,
		close:        closeFn,
	}, nil
}
