package di

import (
	"context"
	"log/slog"
	"time"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/cache"
	infraredis "market_gateway/internal/platform/redis"
)

// NewCacheStore creates a CacheStore implementation.
// If the redis backend is configured and reachable, it returns a Redis-backed store
// whose namespace is purged first. Otherwise, it falls back to the in-memory store.
// The returned function releases the store's resources.
func NewCacheStore(ctx context.Context, cfg cache.Config) (usecase.CacheStore, string, func()) {
	if cfg.Backend == cache.BackendRedis {
		rdb, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig())
		if err == nil {
			store := cache.NewRedisStore(rdb, cfg.Namespace)
			if err := store.Purge(ctx); err != nil {
				slog.Warn("failed to purge redis cache namespace", "namespace", cfg.Namespace, "error", err)
			}
			slog.Info("cache backend selected", "backend", cache.BackendRedis, "namespace", cfg.Namespace)
			return store, cache.BackendRedis, func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}
		}
		slog.Warn("Redis unavailable. Falling back to in-memory cache.", "error", err)
	}

	janitorCtx, cancel := context.WithCancel(ctx)
	store := cache.NewMemoryStore()
	store.StartJanitor(janitorCtx, cfg.SweepInterval)
	slog.Info("cache backend selected", "backend", cache.BackendMemory, "sweep_interval", cfg.SweepInterval)
	return store, cache.BackendMemory, cancel
}

// NewTTLPolicy maps cache configuration to per-capability TTLs.
func NewTTLPolicy(cfg cache.Config) usecase.TTLPolicy {
	return usecase.TTLPolicy{
		Default: cfg.TTL,
		Overrides: map[entity.Capability]time.Duration{
			entity.CapabilityStock:     cfg.StockTTL,
			entity.CapabilityCrypto:    cfg.CryptoTTL,
			entity.CapabilityRates:     cfg.RatesTTL,
			entity.CapabilityConvert:   cfg.ConvertTTL,
			entity.CapabilityIndicator: cfg.IndicatorTTL,
		},
	}
}
