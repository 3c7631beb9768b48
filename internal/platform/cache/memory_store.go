// Package cache provides cache store implementations for the market gateway.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/metrics"
)

// entry is a single cached payload. It is servable iff now < storedAt + ttl.
type entry struct {
	value    []byte
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) validAt(now time.Time) bool {
	return now.Before(e.storedAt.Add(e.ttl))
}

// MemoryStore is a process-wide in-memory cache with lazy TTL expiry.
// The lock guards the map only; it is never held across an upstream call.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

var _ usecase.CacheStore = (*MemoryStore)(nil)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]entry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value stored under key if it has not expired.
// An expired entry is treated as absent and removed.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	now := s.now()
	if !e.validAt(now) {
		s.mu.Lock()
		// Double-check after acquiring the write lock: a concurrent Set may have refreshed it.
		if cur, stillThere := s.items[key]; stillThere && !cur.validAt(now) {
			delete(s.items, key)
		}
		size := len(s.items)
		s.mu.Unlock()
		metrics.CacheEntries.Set(float64(size))
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return e.value, true
}

// Set unconditionally overwrites the entry for key and resets its expiry to now + ttl.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	s.items[key] = entry{value: value, storedAt: s.now(), ttl: ttl}
	size := len(s.items)
	s.mu.Unlock()

	metrics.CacheEntries.Set(float64(size))
	metrics.RecordCacheOperation("set", "success")
}

// Len returns the number of entries currently held, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Sweep removes every expired entry and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	now := s.now()
	removed := 0
	for k, e := range s.items {
		if !e.validAt(now) {
			delete(s.items, k)
			removed++
		}
	}
	size := len(s.items)
	s.mu.Unlock()

	metrics.CacheEntries.Set(float64(size))
	if removed > 0 {
		metrics.CacheOperationsTotal.WithLabelValues("sweep", "removed").Add(float64(removed))
	}
	return removed
}

// StartJanitor sweeps expired entries every interval until ctx is done.
// Expiry stays lazy without it; the janitor only reclaims memory.
func (s *MemoryStore) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					slog.Debug("cache sweep", "removed", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
