package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/metrics"
)

// RedisStore implements usecase.CacheStore on top of Redis so several gateway
// replicas can share one cache. Expiry is delegated to Redis TTLs.
// All operations are best effort: a Redis failure is a miss or a skipped write.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

var _ usecase.CacheStore = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. If namespace is empty, it uses "market".
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "market"
	}
	return &RedisStore{rdb: rdb, namespace: namespace}
}

// Get returns the value stored under key, or false on miss or Redis error.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("redis cache get failed", "key", key, "error", err)
			metrics.RecordCacheOperation("get", "error")
			return nil, false
		}
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}
	if len(b) == 0 {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}
	metrics.RecordCacheOperation("get", "hit")
	return b, true
}

// Set stores value under key with the given ttl, overwriting any previous value.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.rdb.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		slog.Warn("redis cache set failed", "key", key, "error", err)
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Purge deletes every key in the store's namespace.
// It is called at startup so a restarted gateway never serves entries from a previous run.
func (s *RedisStore) Purge(ctx context.Context) error {
	return s.deleteByPattern(ctx, s.namespace+":*")
}

// key prefixes a cache key with the store namespace.
func (s *RedisStore) key(k string) string {
	return s.namespace + ":" + k
}

// deleteByPattern deletes all keys matching a given pattern using SCAN.
func (s *RedisStore) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := s.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
