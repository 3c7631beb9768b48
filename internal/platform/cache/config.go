package cache

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend names accepted by CACHE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds cache configuration read once at startup.
type Config struct {
	Backend       string        // "memory" (default) or "redis"
	Namespace     string        // key prefix for the redis backend
	TTL           time.Duration // default TTL for every capability
	StockTTL      time.Duration // per-capability overrides; 0 means TTL
	CryptoTTL     time.Duration
	RatesTTL      time.Duration
	ConvertTTL    time.Duration
	IndicatorTTL  time.Duration
	SweepInterval time.Duration // 0 disables the background sweep
	Coalesce      bool          // collapse concurrent identical misses into one upstream call
}

// LoadConfig loads cache configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Backend:       strings.ToLower(getEnv("CACHE_BACKEND", BackendMemory)),
		Namespace:     getEnv("CACHE_NAMESPACE", "market"),
		TTL:           getEnvDuration("CACHE_TTL", 5*time.Minute),
		StockTTL:      getEnvDuration("CACHE_TTL_STOCK", 0),
		CryptoTTL:     getEnvDuration("CACHE_TTL_CRYPTO", 0),
		RatesTTL:      getEnvDuration("CACHE_TTL_RATES", 0),
		ConvertTTL:    getEnvDuration("CACHE_TTL_CONVERT", 0),
		IndicatorTTL:  getEnvDuration("CACHE_TTL_INDICATOR", 0),
		SweepInterval: getEnvDuration("CACHE_SWEEP_INTERVAL", 10*time.Minute),
		Coalesce:      getEnvBool("CACHE_COALESCE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
