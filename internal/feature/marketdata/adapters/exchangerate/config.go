// Package exchangerate provides paid and free ExchangeRate-API adapters and the selector between them.
package exchangerate

import (
	"os"
	"time"
)

// Config holds configuration for the ExchangeRate-API clients.
type Config struct {
	APIKey      string        // API key for the paid v6 endpoint; empty selects the free endpoint
	PaidBaseURL string        // Base URL for the paid API (e.g., "https://v6.exchangerate-api.com")
	FreeBaseURL string        // Base URL for the open API (e.g., "https://api.exchangerate-api.com")
	Timeout     time.Duration // HTTP request timeout
}

// LoadConfig loads ExchangeRate-API configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:      os.Getenv("EXCHANGE_RATE_API_KEY"),
		PaidBaseURL: os.Getenv("EXCHANGE_RATE_PAID_BASE_URL"),
		FreeBaseURL: os.Getenv("EXCHANGE_RATE_FREE_BASE_URL"),
		Timeout:     10 * time.Second,
	}
	if cfg.PaidBaseURL == "" {
		cfg.PaidBaseURL = "https://v6.exchangerate-api.com"
	}
	if cfg.FreeBaseURL == "" {
		cfg.FreeBaseURL = "https://api.exchangerate-api.com"
	}
	return cfg
}
