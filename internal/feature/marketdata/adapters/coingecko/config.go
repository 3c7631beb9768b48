// Package coingecko provides the crypto snapshot adapter for the CoinGecko API.
package coingecko

import (
	"os"
	"time"
)

// Config holds configuration for the CoinGecko API client.
type Config struct {
	APIKey  string        // Optional demo API key sent as x-cg-demo-api-key
	BaseURL string        // Base URL for the API (e.g., "https://api.coingecko.com/api/v3")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("COINGECKO_API_KEY"),
		BaseURL: os.Getenv("COINGECKO_BASE_URL"),
		Timeout: 10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.coingecko.com/api/v3"
	}
	return cfg
}
