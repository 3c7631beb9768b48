// Package alphavantage provides stock quote and economic indicator adapters for the Alpha Vantage API.
package alphavantage

import (
	"os"
	"time"
)

// DemoAPIKey is the public key Alpha Vantage accepts for low-volume requests.
const DemoAPIKey = "demo"

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        // API key for authentication; "demo" when unset
	BaseURL string        // Base URL for the API (e.g., "https://www.alphavantage.co")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		BaseURL: os.Getenv("ALPHA_VANTAGE_BASE_URL"),
		Timeout: 10 * time.Second,
	}
	if cfg.APIKey == "" {
		cfg.APIKey = DemoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.alphavantage.co"
	}
	return cfg
}
