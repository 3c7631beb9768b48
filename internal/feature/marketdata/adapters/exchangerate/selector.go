package exchangerate

import (
	"log/slog"
	"net/http"

	"market_gateway/internal/feature/marketdata/usecase"
)

// NewRateProvider creates a RateProvider implementation.
// If an API key is configured, it returns the paid adapter.
// Otherwise, it falls back to the free open endpoint.
// The choice is made once and logged.
func NewRateProvider(cfg Config, client *http.Client) usecase.RateProvider {
	var p usecase.RateProvider
	if cfg.APIKey != "" {
		p = NewPaidAdapter(cfg, client)
	} else {
		p = NewFreeAdapter(cfg, client)
	}
	slog.Info("exchange rate provider selected", "provider", p.Name())
	return p
}
