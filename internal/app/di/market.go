// Package di provides dependency injection factories for creating application components.
package di

import (
	"market_gateway/internal/feature/marketdata/adapters/alphavantage"
	"market_gateway/internal/feature/marketdata/adapters/coingecko"
	"market_gateway/internal/feature/marketdata/adapters/exchangerate"
	"market_gateway/internal/feature/marketdata/usecase"
	infrahttp "market_gateway/internal/platform/http"
)

// NewProviders creates every provider adapter with its own configured HTTP client.
// The exchange-rate branch is selected here, once.
// A malformed indicator mapping is returned as a configuration error.
func NewProviders() (usecase.Providers, error) {
	av := alphavantage.LoadConfig()
	avClient := infrahttp.NewHTTPClient(av.Timeout)

	indicators, err := alphavantage.NewIndicatorAdapter(av, avClient, nil)
	if err != nil {
		return usecase.Providers{}, err
	}

	cg := coingecko.LoadConfig()
	er := exchangerate.LoadConfig()

	return usecase.Providers{
		Quotes:     alphavantage.NewQuoteAdapter(av, avClient),
		Crypto:     coingecko.NewSnapshotAdapter(cg, infrahttp.NewHTTPClient(cg.Timeout)),
		Rates:      exchangerate.NewRateProvider(er, infrahttp.NewHTTPClient(er.Timeout)),
		Indicators: indicators,
	}, nil
}
