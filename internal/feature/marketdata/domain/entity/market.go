package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the normalized equity quote for a single symbol.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Volume        int64     `json:"volume"`
	LastUpdate    time.Time `json:"lastUpdate"` // latest trading day reported by the provider
}

// CoinPrice is the snapshot of one crypto asset in the requested quote currency.
type CoinPrice struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
	MarketCap float64 `json:"marketCap"`
}

// CryptoSnapshot holds prices for a set of coin identifiers.
type CryptoSnapshot struct {
	VsCurrency string               `json:"vsCurrency"`
	Coins      map[string]CoinPrice `json:"coins"`
}

// RateTable is the full exchange-rate table for a base currency.
type RateTable struct {
	Base     string             `json:"base"`
	Rates    map[string]float64 `json:"rates"`
	Provider string             `json:"provider"`
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
	Result float64 `json:"result"`
}

// IndicatorPoint is a single observation of an economic series.
type IndicatorPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// IndicatorSeries holds the most recent observations of an economic indicator.
type IndicatorSeries struct {
	Indicator string           `json:"indicator"` // name requested by the caller
	Series    string           `json:"series"`    // provider series identifier
	Name      string           `json:"name"`
	Interval  string           `json:"interval"`
	Unit      string           `json:"unit"`
	Data      []IndicatorPoint `json:"data"`
}

// NewConversion computes amount*rate rounded to 2 decimal places.
func NewConversion(from, to string, amount, rate float64) Conversion {
	result, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2).Float64()
	return Conversion{
		From:   from,
		To:     to,
		Amount: amount,
		Rate:   rate,
		Result: result,
	}
}
