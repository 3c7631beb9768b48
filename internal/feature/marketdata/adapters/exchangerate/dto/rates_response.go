// Package dto defines the ExchangeRate-API response payloads.
package dto

// PaidLatestResponse は有料API /v6/{key}/latest/{base} のレスポンスです。
type PaidLatestResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// PaidPairResponse は有料API /v6/{key}/pair/{from}/{to} のレスポンスです。
type PaidPairResponse struct {
	Result         string  `json:"result"`
	ErrorType      string  `json:"error-type"`
	BaseCode       string  `json:"base_code"`
	TargetCode     string  `json:"target_code"`
	ConversionRate float64 `json:"conversion_rate"`
}

// FreeLatestResponse は無料API /v4/latest/{base} のレスポンスです。
type FreeLatestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
