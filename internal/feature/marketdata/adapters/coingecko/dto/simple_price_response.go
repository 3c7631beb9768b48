// Package dto defines the CoinGecko response payloads.
package dto

// SimplePriceResponse は /simple/price のレスポンスです。
// コインIDごとに、"usd"、"usd_24h_change"、"usd_market_cap" のように
// 通貨コードを接頭辞としたフィールドを持ちます。
type SimplePriceResponse map[string]map[string]*float64
