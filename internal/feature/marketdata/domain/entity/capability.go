// Package entity defines the domain models for the marketdata feature.
package entity

// Capability is a logical data category served by the gateway.
type Capability string

const (
	CapabilityStock     Capability = "stock"
	CapabilityCrypto    Capability = "crypto"
	CapabilityRates     Capability = "rates"
	CapabilityConvert   Capability = "convert"
	CapabilityIndicator Capability = "indicator"
)

// Capabilities lists every capability in a stable order.
var Capabilities = []Capability{
	CapabilityStock,
	CapabilityCrypto,
	CapabilityRates,
	CapabilityConvert,
	CapabilityIndicator,
}

// Valid reports whether c is one of the known capabilities.
func (c Capability) Valid() bool {
	for _, k := range Capabilities {
		if c == k {
			return true
		}
	}
	return false
}

// Params carries the caller parameters for every capability.
// Only the fields relevant to the invoked capability are read.
type Params struct {
	Symbol     string   `json:"symbol"`    // stock: ticker symbol (e.g., "AAPL")
	CoinIDs    []string `json:"ids"`       // crypto: coin identifiers (e.g., "bitcoin"); empty means the default set
	VsCurrency string   `json:"vs"`        // crypto: quote currency; empty means "usd"
	Base       string   `json:"base"`      // rates: base currency
	From       string   `json:"from"`      // convert: source currency
	To         string   `json:"to"`        // convert: target currency
	Amount     float64  `json:"amount"`    // convert: amount in the source currency
	Indicator  string   `json:"indicator"` // indicator: friendly name or provider series id
}
