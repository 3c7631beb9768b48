package usecase

import (
	"net/url"
	"strconv"
	"strings"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// cacheKey は正規化済みパラメータからキャッシュキーを生成します。
// 同じ論理クエリは常に同じキーになります。
//
// 例:
//
//	stock:AAPL
//	crypto:usd:bitcoin,ethereum
//	convert:USD:EUR:100
func cacheKey(c entity.Capability, p entity.Params) string {
	switch c {
	case entity.CapabilityStock:
		return join(c, p.Symbol)
	case entity.CapabilityCrypto:
		return join(c, p.VsCurrency, strings.Join(p.CoinIDs, ","))
	case entity.CapabilityRates:
		return join(c, p.Base)
	case entity.CapabilityConvert:
		return join(c, p.From, p.To, strconv.FormatFloat(p.Amount, 'f', -1, 64))
	case entity.CapabilityIndicator:
		// 素通しの指標名は区切り文字を含み得る
		return join(c, url.QueryEscape(p.Indicator))
	}
	return string(c)
}

func join(c entity.Capability, parts ...string) string {
	var b strings.Builder
	b.WriteString(string(c))
	for _, s := range parts {
		b.WriteByte(':')
		b.WriteString(safe(s))
	}
	return b.String()
}

// safe はキーの区切り文字と衝突する文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
