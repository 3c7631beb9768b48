package usecase

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultVsCurrency は暗号資産価格のデフォルトの建て通貨です。
	DefaultVsCurrency = "usd"

	// MaxAmount は換算できる金額の上限です。
	MaxAmount = 1e12

	// MaxIndicatorLength は指標名の最大長です。
	MaxIndicatorLength = 64
)

// DefaultCoinIDs は識別子が指定されなかった場合に取得する主要5銘柄です。
var DefaultCoinIDs = []string{"binancecoin", "bitcoin", "cardano", "ethereum", "ripple"}

// IndicatorAliases は利用者向けの指標名です。
// 大文字小文字と区切り文字（空白・ハイフン）の違いを吸収してこの名前に揃えます。
var IndicatorAliases = []string{
	"GDP",
	"GDP_PER_CAPITA",
	"INFLATION",
	"CPI",
	"UNEMPLOYMENT",
	"INTEREST_RATE",
	"TREASURY_YIELD",
	"RETAIL_SALES",
}

var (
	currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)
	tickerSymbol = regexp.MustCompile(`^[A-Z0-9.\-^=]{1,16}$`)
	coinID       = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]*$`)
	vsCode       = regexp.MustCompile(`^[a-z]{2,10}$`)
)

// normalize はキャッシュキーの重複を防ぐため、パラメータの大文字小文字と空白を正規化します。
// 通貨・銘柄コードは大文字、CoinGeckoの識別子は小文字に揃えます。
func normalize(c entity.Capability, p entity.Params) entity.Params {
	switch c {
	case entity.CapabilityStock:
		p.Symbol = strings.ToUpper(strings.TrimSpace(p.Symbol))
	case entity.CapabilityCrypto:
		p.CoinIDs = normalizeCoinIDs(p.CoinIDs)
		p.VsCurrency = strings.ToLower(strings.TrimSpace(p.VsCurrency))
		if p.VsCurrency == "" {
			p.VsCurrency = DefaultVsCurrency
		}
	case entity.CapabilityRates:
		p.Base = strings.ToUpper(strings.TrimSpace(p.Base))
	case entity.CapabilityConvert:
		p.From = strings.ToUpper(strings.TrimSpace(p.From))
		p.To = strings.ToUpper(strings.TrimSpace(p.To))
	case entity.CapabilityIndicator:
		p.Indicator = normalizeIndicator(p.Indicator)
	}
	return p
}

// normalizeCoinIDs は識別子を小文字化・重複排除・ソートします。
// 空の場合はDefaultCoinIDsを返します。
func normalizeCoinIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultCoinIDs...)
	}
	sort.Strings(out)
	return out
}

// normalizeIndicator は別名を正規の名前に揃えます。
// 別名でない名前は前後の空白のみ除去し、そのままプロバイダーに渡します。
func normalizeIndicator(name string) string {
	name = strings.TrimSpace(name)
	alias := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToUpper(name))
	if slices.Contains(IndicatorAliases, alias) {
		return alias
	}
	return name
}

// finite はNaNと無限大を拒否します。
func finite(value any) error {
	if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return errors.New("must be a finite number")
	}
	return nil
}

// validate は正規化済みのパラメータを検証します。上流APIを呼ぶ前に不正な入力を弾きます。
func validate(c entity.Capability, p *entity.Params) error {
	switch c {
	case entity.CapabilityStock:
		return validation.ValidateStruct(p,
			validation.Field(&p.Symbol, validation.Required, validation.Match(tickerSymbol)),
		)
	case entity.CapabilityCrypto:
		return validation.ValidateStruct(p,
			validation.Field(&p.CoinIDs, validation.Length(1, 50), validation.Each(validation.Match(coinID))),
			validation.Field(&p.VsCurrency, validation.Required, validation.Match(vsCode)),
		)
	case entity.CapabilityRates:
		return validation.ValidateStruct(p,
			validation.Field(&p.Base, validation.Required, validation.Match(currencyCode)),
		)
	case entity.CapabilityConvert:
		return validation.ValidateStruct(p,
			validation.Field(&p.From, validation.Required, validation.Match(currencyCode)),
			validation.Field(&p.To, validation.Required, validation.Match(currencyCode)),
			validation.Field(&p.Amount,
				validation.Required,
				validation.By(finite),
				validation.Min(0.0).Exclusive(),
				validation.Max(MaxAmount),
			),
		)
	case entity.CapabilityIndicator:
		return validation.ValidateStruct(p,
			validation.Field(&p.Indicator, validation.Required, validation.RuneLength(1, MaxIndicatorLength)),
		)
	}
	return nil
}
