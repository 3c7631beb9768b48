package exchangerate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"market_gateway/internal/feature/marketdata/adapters/exchangerate/dto"
	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
)

// FreeProviderName is reported by FreeAdapter.Name.
const FreeProviderName = "exchangerate-api:free"

// FreeAdapter はAPIキー不要の公開エンドポイント（v4）から為替レートを取得するRateProvider実装です。
type FreeAdapter struct {
	cfg    Config
	client *http.Client
}

// FreeAdapterがRateProviderを実装していることをコンパイル時に検証します。
var _ usecase.RateProvider = (*FreeAdapter)(nil)

// NewFreeAdapter は指定された設定とHTTPクライアントでFreeAdapterを生成します。
func NewFreeAdapter(cfg Config, client *http.Client) *FreeAdapter {
	return &FreeAdapter{cfg: cfg, client: client}
}

// Name はプロバイダー名を返します。
func (a *FreeAdapter) Name() string { return FreeProviderName }

// GetRates は基軸通貨に対する全通貨のレート表を取得します。
func (a *FreeAdapter) GetRates(ctx context.Context, base string) (entity.RateTable, error) {
	u := fmt.Sprintf("%s/v4/latest/%s", a.cfg.FreeBaseURL, url.PathEscape(base))

	var body dto.FreeLatestResponse
	status, err := getJSON(ctx, a.client, FreeProviderName, u, &body)
	if err != nil {
		return entity.RateTable{}, err
	}
	if status >= 400 {
		return entity.RateTable{}, domain.FromStatus(FreeProviderName, status)
	}
	if len(body.Rates) == 0 {
		return entity.RateTable{}, domain.NotFound("%s: no rates for base %s", FreeProviderName, base)
	}

	code := body.Base
	if code == "" {
		code = base
	}
	return entity.RateTable{Base: code, Rates: body.Rates, Provider: FreeProviderName}, nil
}

// Convert は基軸通貨のレート表から対象通貨のレートを引き、金額を換算します。
// 対象通貨が表にない場合はNotFoundを返します。
func (a *FreeAdapter) Convert(ctx context.Context, from, to string, amount float64) (entity.Conversion, error) {
	table, err := a.GetRates(ctx, from)
	if err != nil {
		return entity.Conversion{}, err
	}
	rate, ok := table.Rates[to]
	if !ok {
		return entity.Conversion{}, domain.NotFound("%s: no rate from %s to %s", FreeProviderName, from, to)
	}
	return entity.NewConversion(from, to, amount, rate), nil
}
