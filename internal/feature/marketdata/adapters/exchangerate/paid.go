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

// PaidProviderName is reported by PaidAdapter.Name.
const PaidProviderName = "exchangerate-api:paid"

// PaidAdapter はAPIキーを使う有料エンドポイント（v6）から為替レートを取得するRateProvider実装です。
type PaidAdapter struct {
	cfg    Config
	client *http.Client
}

// PaidAdapterがRateProviderを実装していることをコンパイル時に検証します。
var _ usecase.RateProvider = (*PaidAdapter)(nil)

// NewPaidAdapter は指定された設定とHTTPクライアントでPaidAdapterを生成します。
func NewPaidAdapter(cfg Config, client *http.Client) *PaidAdapter {
	return &PaidAdapter{cfg: cfg, client: client}
}

// Name はプロバイダー名を返します。
func (a *PaidAdapter) Name() string { return PaidProviderName }

// GetRates は基軸通貨に対する全通貨のレート表を取得します。
func (a *PaidAdapter) GetRates(ctx context.Context, base string) (entity.RateTable, error) {
	u := fmt.Sprintf("%s/v6/%s/latest/%s", a.cfg.PaidBaseURL, url.PathEscape(a.cfg.APIKey), url.PathEscape(base))

	var body dto.PaidLatestResponse
	status, err := getJSON(ctx, a.client, PaidProviderName, u, &body)
	if err != nil {
		return entity.RateTable{}, err
	}
	if err := classify(status, body.Result, body.ErrorType); err != nil {
		return entity.RateTable{}, err
	}
	if len(body.ConversionRates) == 0 {
		return entity.RateTable{}, domain.Upstream(status, "%s: empty conversion_rates", PaidProviderName)
	}

	code := body.BaseCode
	if code == "" {
		code = base
	}
	return entity.RateTable{Base: code, Rates: body.ConversionRates, Provider: PaidProviderName}, nil
}

// Convert は通貨ペアのレートを取得し、金額を換算します。
func (a *PaidAdapter) Convert(ctx context.Context, from, to string, amount float64) (entity.Conversion, error) {
	u := fmt.Sprintf("%s/v6/%s/pair/%s/%s", a.cfg.PaidBaseURL,
		url.PathEscape(a.cfg.APIKey), url.PathEscape(from), url.PathEscape(to))

	var body dto.PaidPairResponse
	status, err := getJSON(ctx, a.client, PaidProviderName, u, &body)
	if err != nil {
		return entity.Conversion{}, err
	}
	if err := classify(status, body.Result, body.ErrorType); err != nil {
		return entity.Conversion{}, err
	}
	if body.ConversionRate <= 0 {
		return entity.Conversion{}, domain.Upstream(status, "%s: missing conversion_rate", PaidProviderName)
	}

	return entity.NewConversion(from, to, amount, body.ConversionRate), nil
}

// classify は有料APIの result / error-type をProviderErrorに変換します。
// 未対応の通貨コードや不正なリクエストはNotFound、それ以外のエラーはUpstreamErrorです。
func classify(status int, result, errorType string) error {
	if result == "error" {
		switch errorType {
		case "unsupported-code", "malformed-request":
			return domain.NotFound("%s: %s", PaidProviderName, errorType)
		default:
			return domain.Upstream(status, "%s: %s", PaidProviderName, errorType)
		}
	}
	if status >= 400 {
		return domain.FromStatus(PaidProviderName, status)
	}
	return nil
}
