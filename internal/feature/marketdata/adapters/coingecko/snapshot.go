package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"market_gateway/internal/feature/marketdata/adapters/coingecko/dto"
	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
)

const providerName = "coingecko"

// SnapshotAdapter はCoinGeckoの /simple/price から暗号資産の価格を取得するCryptoProvider実装です。
type SnapshotAdapter struct {
	cfg    Config
	client *http.Client
}

// SnapshotAdapterがCryptoProviderを実装していることをコンパイル時に検証します。
var _ usecase.CryptoProvider = (*SnapshotAdapter)(nil)

// NewSnapshotAdapter は指定された設定とHTTPクライアントでSnapshotAdapterを生成します。
func NewSnapshotAdapter(cfg Config, client *http.Client) *SnapshotAdapter {
	return &SnapshotAdapter{cfg: cfg, client: client}
}

// GetSnapshot は指定されたコインIDの価格、24時間変化率、時価総額を取得します。
// レスポンスに含まれないIDは結果から除外し、1件も含まれない場合はNotFoundを返します。
func (a *SnapshotAdapter) GetSnapshot(ctx context.Context, ids []string, vsCurrency string) (entity.CryptoSnapshot, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", vsCurrency)
	q.Set("include_24hr_change", "true")
	q.Set("include_market_cap", "true")

	u := fmt.Sprintf("%s/simple/price?%s", a.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.CryptoSnapshot{}, &domain.ProviderError{Kind: domain.KindInternal, Message: "build coingecko request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if a.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", a.cfg.APIKey)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return entity.CryptoSnapshot{}, domain.FromTransport(providerName, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.CryptoSnapshot{}, domain.FromStatus(providerName, res.StatusCode)
	}

	var body dto.SimplePriceResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.CryptoSnapshot{}, &domain.ProviderError{
			Kind:           domain.KindUpstream,
			Message:        "decode coingecko response",
			UpstreamStatus: res.StatusCode,
			Err:            err,
		}
	}

	coins := make(map[string]entity.CoinPrice, len(ids))
	for _, id := range ids {
		fields, ok := body[id]
		if !ok {
			continue
		}
		price, ok := fields[vsCurrency]
		if !ok || price == nil {
			continue
		}
		coins[id] = entity.CoinPrice{
			Price:     *price,
			Change24h: value(fields[vsCurrency+"_24h_change"]),
			MarketCap: value(fields[vsCurrency+"_market_cap"]),
		}
	}
	if len(coins) == 0 {
		return entity.CryptoSnapshot{}, domain.NotFound("no prices for coins %s", strings.Join(ids, ","))
	}

	return entity.CryptoSnapshot{VsCurrency: vsCurrency, Coins: coins}, nil
}

// value はnullまたは欠落したフィールドを0として扱います。
func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
