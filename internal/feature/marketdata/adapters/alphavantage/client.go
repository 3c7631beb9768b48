package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"market_gateway/internal/feature/marketdata/domain"
)

const providerName = "alphavantage"

// client はAlpha Vantageの /query エンドポイントへの共通リクエスト処理です。
type client struct {
	cfg  Config
	http *http.Client
}

// query は関数名とパラメータで /query を呼び出し、レスポンスをoutにデコードします。
// 失敗はすべて *domain.ProviderError として返します。
func (c *client) query(ctx context.Context, function string, params url.Values, out any) error {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("function", function)
	q.Set("apikey", c.cfg.APIKey)

	u := fmt.Sprintf("%s/query?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &domain.ProviderError{Kind: domain.KindInternal, Message: "build alphavantage request", Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return domain.FromTransport(providerName, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return domain.FromStatus(providerName, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &domain.ProviderError{
			Kind:           domain.KindUpstream,
			Message:        "decode alphavantage response",
			UpstreamStatus: res.StatusCode,
			Err:            err,
		}
	}
	return nil
}

// notice はレート制限やエラーメッセージの本文をUpstreamErrorに変換します。
// 該当しない場合はnilを返します。
func notice(note, information, errorMessage string) error {
	switch {
	case errorMessage != "":
		return domain.Upstream(http.StatusOK, "alphavantage: %s", errorMessage)
	case note != "":
		return domain.Upstream(http.StatusOK, "alphavantage: %s", note)
	case information != "":
		return domain.Upstream(http.StatusOK, "alphavantage: %s", information)
	}
	return nil
}
