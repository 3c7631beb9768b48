package exchangerate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"market_gateway/internal/feature/marketdata/domain"
)

// getJSON はGETリクエストを送り、レスポンス本文をoutにデコードします。
// 4xx/5xxでも本文のデコードを試み、ステータスコードを返します。
// デコードできなかった場合、エラー応答ならステータスで分類し、成功応答ならUpstreamErrorとします。
func getJSON(ctx context.Context, client *http.Client, provider, u string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, &domain.ProviderError{Kind: domain.KindInternal, Message: "build " + provider + " request", Err: err}
	}

	res, err := client.Do(req)
	if err != nil {
		return 0, domain.FromTransport(provider, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if res.StatusCode >= 400 {
			return res.StatusCode, domain.FromStatus(provider, res.StatusCode)
		}
		return res.StatusCode, &domain.ProviderError{
			Kind:           domain.KindUpstream,
			Message:        "decode " + provider + " response",
			UpstreamStatus: res.StatusCode,
			Err:            err,
		}
	}
	return res.StatusCode, nil
}
