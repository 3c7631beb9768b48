package alphavantage

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"market_gateway/internal/feature/marketdata/adapters/alphavantage/dto"
	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
)

// QuoteAdapter はAlpha VantageのGLOBAL_QUOTEから株価を取得するQuoteProvider実装です。
type QuoteAdapter struct {
	c client
}

// QuoteAdapterがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*QuoteAdapter)(nil)

// NewQuoteAdapter は指定された設定とHTTPクライアントでQuoteAdapterを生成します。
func NewQuoteAdapter(cfg Config, httpClient *http.Client) *QuoteAdapter {
	return &QuoteAdapter{c: client{cfg: cfg, http: httpClient}}
}

// GetQuote は銘柄の最新の相場を取得します。
// Global Quoteが空の場合は、銘柄が存在しないものとしてNotFoundを返します。
func (a *QuoteAdapter) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	var body dto.GlobalQuoteResponse
	if err := a.c.query(ctx, "GLOBAL_QUOTE", url.Values{"symbol": {symbol}}, &body); err != nil {
		return entity.Quote{}, err
	}
	if err := notice(body.Note, body.Information, body.ErrorMessage); err != nil {
		return entity.Quote{}, err
	}
	if body.GlobalQuote.Symbol == "" {
		return entity.Quote{}, domain.NotFound("stock symbol %q not found", symbol)
	}
	return toQuote(body.GlobalQuote)
}

// toQuote はDTOをドメインエンティティに変換します。
func toQuote(g dto.GlobalQuote) (entity.Quote, error) {
	price, err := parseFloat("price", g.Price)
	if err != nil {
		return entity.Quote{}, err
	}
	change, err := parseFloat("change", g.Change)
	if err != nil {
		return entity.Quote{}, err
	}
	// "1.2345%" の形式で返されるため、%を取り除きます
	pct, err := parseFloat("change percent", strings.TrimSuffix(strings.TrimSpace(g.ChangePercent), "%"))
	if err != nil {
		return entity.Quote{}, err
	}

	var volume int64
	if g.Volume != "" {
		volume, err = strconv.ParseInt(g.Volume, 10, 64)
		if err != nil {
			return entity.Quote{}, domain.Upstream(http.StatusOK, "parse volume %q: %v", g.Volume, err)
		}
	}

	var last time.Time
	if g.LatestTradingDay != "" {
		last, err = time.Parse("2006-01-02", g.LatestTradingDay)
		if err != nil {
			return entity.Quote{}, domain.Upstream(http.StatusOK, "parse latest trading day %q: %v", g.LatestTradingDay, err)
		}
	}

	return entity.Quote{
		Symbol:        g.Symbol,
		Price:         price,
		Change:        change,
		ChangePercent: pct,
		Volume:        volume,
		LastUpdate:    last,
	}, nil
}

// parseFloat は空文字列を0として扱い、それ以外はfloat64にパースします。
func parseFloat(field, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, domain.Upstream(http.StatusOK, "parse %s %q: %v", field, s, err)
	}
	return f, nil
}
