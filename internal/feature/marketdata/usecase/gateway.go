package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/platform/metrics"
)

const (
	// DefaultTTL は上書き設定のない全ケーパビリティに適用されるキャッシュTTLです。
	DefaultTTL = 5 * time.Minute
)

// TTLPolicy はケーパビリティごとのキャッシュTTLを決定します。
type TTLPolicy struct {
	Default   time.Duration
	Overrides map[entity.Capability]time.Duration
}

// For はケーパビリティに適用するTTLを返します。
// 上書きが未設定または0以下の場合はDefault、Defaultも0以下の場合はDefaultTTLを使用します。
func (p TTLPolicy) For(c entity.Capability) time.Duration {
	if d, ok := p.Overrides[c]; ok && d > 0 {
		return d
	}
	if p.Default > 0 {
		return p.Default
	}
	return DefaultTTL
}

// Option はGatewayの任意設定です。
type Option func(*Gateway)

// WithClock はテスト用に現在時刻の取得関数を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithCoalescing は同一キャッシュキーに対する同時ミスを1回の上流呼び出しにまとめます。
// デフォルトでは無効で、同時ミスはそれぞれ上流を呼び出します。
func WithCoalescing() Option {
	return func(g *Gateway) { g.coalesce = true }
}

// Gateway は呼び出し元に公開される集約ゲートウェイです。
// キャッシュを参照し、ミス時に適切なプロバイダーアダプターを呼び出し、
// 結果を正規化済みのエンベロープで返します。
type Gateway struct {
	cache     CacheStore
	providers Providers
	ttl       TTLPolicy
	now       func() time.Time
	coalesce  bool
	inflight  singleflight.Group
}

// NewGateway は新しいGatewayを生成します。
func NewGateway(cache CacheStore, providers Providers, ttl TTLPolicy, opts ...Option) *Gateway {
	g := &Gateway{
		cache:     cache,
		providers: providers,
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Capabilities はゲートウェイが提供するケーパビリティの一覧を返します。
func (g *Gateway) Capabilities() []entity.Capability {
	return append([]entity.Capability(nil), entity.Capabilities...)
}

// RateProviderName は起動時に選択された為替プロバイダーの名前を返します。
func (g *Gateway) RateProviderName() string {
	if g.providers.Rates == nil {
		return ""
	}
	return g.providers.Rates.Name()
}

// Handle はケーパビリティとパラメータを受け取り、エンベロープを返します。
// 失敗はすべてエンベロープ（success=false）に変換され、panicやerrorが呼び出し元に漏れることはありません。
func (g *Gateway) Handle(ctx context.Context, c entity.Capability, params entity.Params) entity.Envelope {
	if !c.Valid() {
		return Failure(domain.InvalidParams(fmt.Errorf("unknown capability %q", c)), g.now())
	}

	p := normalize(c, params)
	if err := validate(c, &p); err != nil {
		return Failure(domain.InvalidParams(err), g.now())
	}

	switch c {
	case entity.CapabilityStock:
		return fetchCached(ctx, g, c, p, func(ctx context.Context) (entity.Quote, error) {
			return g.providers.Quotes.GetQuote(ctx, p.Symbol)
		})
	case entity.CapabilityCrypto:
		return fetchCached(ctx, g, c, p, func(ctx context.Context) (entity.CryptoSnapshot, error) {
			return g.providers.Crypto.GetSnapshot(ctx, p.CoinIDs, p.VsCurrency)
		})
	case entity.CapabilityRates:
		return fetchCached(ctx, g, c, p, func(ctx context.Context) (entity.RateTable, error) {
			return g.providers.Rates.GetRates(ctx, p.Base)
		})
	case entity.CapabilityConvert:
		// 同一通貨の換算は上流を呼ばず、キャッシュも消費しない
		if p.From == p.To {
			return Success(entity.NewConversion(p.From, p.To, p.Amount, 1), false, g.now())
		}
		return fetchCached(ctx, g, c, p, func(ctx context.Context) (entity.Conversion, error) {
			return g.providers.Rates.Convert(ctx, p.From, p.To, p.Amount)
		})
	default:
		return fetchCached(ctx, g, c, p, func(ctx context.Context) (entity.IndicatorSeries, error) {
			return g.providers.Indicators.GetIndicator(ctx, p.Indicator)
		})
	}
}

// fetchCached はキャッシュを参照し、ミス時にfetchを呼び出して成功結果のみを保存します。
func fetchCached[T any](ctx context.Context, g *Gateway, c entity.Capability, p entity.Params, fetch func(context.Context) (T, error)) entity.Envelope {
	key := cacheKey(c, p)

	// 1) キャッシュを確認
	if b, ok := g.cache.Get(ctx, key); ok {
		var v T
		err := json.Unmarshal(b, &v)
		if err == nil {
			return Success(v, true, g.now())
		}
		// 破損したエントリはミスとして扱い、上流の結果で上書きする
		slog.Warn("discarding undecodable cache entry", "key", key, "error", err)
	}

	// 2) 上流を呼び出す
	v, err := g.load(ctx, c, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return Failure(err, g.now())
	}
	out, ok := v.(T)
	if !ok {
		return Failure(fmt.Errorf("unexpected result type %T for %s", v, c), g.now())
	}
	return Success(out, false, g.now())
}

type loadResult struct {
	value any
	err   error
}

// load は呼び出し元のキャンセルから切り離したコンテキストで上流を呼び出します。
// 呼び出し元のコンテキストが先に終了した場合は待機のみを打ち切り、
// 上流呼び出しはHTTPクライアントのタイムアウトまで継続します（遅れて成功した結果もキャッシュされる）。
func (g *Gateway) load(ctx context.Context, c entity.Capability, key string, fetch func(context.Context) (any, error)) (any, error) {
	upstream := context.WithoutCancel(ctx)
	done := make(chan loadResult, 1)

	go func() {
		// プロバイダー内のpanicはプロセスを落とさず内部エラーとして返す
		defer func() {
			if r := recover(); r != nil {
				slog.Error("upstream call panicked", "capability", c, "key", key, "panic", r)
				done <- loadResult{err: &domain.ProviderError{
					Kind:    domain.KindInternal,
					Message: fmt.Sprintf("%s provider failed unexpectedly", c),
				}}
			}
		}()

		if g.coalesce {
			v, err, _ := g.inflight.Do(key, func() (any, error) {
				return g.fetchAndStore(upstream, c, key, fetch)
			})
			done <- loadResult{value: v, err: err}
			return
		}
		v, err := g.fetchAndStore(upstream, c, key, fetch)
		done <- loadResult{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, &domain.ProviderError{
			Kind:    domain.KindTimeout,
			Message: "request ended before the upstream provider responded",
			Err:     ctx.Err(),
		}
	}
}

// fetchAndStore は上流を1回だけ呼び出し、成功時のみキャッシュに保存します。
// 失敗はキャッシュしない。
func (g *Gateway) fetchAndStore(ctx context.Context, c entity.Capability, key string, fetch func(context.Context) (any, error)) (any, error) {
	start := time.Now()
	v, err := fetch(ctx)
	if err != nil {
		kind := domain.KindOf(err)
		metrics.RecordUpstreamCall(string(c), string(kind), time.Since(start))
		slog.Warn("upstream call failed", "capability", c, "key", key, "kind", kind, "error", err)
		return nil, err
	}
	metrics.RecordUpstreamCall(string(c), "ok", time.Since(start))

	b, err := json.Marshal(v)
	if err != nil {
		// 保存できなくても結果自体は返す
		slog.Warn("failed to encode result for cache", "key", key, "error", err)
		return v, nil
	}
	g.cache.Set(ctx, key, b, g.ttl.For(c))
	return v, nil
}
