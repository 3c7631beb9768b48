// Package usecase はマーケットデータ集約ゲートウェイのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// CacheStore はキャッシュキーから値への、TTL付きのプロセス共有ストアを抽象化します。
type CacheStore interface {
	// Get は有効期限内の値のみを返します。期限切れのエントリは存在しないものとして扱います。
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set は既存のエントリを無条件に上書きし、有効期限を now + ttl にリセットします。
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// QuoteProvider は単一銘柄の株価を取得する外部APIを抽象化します。
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// CryptoProvider は暗号資産の価格スナップショットを取得する外部APIを抽象化します。
type CryptoProvider interface {
	GetSnapshot(ctx context.Context, ids []string, vsCurrency string) (entity.CryptoSnapshot, error)
}

// RateProvider は為替レート表と通貨換算を提供します。
// 有料・無料どちらのプロバイダーでも同じ正規化済みの形を返します。
type RateProvider interface {
	// Name は選択されたプロバイダーの名前を返します（例: "exchangerate-api:paid"）。
	Name() string
	GetRates(ctx context.Context, base string) (entity.RateTable, error)
	Convert(ctx context.Context, from, to string, amount float64) (entity.Conversion, error)
}

// IndicatorProvider は経済指標の時系列を取得する外部APIを抽象化します。
type IndicatorProvider interface {
	GetIndicator(ctx context.Context, name string) (entity.IndicatorSeries, error)
}

// Providers はゲートウェイが利用するプロバイダーアダプターの集合です。
type Providers struct {
	Quotes     QuoteProvider
	Crypto     CryptoProvider
	Rates      RateProvider
	Indicators IndicatorProvider
}
