// Package dto はmarketdataフィーチャーのHTTPリクエストDTOを定義します。
package dto

import (
	"strings"
)

// CryptoQuery は GET /crypto のクエリパラメータです。
type CryptoQuery struct {
	IDs string `form:"ids"` // カンマ区切りのコインID（例: "bitcoin,ethereum"）
	Vs  string `form:"vs"`  // 建て通貨（デフォルト: usd）
}

// CoinIDs はカンマ区切りのIDを分割します。空要素は除外します。
func (q CryptoQuery) CoinIDs() []string {
	if strings.TrimSpace(q.IDs) == "" {
		return nil
	}
	parts := strings.Split(q.IDs, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ConvertQuery は GET /convert のクエリパラメータです。
type ConvertQuery struct {
	From   string  `form:"from"`
	To     string  `form:"to"`
	Amount float64 `form:"amount"`
}
