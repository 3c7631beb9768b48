// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/transport/http/dto"
	"market_gateway/internal/feature/marketdata/usecase"
)

//go:generate mockgen -package=handler_test -destination=mock_gateway_test.go -source=market_handler.go MarketGateway

// MarketGateway はマーケットデータ集約ゲートウェイのインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketGateway interface {
	Handle(ctx context.Context, c entity.Capability, params entity.Params) entity.Envelope
}

// MarketHandler はマーケットデータのHTTPリクエストを処理します。
// レスポンスボディは常にエンベロープのJSONです。
type MarketHandler struct {
	gw MarketGateway
}

// NewMarketHandler は指定されたゲートウェイでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(gw MarketGateway) *MarketHandler {
	return &MarketHandler{gw: gw}
}

// GetStock は銘柄の株価を返します。
//
// エンドポイント例:
// GET /api/v1/stock/:symbol
func (h *MarketHandler) GetStock(c *gin.Context) {
	h.respond(c, entity.CapabilityStock, entity.Params{Symbol: c.Param("symbol")})
}

// GetCrypto は暗号資産の価格スナップショットを返します。
//
// エンドポイント例:
// GET /api/v1/crypto?ids=bitcoin,ethereum&vs=usd
func (h *MarketHandler) GetCrypto(c *gin.Context) {
	var q dto.CryptoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}
	h.respond(c, entity.CapabilityCrypto, entity.Params{CoinIDs: q.CoinIDs(), VsCurrency: q.Vs})
}

// GetRates は基軸通貨の為替レート表を返します。
//
// エンドポイント例:
// GET /api/v1/rates/:base
func (h *MarketHandler) GetRates(c *gin.Context) {
	h.respond(c, entity.CapabilityRates, entity.Params{Base: c.Param("base")})
}

// GetConvert は通貨換算の結果を返します。
//
// エンドポイント例:
// GET /api/v1/convert?from=USD&to=EUR&amount=100
func (h *MarketHandler) GetConvert(c *gin.Context) {
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, errors.New("amount: must be a number"))
		return
	}
	if math.IsNaN(q.Amount) || math.IsInf(q.Amount, 0) {
		h.badRequest(c, errors.New("amount: must be a finite number"))
		return
	}
	h.respond(c, entity.CapabilityConvert, entity.Params{From: q.From, To: q.To, Amount: q.Amount})
}

// GetIndicator は経済指標の直近の観測値を返します。
//
// エンドポイント例:
// GET /api/v1/indicator/:name
func (h *MarketHandler) GetIndicator(c *gin.Context) {
	h.respond(c, entity.CapabilityIndicator, entity.Params{Indicator: c.Param("name")})
}

func (h *MarketHandler) respond(c *gin.Context, capability entity.Capability, params entity.Params) {
	env := h.gw.Handle(c.Request.Context(), capability, params)
	c.JSON(HTTPStatus(env.Status), env)
}

func (h *MarketHandler) badRequest(c *gin.Context, err error) {
	env := usecase.Failure(domain.InvalidParams(err), time.Now())
	c.JSON(http.StatusBadRequest, env)
}

// HTTPStatus はエンベロープのステータスをHTTPステータスコードに変換します。
func HTTPStatus(s entity.Status) int {
	switch s {
	case entity.StatusOK:
		return http.StatusOK
	case entity.StatusBadRequest:
		return http.StatusBadRequest
	case entity.StatusNotFound:
		return http.StatusNotFound
	case entity.StatusUpstream:
		return http.StatusBadGateway
	case entity.StatusTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
