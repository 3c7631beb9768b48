package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/transport/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(gw handler.MarketGateway) *gin.Engine {
	h := handler.NewMarketHandler(gw)
	r := gin.New()
	r.GET("/stock/:symbol", h.GetStock)
	r.GET("/crypto", h.GetCrypto)
	r.GET("/rates/:base", h.GetRates)
	r.GET("/convert", h.GetConvert)
	r.GET("/indicator/:name", h.GetIndicator)
	return r
}

var fixedTime = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

// TestMarketHandler_Routes は各エンドポイントがクエリ・パスをパラメータに変換してゲートウェイに渡すことを検証します。
func TestMarketHandler_Routes(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		capability entity.Capability
		params     entity.Params
	}{
		{"stock", "/stock/aapl", entity.CapabilityStock, entity.Params{Symbol: "aapl"}},
		{"crypto with ids", "/crypto?ids=bitcoin,%20ethereum,&vs=eur", entity.CapabilityCrypto, entity.Params{CoinIDs: []string{"bitcoin", "ethereum"}, VsCurrency: "eur"}},
		{"crypto defaults", "/crypto", entity.CapabilityCrypto, entity.Params{}},
		{"rates", "/rates/USD", entity.CapabilityRates, entity.Params{Base: "USD"}},
		{"convert", "/convert?from=USD&to=EUR&amount=100.5", entity.CapabilityConvert, entity.Params{From: "USD", To: "EUR", Amount: 100.5}},
		{"indicator", "/indicator/GDP", entity.CapabilityIndicator, entity.Params{Indicator: "GDP"}},
		{"indicator series id", "/indicator/WTI.MONTHLY", entity.CapabilityIndicator, entity.Params{Indicator: "WTI.MONTHLY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := NewMockMarketGateway(ctrl)
			gw.EXPECT().
				Handle(gomock.Any(), tt.capability, tt.params).
				Return(entity.Envelope{Success: true, Data: map[string]string{"ok": "yes"}, Timestamp: fixedTime, Status: entity.StatusOK}).
				Times(1)

			w := httptest.NewRecorder()
			setupRouter(gw).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"success":true,"data":{"ok":"yes"},"cached":false,"timestamp":"2025-01-15T09:00:00Z"}`, w.Body.String())
		})
	}
}

// TestMarketHandler_StatusMapping はエンベロープのステータスがHTTPステータスに変換されることを検証します。
func TestMarketHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		status   entity.Status
		kind     string
		wantCode int
	}{
		{entity.StatusBadRequest, "invalid_params", http.StatusBadRequest},
		{entity.StatusNotFound, "not_found", http.StatusNotFound},
		{entity.StatusUpstream, "upstream_error", http.StatusBadGateway},
		{entity.StatusTimeout, "timeout", http.StatusGatewayTimeout},
		{entity.StatusInternal, "internal_error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := NewMockMarketGateway(ctrl)
			gw.EXPECT().Handle(gomock.Any(), entity.CapabilityStock, gomock.Any()).Return(entity.Envelope{
				Error:     &entity.ErrorDetail{Kind: tt.kind, Message: "failed"},
				Timestamp: fixedTime,
				Status:    tt.status,
			})

			w := httptest.NewRecorder()
			setupRouter(gw).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stock/ZZZZ", nil))

			assert.Equal(t, tt.wantCode, w.Code)

			var body entity.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.kind, body.Error.Kind)
		})
	}
}

// TestMarketHandler_GetConvert_InvalidAmount は数値でない、または有限でないamountがゲートウェイを呼ばずに400になることを検証します。
func TestMarketHandler_GetConvert_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"not a number", "lots"},
		{"infinity", "Inf"},
		{"negative infinity", "-Inf"},
		{"NaN", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := NewMockMarketGateway(ctrl)
			gw.EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := httptest.NewRecorder()
			setupRouter(gw).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/convert?from=USD&to=EUR&amount="+tt.amount, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body entity.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, "invalid_params", body.Error.Kind)
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, handler.HTTPStatus(entity.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, handler.HTTPStatus(entity.Status(99)))
}
