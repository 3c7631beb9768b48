// Package router assembles the gin engine for the market gateway.
package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	markethandler "market_gateway/internal/feature/marketdata/transport/handler"
	healthhandler "market_gateway/internal/platform/http/handler"
	jwtmw "market_gateway/internal/platform/jwt"
	"market_gateway/internal/platform/metrics"
	"market_gateway/internal/platform/middleware"
)

// Config holds the router settings.
type Config struct {
	JWTSecret     string         // empty disables authentication on /api/v1
	CORSOrigins   []string       // allowed origins; empty allows any origin
	HealthDetails map[string]any // extra fields reported by /healthz
}

// ParseOrigins splits a comma-separated CORS_ORIGINS value.
func ParseOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// NewRouter wires middleware, health, metrics and the market API routes.
func NewRouter(cfg Config, market *markethandler.MarketHandler) *gin.Engine {
	r := gin.New()

	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Accept-Encoding", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}

	r.Use(
		cors.New(corsConfig),
		middleware.RequestID(),
		gin.Recovery(),
		metrics.PrometheusMiddleware(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RequestLogger(),
	)

	// 認証不要
	// 導通確認用
	health := healthhandler.Health(cfg.HealthDetails)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.GET("/metrics", metrics.Handler())

	// JWT_SECRET が設定されている場合のみ認証必須
	api := r.Group("/api/v1")
	if cfg.JWTSecret != "" {
		api.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	}
	{
		api.GET("/stock/:symbol", market.GetStock)
		api.GET("/crypto", market.GetCrypto)
		api.GET("/rates/:base", market.GetRates)
		api.GET("/convert", market.GetConvert)
		api.GET("/indicator/:name", market.GetIndicator)
	}

	return r
}
