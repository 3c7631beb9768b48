package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"market_gateway/internal/app/di"
	"market_gateway/internal/app/router"
	"market_gateway/internal/feature/marketdata/transport/handler"
	jwtmw "market_gateway/internal/platform/jwt"
	"market_gateway/internal/platform/logger"
)

func main() {
	// .env は任意（本番では環境変数を直接設定）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	logger.Init(logger.LoadConfig(), os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Gateway（設定エラーのみ起動失敗とする）
	gw, err := di.NewGateway(ctx)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	defer gw.Close()

	// JWT_SECRETチェック（開発中の注意喚起）
	jwtCfg := jwtmw.LoadConfig()
	if !jwtCfg.Enabled() {
		slog.Warn("JWT_SECRET is not set. /api/v1 is served without authentication.")
	}

	// ルータ生成
	r := router.NewRouter(router.Config{
		JWTSecret:     jwtCfg.Secret,
		CORSOrigins:   router.ParseOrigins(os.Getenv("CORS_ORIGINS")),
		HealthDetails: gw.HealthDetails(),
	}, handler.NewMarketHandler(gw))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "capabilities", gw.Capabilities())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
