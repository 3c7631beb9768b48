// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health はサービスヘルスチェック用の /healthz エンドポイントのハンドラーを返します。
// detailsは起動時に確定した情報（選択された為替プロバイダー、キャッシュバックエンドなど）で、
// GETのレスポンスに "status": "ok" と合わせて含まれます。
func Health(details map[string]any) gin.HandlerFunc {
	body := gin.H{"status": "ok"}
	for k, v := range details {
		if k == "status" {
			continue
		}
		body[k] = v
	}

	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, body)
		}
	}
}
