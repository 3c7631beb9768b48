package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serveHealth(details map[string]any, method string) *httptest.ResponseRecorder {
	h := Health(details)
	r := gin.New()
	r.Any("/healthz", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, "/healthz", nil))
	return w
}

// TestHealth_Details は起動時の情報がレスポンスに含まれ、statusは上書きされないことを検証します。
func TestHealth_Details(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		details map[string]any
		want    map[string]any
	}{
		{
			name:    "no details",
			details: nil,
			want:    map[string]any{"status": "ok"},
		},
		{
			name:    "startup decisions reported",
			details: map[string]any{"rateProvider": "exchangerate-api:free", "cache": "memory"},
			want:    map[string]any{"status": "ok", "rateProvider": "exchangerate-api:free", "cache": "memory"},
		},
		{
			name:    "status cannot be overridden",
			details: map[string]any{"status": "degraded", "cache": "redis"},
			want:    map[string]any{"status": "ok", "cache": "redis"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serveHealth(tt.details, http.MethodGet)

			assert.Equal(t, http.StatusOK, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body)
		})
	}
}

// TestHealth_Methods はメソッドごとのステータスとボディ、キャッシュ抑止ヘッダーを検証します。
func TestHealth_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method   string
		wantCode int
		wantBody bool
	}{
		{http.MethodGet, http.StatusOK, true},
		{http.MethodHead, http.StatusOK, false},
		{http.MethodOptions, http.StatusNoContent, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := serveHealth(map[string]any{"cache": "memory"}, tt.method)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.Equal(t, tt.wantBody, w.Body.Len() > 0)
		})
	}
}
