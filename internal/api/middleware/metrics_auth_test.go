package middleware

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/musicclub-api/internal/config"
)

func metricsHandler(c echo.Context) error {
	return c.String(http.StatusOK, "metrics")
}

func newMetricsContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestMetricsBasicAuth_NoCredentials(t *testing.T) {
	// 認証設定がない場合はスキップ
	c, rec := newMetricsContext("")

	err := MetricsBasicAuth(&config.MetricsConfig{})(metricsHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metrics", rec.Body.String())
}

func TestMetricsBasicAuth(t *testing.T) {
	cfg := &config.MetricsConfig{User: "testuser", Password: "testpass"}

	tests := []struct {
		name          string
		authorization string
		wantOK        bool
	}{
		{name: "正しい認証情報", authorization: basic("testuser", "testpass"), wantOK: true},
		{name: "間違った認証情報", authorization: basic("wronguser", "wrongpass")},
		{name: "パスワードのみ違う", authorization: basic("testuser", "nope")},
		{name: "認証ヘッダーなし"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newMetricsContext(tt.authorization)

			err := MetricsBasicAuth(cfg)(metricsHandler)(c)

			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			var he *echo.HTTPError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}
