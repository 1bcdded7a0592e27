package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
)

// healthCheckTimeout はDB疎通確認の上限時間
const healthCheckTimeout = 2 * time.Second

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler はHealthHandlerを作成する
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// Check はヘルスチェックを行う
// @Summary ヘルスチェック
// @Description アプリケーションとデータベースの健全性を確認する
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Database:  "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := h.db.Ping(ctx); err != nil {
		logger.Warn("データベース疎通確認に失敗", zap.Error(err))
		resp.Status = "unavailable"
		resp.Database = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
