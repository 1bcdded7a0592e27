package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
)

// ErrorResponse はエラーレスポンスの統一フォーマット
type ErrorResponse struct {
	Error  string        `json:"error"`
	Code   resource.Code `json:"code"`
	Status int           `json:"status"`
}

// CustomHTTPErrorHandler はエラーをコードに応じたHTTPステータスとJSONに変換する
//
// 内部エラーの詳細はログにのみ出力し、レスポンスには固定メッセージを返す。
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status  int
		code    resource.Code
		message string
	)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		code = resource.CodeFromHTTPStatus(status)
		if m, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
			message = m
		} else {
			message = http.StatusText(status)
		}
	} else {
		code = resource.ErrorCode(err)
		status = resource.HTTPStatus(code)
		message = resource.ErrorMessage(err)
	}

	// エラーログを出力（5xx エラーの場合）
	if status >= http.StatusInternalServerError {
		logger.Error("サーバーエラー",
			zap.Int("status", status),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if err := c.JSON(status, ErrorResponse{
		Error:  message,
		Code:   code,
		Status: status,
	}); err != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(err))
	}
}
