package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
)

// RPCLogger は呼び出しごとに1件の構造化ログを出力するインターセプター
//
// 後段が返したエラーは変更せずにそのまま返す。
func RPCLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			latency := time.Since(start)
			code := codeOf(err)

			log := logger.With(
				zap.String("request_id", requestID(c)),
				zap.String("method", MethodName(c)),
			)
			fields := []zap.Field{
				zap.String("code", string(code)),
				zap.Duration("latency", latency),
				zap.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch code {
			case resource.CodeOK:
				log.Info("rpc finished", fields...)
			case resource.CodeInternal:
				log.Error("rpc finished", fields...)
			default:
				log.Warn("rpc finished", fields...)
			}

			return err
		}
	}
}

// RequestIDMiddleware はリクエストIDを生成・付与するミドルウェア
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			return next(c)
		}
	}
}

// MethodName は "Service/Method" 形式のメソッド名を返す
func MethodName(c echo.Context) string {
	path := c.Path()
	if path == "" {
		path = c.Request().URL.Path
	}
	return strings.TrimPrefix(path, RPCPrefix+"/")
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// codeOf はエラーから結果コードを求める
func codeOf(err error) resource.Code {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return resource.CodeFromHTTPStatus(he.Code)
	}
	return resource.ErrorCode(err)
}
