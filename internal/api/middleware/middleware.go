package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
)

// RPCPrefix はRPCメソッドのパスの接頭辞
const RPCPrefix = "/rpc"

// SetupMiddleware は共通ミドルウェアを設定する
func SetupMiddleware(e *echo.Echo) {
	// リクエストID
	e.Use(RequestIDMiddleware())

	// パニックリカバリー
	e.Use(middleware.Recover())

	// CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderXRequestID, HeaderUserID},
	}))
}

// RPCChain はRPCメソッドに適用するインターセプターを外側から順に返す
//
// ログは最外周に置き、権限で拒否された呼び出しのレイテンシも記録する。
// パニックはログとメトリクスの内側で内部エラーに変換する。
func RPCChain(m *metrics.Metrics, policy *AccessPolicy) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RPCLogger(),
		PrometheusMiddleware(m),
		RPCRecover(),
		Authorization(policy, m),
	}
}

// RPCRecover は後段のパニックを内部エラーとして呼び出し元の段へ返す
func RPCRecover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableErrorHandler: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			method := MethodName(c)
			logger.Error("パニックから復帰",
				zap.String("method", method),
				zap.Error(err),
				zap.ByteString("stack", stack),
			)
			return resource.Internal(method, err)
		},
	})
}
