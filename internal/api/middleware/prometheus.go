package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
)

// PrometheusMiddleware はRPCメトリクスを収集するミドルウェア
func PrometheusMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			method := MethodName(c)
			m.RPCRequestsTotal.WithLabelValues(method, string(codeOf(err))).Inc()
			m.RPCRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
