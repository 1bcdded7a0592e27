package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/musicclub-api/internal/api"
	"github.com/sanosuguru/musicclub-api/internal/api/handler"
	"github.com/sanosuguru/musicclub-api/internal/api/middleware"
	"github.com/sanosuguru/musicclub-api/internal/config"
	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
)

// Deps はルーティングに必要な依存関係
type Deps struct {
	Config               *config.Config
	Metrics              *metrics.Metrics
	Gatherer             prometheus.Gatherer
	DB                   handler.Pinger
	ConcertService       handler.ConcertServiceInterface
	SongService          handler.SongServiceInterface
	ParticipationService handler.ParticipationServiceInterface
}

// New は全エンドポイントを登録した Echo を作成する
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler

	middleware.SetupMiddleware(e)

	// ヘルスチェック
	e.GET("/health", handler.NewHealthHandler(d.DB).Check)

	// メトリクス
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
		middleware.MetricsBasicAuth(&d.Config.Metrics))

	// RPC
	policy := middleware.NewAccessPolicy(d.Config.Auth.PrivilegedMethods, d.Config.Auth.AdminIDs)
	rpc := e.Group(middleware.RPCPrefix, middleware.RPCChain(d.Metrics, policy)...)
	handler.NewConcertHandler(d.ConcertService).Register(rpc)
	handler.NewSongHandler(d.SongService).Register(rpc)
	handler.NewParticipationHandler(d.ParticipationService).Register(rpc)

	return e
}
