package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// RPC呼び出しの総数（method, code）
	RPCRequestsTotal *prometheus.CounterVec

	// RPC呼び出しのレイテンシ（method）
	RPCRequestDuration *prometheus.HistogramVec

	// 権限不足で拒否された呼び出し数（method）
	AuthorizationDenied *prometheus.CounterVec

	// 接続プールの接続数（state: open, in_use, idle）
	DBConnections *prometheus.GaugeVec

	// 接続待ちの累計回数
	DBWaitCount prometheus.Gauge
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpc_requests_total",
				Help: "Total number of RPC calls by method and result code",
			},
			[]string{"method", "code"},
		),
		RPCRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rpc_request_duration_seconds",
				Help:    "RPC latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method"},
		),
		AuthorizationDenied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpc_authorization_denied_total",
				Help: "Total number of RPC calls rejected by the admin check",
			},
			[]string{"method"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Current number of database connections by state",
			},
			[]string{"state"},
		),
		DBWaitCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_wait_count",
				Help: "Total number of connections waited for",
			},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.RPCRequestsTotal,
		m.RPCRequestDuration,
		m.AuthorizationDenied,
		m.DBConnections,
		m.DBWaitCount,
	)

	return m
}
