package worker

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
)

// StatsSource は接続プールの統計を返す（*sql.DB / *sqlx.DB が満たす）
type StatsSource interface {
	Stats() sql.DBStats
}

// PoolStatsReporter は接続プールの状態を定期的にメトリクスへ反映するワーカー
type PoolStatsReporter struct {
	source   StatsSource
	metrics  *metrics.Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// defaultInterval は interval が0以下の場合の監視間隔
const defaultInterval = 15 * time.Second

// NewPoolStatsReporter は新しいレポーターを作成
func NewPoolStatsReporter(source StatsSource, m *metrics.Metrics, interval time.Duration) *PoolStatsReporter {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &PoolStatsReporter{
		source:   source,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はレポーターを開始。Stop かコンテキストのキャンセルまでブロックする
func (r *PoolStatsReporter) Start(ctx context.Context) {
	logger.Info("接続プール監視開始", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	r.report()
	for {
		select {
		case <-ctx.Done():
			logger.Info("接続プール監視停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("接続プール監視停止（シグナル受信）")
			return
		case <-ticker.C:
			r.report()
		}
	}
}

// Stop はレポーターを停止し、終了を待つ
func (r *PoolStatsReporter) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// report は現在の統計をゲージに書き込む
func (r *PoolStatsReporter) report() {
	stats := r.source.Stats()

	r.metrics.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	r.metrics.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	r.metrics.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	r.metrics.DBWaitCount.Set(float64(stats.WaitCount))

	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		logger.Warn("接続プールが上限に達しています",
			zap.Int("in_use", stats.InUse),
			zap.Int("max_open", stats.MaxOpenConnections),
			zap.Int64("wait_count", stats.WaitCount),
		)
		return
	}
	logger.Debug("接続プール状態", zap.Int("open", stats.OpenConnections), zap.Int("in_use", stats.InUse))
}
