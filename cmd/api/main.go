package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/api/router"
	"github.com/sanosuguru/musicclub-api/internal/application"
	"github.com/sanosuguru/musicclub-api/internal/config"
	"github.com/sanosuguru/musicclub-api/internal/infrastructure/postgres"
	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
	"github.com/sanosuguru/musicclub-api/internal/worker"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.App.Env); err != nil {
		log.Fatalf("ロガー初期化エラー: %v", err)
	}
	defer logger.Sync()

	m := metrics.New()

	// DB接続
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("DB接続エラー", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(db.DB, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("マイグレーションエラー", zap.Error(err))
	}

	// リポジトリ・サービス
	concertService := application.NewConcertService(postgres.NewConcertRepository(db))
	songService := application.NewSongService(postgres.NewSongRepository(db))
	participationService := application.NewParticipationService(postgres.NewParticipationRepository(db))

	e := router.New(router.Deps{
		Config:               cfg,
		Metrics:              m,
		Gatherer:             prometheus.DefaultGatherer,
		DB:                   postgres.NewPinger(db),
		ConcertService:       concertService,
		SongService:          songService,
		ParticipationService: participationService,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	if len(cfg.Auth.AdminIDs) == 0 {
		logger.Warn("管理者IDが未設定のため管理者限定メソッドは常に拒否されます",
			zap.Strings("methods", cfg.Auth.PrivilegedMethods),
		)
	}

	// 接続プール監視
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reporter := worker.NewPoolStatsReporter(db, m, cfg.Metrics.StatsInterval)
	go reporter.Start(ctx)

	// サーバー起動
	go func() {
		logger.Info("サーバー起動", zap.String("port", cfg.Server.Port), zap.String("env", cfg.App.Env))
		if err := e.Start(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	reporter.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("サーバーシャットダウンエラー", zap.Error(err))
		return
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
