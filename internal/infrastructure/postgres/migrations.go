package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
)

// RunMigrations は concerts / songs / song_participations のスキーマを最新にする
func RunMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("マイグレーションドライバー作成エラー: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("マイグレーションインスタンス作成エラー: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("マイグレーションは最新です", zap.String("path", migrationsPath))
			return nil
		}
		return fmt.Errorf("マイグレーション実行エラー: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("マイグレーションバージョン取得エラー: %w", err)
	}
	logger.Info("マイグレーションを適用しました",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
