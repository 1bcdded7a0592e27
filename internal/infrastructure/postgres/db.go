package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/sanosuguru/musicclub-api/internal/config"
)

// NewConnection はPostgreSQLへの接続プールを作成する
func NewConnection(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗しました: %w", err)
	}

	// 接続プール設定
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Ping はデータベース接続を確認する
func Ping(ctx context.Context, db *sqlx.DB) error {
	return db.PingContext(ctx)
}

// Pinger はヘルスチェック用に *sqlx.DB を包む
type Pinger struct {
	db *sqlx.DB
}

// NewPinger は Pinger を作成する
func NewPinger(db *sqlx.DB) *Pinger {
	return &Pinger{db: db}
}

// Ping はデータベース接続を確認する
func (p *Pinger) Ping(ctx context.Context) error {
	return Ping(ctx, p.db)
}
