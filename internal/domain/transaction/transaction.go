package transaction

import "context"

// Tx はトランザクションを表すインターフェース
// ドメイン層がインフラ層（sqlx等）に依存しないようにするための抽象化
type Tx interface {
	Commit() error
	Rollback() error
}

// Manager はトランザクションを管理するインターフェース
type Manager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Run は fn をトランザクション内で実行する
//
// fn がエラーを返した場合はロールバックし、成功時はコミットする。
// どの経路でも接続はプールに返却される。
func Run(ctx context.Context, m Manager, fn func(tx Tx) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	// コミット後の Rollback は sql.ErrTxDone を返すだけなので無視してよい
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
