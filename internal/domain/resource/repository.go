package resource

import "context"

// ResolveFunc は既存エンティティから永続化する候補を作る。I/Oを行ってはならない
type ResolveFunc[E any] func(existing *E) (*E, error)

// Repository はリソースごとの永続化操作
type Repository[E any, K any] interface {
	// Create は新しい行を挿入し、ストアが採番したキーを含むエンティティを返す
	Create(ctx context.Context, e *E) (*E, error)

	// Get はキーに一致する行を返す
	Get(ctx context.Context, key K) (*E, error)

	// List は主キー昇順で最大 limit 件を返す
	List(ctx context.Context, limit int) ([]*E, error)

	// Update は既存の行を読み、resolve の結果で上書きする
	Update(ctx context.Context, key K, resolve ResolveFunc[E]) (*E, error)

	// Delete はキーに一致する行を削除する
	Delete(ctx context.Context, key K) error
}
