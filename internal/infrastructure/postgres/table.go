package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/domain/transaction"
)

// psql はPostgreSQL用のプレースホルダ($1, $2, ...)でSQLを組み立てる
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Schema はテーブルとエンティティの対応
//
// E はドメインエンティティ、R は sqlx でスキャンする行、K はキーの型。
type Schema[E any, R any, K any] struct {
	// Table はテーブル名
	Table string
	// Columns は SELECT / RETURNING で取得する列
	Columns []string
	// OrderBy は一覧の並び順
	OrderBy []string
	// Name はエラーの操作名に使うリソース名
	Name string
	// NotFound は行が見つからない場合に返すエラー
	NotFound error
	// Where はキーに一致する条件を返す
	Where func(key K) sq.Eq
	// Values は INSERT / UPDATE で書き込む列と値を返す
	Values func(e *E) map[string]any
	// Entity は行をエンティティに変換する
	Entity func(r *R) *E
}

// Table は Schema に従って CRUD を行う汎用リポジトリ
type Table[E any, R any, K any] struct {
	db     *sqlx.DB
	txm    transaction.Manager
	schema Schema[E, R, K]
}

// NewTable は Table を作成する
func NewTable[E any, R any, K any](db *sqlx.DB, schema Schema[E, R, K]) *Table[E, R, K] {
	return &Table[E, R, K]{db: db, txm: NewTxManager(db), schema: schema}
}

// Create は行を挿入し、採番後の値を返す
func (t *Table[E, R, K]) Create(ctx context.Context, e *E) (*E, error) {
	query, args, err := psql.Insert(t.schema.Table).
		SetMap(t.schema.Values(e)).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return nil, resource.Internal(t.op("作成"), err)
	}

	var row R
	if err := t.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, resource.Internal(t.op("作成"), err)
	}
	return t.schema.Entity(&row), nil
}

// Get はキーに一致する行を返す
func (t *Table[E, R, K]) Get(ctx context.Context, key K) (*E, error) {
	query, args, err := t.selectByKey(key).ToSql()
	if err != nil {
		return nil, resource.Internal(t.op("取得"), err)
	}

	var row R
	if err := t.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, t.schema.NotFound
		}
		return nil, resource.Internal(t.op("取得"), err)
	}
	return t.schema.Entity(&row), nil
}

// List はキー順に最大 limit 件を返す
func (t *Table[E, R, K]) List(ctx context.Context, limit int) ([]*E, error) {
	query, args, err := psql.Select(t.schema.Columns...).
		From(t.schema.Table).
		OrderBy(t.schema.OrderBy...).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, resource.Internal(t.op("一覧取得"), err)
	}

	var rows []R
	if err := t.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, resource.Internal(t.op("一覧取得"), err)
	}

	entities := make([]*E, 0, len(rows))
	for i := range rows {
		entities = append(entities, t.schema.Entity(&rows[i]))
	}
	return entities, nil
}

// Update は既存の行をロックして読み、resolve の結果で上書きする
//
// resolve がエラーを返した場合は何も書き込まずにロールバックする。
func (t *Table[E, R, K]) Update(ctx context.Context, key K, resolve resource.ResolveFunc[E]) (*E, error) {
	var updated *E
	err := transaction.Run(ctx, t.txm, func(tx transaction.Tx) error {
		sqlTx := UnwrapTx(tx)

		query, args, err := t.selectByKey(key).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return resource.Internal(t.op("更新"), err)
		}
		var row R
		if err := sqlTx.GetContext(ctx, &row, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return t.schema.NotFound
			}
			return resource.Internal(t.op("更新"), err)
		}

		resolved, err := resolve(t.schema.Entity(&row))
		if err != nil {
			return err
		}

		query, args, err = psql.Update(t.schema.Table).
			SetMap(t.schema.Values(resolved)).
			Where(t.schema.Where(key)).
			Suffix(t.returning()).
			ToSql()
		if err != nil {
			return resource.Internal(t.op("更新"), err)
		}
		var out R
		if err := sqlTx.GetContext(ctx, &out, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return t.schema.NotFound
			}
			return resource.Internal(t.op("更新"), err)
		}
		updated = t.schema.Entity(&out)
		return nil
	})
	if err != nil {
		// Begin / Commit の失敗はコードを持たないため内部エラーに包む
		var rerr *resource.Error
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, resource.Internal(t.op("更新"), err)
	}
	return updated, nil
}

// Delete はキーに一致する行を削除する。削除件数が0なら NotFound
func (t *Table[E, R, K]) Delete(ctx context.Context, key K) error {
	query, args, err := psql.Delete(t.schema.Table).Where(t.schema.Where(key)).ToSql()
	if err != nil {
		return resource.Internal(t.op("削除"), err)
	}

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return resource.Internal(t.op("削除"), err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return resource.Internal(t.op("削除"), err)
	}
	if rowsAffected == 0 {
		return t.schema.NotFound
	}
	return nil
}

func (t *Table[E, R, K]) selectByKey(key K) sq.SelectBuilder {
	return psql.Select(t.schema.Columns...).
		From(t.schema.Table).
		Where(t.schema.Where(key))
}

func (t *Table[E, R, K]) returning() string {
	return "RETURNING " + strings.Join(t.schema.Columns, ", ")
}

func (t *Table[E, R, K]) op(verb string) string {
	return t.schema.Name + verb
}
