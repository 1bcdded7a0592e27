package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// Definition はリソースごとの差分（キーの解釈と更新可能フィールド）
type Definition[E any, K any] struct {
	// Resource はリクエスト上のペイロード名 (例: "concert")
	Resource string
	// ParseKey は Get / Delete の name をキーに変換する
	ParseKey func(name string) (K, error)
	// KeyOf は Update のペイロードから更新対象のキーを取り出す
	KeyOf func(e *E) (K, error)
	// Mask は update_mask の解決ルール
	Mask *resource.Mask[E]
}

// ResourceService はリソースの作成・取得・一覧・更新・削除を行う
//
// 入力の検証はすべてストアへのアクセス前に行う。
type ResourceService[E any, K any] struct {
	repo resource.Repository[E, K]
	def  Definition[E, K]
}

// NewResourceService は ResourceService を作成する
func NewResourceService[E any, K any](repo resource.Repository[E, K], def Definition[E, K]) *ResourceService[E, K] {
	return &ResourceService[E, K]{repo: repo, def: def}
}

// Create はペイロードを検証して保存する
func (s *ResourceService[E, K]) Create(ctx context.Context, payload *E) (*E, error) {
	if payload == nil {
		return nil, s.errPayloadRequired()
	}
	if err := resource.Validate(payload); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}
	return s.repo.Create(ctx, payload)
}

// Get は name が指すリソースを返す
func (s *ResourceService[E, K]) Get(ctx context.Context, name string) (*E, error) {
	key, err := s.def.ParseKey(name)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, key)
}

// List はキー順に1ページ分を返す。続きのページはない
func (s *ResourceService[E, K]) List(ctx context.Context, pageSize int32) ([]*E, error) {
	return s.repo.List(ctx, resource.SanitizePageSize(pageSize))
}

// Update は既存のリソースに paths で指定したフィールドを反映する
//
// paths が空なら全フィールドを置き換える。マージ後の値も検証する。
func (s *ResourceService[E, K]) Update(ctx context.Context, proposed *E, paths []string) (*E, error) {
	if proposed == nil {
		return nil, s.errPayloadRequired()
	}
	key, err := s.def.KeyOf(proposed)
	if err != nil {
		return nil, err
	}
	if err := s.def.Mask.Check(paths); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, key, func(existing *E) (*E, error) {
		resolved, err := s.def.Mask.Apply(existing, proposed, paths)
		if err != nil {
			return nil, err
		}
		if err := resource.Validate(resolved); err != nil {
			return nil, fmt.Errorf("バリデーションエラー: %w", err)
		}
		return resolved, nil
	})
}

// Delete は name が指すリソースを削除する
func (s *ResourceService[E, K]) Delete(ctx context.Context, name string) error {
	key, err := s.def.ParseKey(name)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, key)
}

func (s *ResourceService[E, K]) errPayloadRequired() error {
	return resource.InvalidArgumentf("%s は必須です", s.def.Resource)
}
