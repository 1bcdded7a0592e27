package handler

import (
	"context"

	"github.com/sanosuguru/musicclub-api/internal/domain/concert"
	"github.com/sanosuguru/musicclub-api/internal/domain/participation"
	"github.com/sanosuguru/musicclub-api/internal/domain/song"
)

// ResourceServiceInterface はリソースサービスのインターフェース
type ResourceServiceInterface[E any] interface {
	Create(ctx context.Context, payload *E) (*E, error)
	Get(ctx context.Context, name string) (*E, error)
	List(ctx context.Context, pageSize int32) ([]*E, error)
	Update(ctx context.Context, proposed *E, paths []string) (*E, error)
	Delete(ctx context.Context, name string) error
}

// ConcertServiceInterface はコンサートサービスのインターフェース
type ConcertServiceInterface = ResourceServiceInterface[concert.Concert]

// SongServiceInterface は楽曲サービスのインターフェース
type SongServiceInterface = ResourceServiceInterface[song.Song]

// ParticipationServiceInterface は参加情報サービスのインターフェース
type ParticipationServiceInterface = ResourceServiceInterface[participation.Participation]

// Pinger はヘルスチェックで依存先の疎通を確認する
type Pinger interface {
	Ping(ctx context.Context) error
}
