package song

import "github.com/sanosuguru/musicclub-api/internal/domain/resource"

// Song ドメインのエラー定義
var (
	ErrSongNotFound = resource.NotFound("楽曲が見つかりません")
	ErrIDRequired   = resource.InvalidArgument("楽曲IDは必須です")
)
