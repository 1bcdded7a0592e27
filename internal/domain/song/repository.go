package song

import "github.com/sanosuguru/musicclub-api/internal/domain/resource"

// Repository は楽曲リポジトリのインターフェース
type Repository = resource.Repository[Song, int64]
