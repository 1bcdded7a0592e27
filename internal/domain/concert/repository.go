package concert

import "github.com/sanosuguru/musicclub-api/internal/domain/resource"

// Repository はコンサートリポジトリのインターフェース
type Repository = resource.Repository[Concert, int64]
