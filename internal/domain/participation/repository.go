package participation

import "github.com/sanosuguru/musicclub-api/internal/domain/resource"

// Repository は参加情報リポジトリのインターフェース
type Repository = resource.Repository[Participation, Key]
