package concert

import "github.com/sanosuguru/musicclub-api/internal/domain/resource"

// Concert ドメインのエラー定義
var (
	ErrConcertNotFound = resource.NotFound("コンサートが見つかりません")
	ErrIDRequired      = resource.InvalidArgument("コンサートIDは必須です")
)
