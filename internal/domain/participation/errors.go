package participation

import "github.com/sanosuguru/musicclub-api/internal/domain/resource"

// Participation ドメインのエラー定義
var (
	ErrParticipationNotFound = resource.NotFound("参加情報が見つかりません")
	ErrInvalidName           = resource.InvalidArgument("参加情報の名前が不正です")
)
