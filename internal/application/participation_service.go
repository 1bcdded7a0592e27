package application

import (
	"github.com/sanosuguru/musicclub-api/internal/domain/participation"
)

// ParticipationService は参加情報のユースケース
//
// Update はペイロード自身の (song_id, tg_id, role_title) で行を探す。
// role_title を変えたペイロードは元の行に一致しないため NotFound になる。
type ParticipationService = ResourceService[participation.Participation, participation.Key]

// NewParticipationService は ParticipationService を作成する
func NewParticipationService(repo participation.Repository) *ParticipationService {
	return NewResourceService(repo, Definition[participation.Participation, participation.Key]{
		Resource: "participation",
		ParseKey: participation.ParseKey,
		KeyOf:    (*participation.Participation).Key,
		Mask:     participation.Mask,
	})
}
