package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/musicclub-api/internal/domain/participation"
)

// participationRow はDBの行を表す構造体
type participationRow struct {
	SongID   int64  `db:"song_id"`
	PersonID int64  `db:"person_id"`
	Role     string `db:"role"`
}

var participationSchema = Schema[participation.Participation, participationRow, participation.Key]{
	Table:    "song_participations",
	Columns:  []string{"song_id", "person_id", "role"},
	OrderBy:  []string{"song_id", "person_id", "role"},
	Name:     "参加情報",
	NotFound: participation.ErrParticipationNotFound,
	Where: func(k participation.Key) sq.Eq {
		return sq.Eq{"song_id": k.SongID, "person_id": k.PersonID, "role": k.Role}
	},
	Values: func(p *participation.Participation) map[string]any {
		return map[string]any{"song_id": p.SongID, "person_id": p.PersonID, "role": p.Role}
	},
	Entity: func(r *participationRow) *participation.Participation {
		return participation.NewParticipation(r.SongID, r.PersonID, r.Role)
	},
}

// NewParticipationRepository は参加情報リポジトリのPostgreSQL実装を作成する
func NewParticipationRepository(db *sqlx.DB) participation.Repository {
	return NewTable(db, participationSchema)
}
