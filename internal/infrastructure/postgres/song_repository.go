package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/musicclub-api/internal/domain/song"
)

// songRow はDBの行を表す構造体
type songRow struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Link        *string `db:"link"`
}

var songSchema = Schema[song.Song, songRow, int64]{
	Table:    "songs",
	Columns:  []string{"id", "title", "description", "link"},
	OrderBy:  []string{"id"},
	Name:     "楽曲",
	NotFound: song.ErrSongNotFound,
	Where: func(id int64) sq.Eq {
		return sq.Eq{"id": id}
	},
	Values: func(s *song.Song) map[string]any {
		return map[string]any{
			"title":       s.Title,
			"description": song.Optional(s.Description),
			"link":        song.Optional(s.Link),
		}
	},
	Entity: func(r *songRow) *song.Song {
		var desc, link string
		if r.Description != nil {
			desc = *r.Description
		}
		if r.Link != nil {
			link = *r.Link
		}
		return &song.Song{ID: r.ID, Title: r.Title, Description: desc, Link: link}
	},
}

// NewSongRepository は楽曲リポジトリのPostgreSQL実装を作成する
func NewSongRepository(db *sqlx.DB) song.Repository {
	return NewTable(db, songSchema)
}
