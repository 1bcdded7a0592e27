package application

import (
	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/domain/song"
)

// SongService は楽曲のユースケース
type SongService = ResourceService[song.Song, int64]

// NewSongService は SongService を作成する
func NewSongService(repo song.Repository) *SongService {
	return NewResourceService(repo, Definition[song.Song, int64]{
		Resource: "song",
		ParseKey: resource.ParseID,
		KeyOf:    (*song.Song).Key,
		Mask:     song.Mask,
	})
}
