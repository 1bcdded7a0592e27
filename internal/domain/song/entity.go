package song

import (
	"strings"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// Song は楽曲エンティティを表す
type Song struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// NewSong は新しい楽曲を作成する
func NewSong(title, description, link string) *Song {
	return &Song{Title: title, Description: description, Link: link}
}

// Mask は update_mask で更新できるフィールド
var Mask = resource.NewMask(
	resource.Field[Song]{Path: "title", Copy: func(dst, src *Song) { dst.Title = src.Title }},
	resource.Field[Song]{Path: "description", Copy: func(dst, src *Song) { dst.Description = src.Description }},
	resource.Field[Song]{Path: "link", Copy: func(dst, src *Song) { dst.Link = src.Link }},
)

// Key は更新対象のIDを返す
func (s *Song) Key() (int64, error) {
	if s.ID <= 0 {
		return 0, ErrIDRequired
	}
	return s.ID, nil
}

// Optional は空白のみの値を未設定(nil)として扱う
func Optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
