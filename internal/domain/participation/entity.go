package participation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// Participation は楽曲への参加（楽曲・人物・役割の組）を表す
type Participation struct {
	SongID   int64  `json:"song_id" validate:"required,gt=0"`
	PersonID int64  `json:"tg_id" validate:"required,gt=0"`
	Role     string `json:"role_title" validate:"notblank"`
}

// NewParticipation は新しい参加を作成する
func NewParticipation(songID, personID int64, role string) *Participation {
	return &Participation{SongID: songID, PersonID: personID, Role: role}
}

// Key は参加を一意に識別する複合キー
type Key struct {
	SongID   int64
	PersonID int64
	Role     string
}

// String はキーを "<song_id>:<tg_id>:<role_title>" 形式に変換する
func (k Key) String() string {
	return fmt.Sprintf("%d:%d:%s", k.SongID, k.PersonID, k.Role)
}

// Validate はキーの各要素が正・非空であることを確認する
func (k Key) Validate() error {
	if k.SongID <= 0 || k.PersonID <= 0 || strings.TrimSpace(k.Role) == "" {
		return ErrInvalidName
	}
	return nil
}

// ParseKey は "<song_id>:<tg_id>:<role_title>" 形式の名前を解釈する
//
// 最大3つに分割するため、役割名に含まれる ':' はそのまま残る。
func ParseKey(name string) (Key, error) {
	parts := strings.SplitN(name, ":", 3)
	if len(parts) != 3 {
		return Key{}, ErrInvalidName
	}

	songID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Key{}, ErrInvalidName
	}
	personID, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Key{}, ErrInvalidName
	}

	k := Key{SongID: songID, PersonID: personID, Role: parts[2]}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// Key はペイロード自身の値から複合キーを作る
func (p *Participation) Key() (Key, error) {
	if err := resource.Validate(p); err != nil {
		return Key{}, err
	}
	return Key{SongID: p.SongID, PersonID: p.PersonID, Role: p.Role}, nil
}

// Mask は update_mask で更新できるフィールド
//
// role_title はキーの一部でもあるため、更新はペイロードのキーで行を探した上で同じ値を書き戻す。
var Mask = resource.NewMask(
	resource.Field[Participation]{Path: "role_title", Copy: func(dst, src *Participation) { dst.Role = src.Role }},
).WithImmutable("updating song_id or tg_id is not supported", "song_id", "tg_id")
