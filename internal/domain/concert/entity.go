package concert

import (
	"time"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// Concert はコンサート（日程付きイベント）エンティティを表す
type Concert struct {
	ID   int64      `json:"id"`
	Name string     `json:"name" validate:"notblank"`
	Date *time.Time `json:"date"`
}

// NewConcert は新しいコンサートを作成する
func NewConcert(name string, date *time.Time) *Concert {
	return &Concert{Name: name, Date: DateOf(date)}
}

// DateOf は日時を暦日（UTCの0時）に丸める
func DateOf(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// Mask は update_mask で更新できるフィールド
var Mask = resource.NewMask(
	resource.Field[Concert]{Path: "name", Copy: func(dst, src *Concert) { dst.Name = src.Name }},
	resource.Field[Concert]{Path: "date", Copy: func(dst, src *Concert) { dst.Date = DateOf(src.Date) }},
)

// Key は更新対象のIDを返す
func (c *Concert) Key() (int64, error) {
	if c.ID <= 0 {
		return 0, ErrIDRequired
	}
	return c.ID, nil
}
