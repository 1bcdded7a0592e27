package postgres

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/musicclub-api/internal/domain/concert"
)

// dateLayout は DATE 列に書き込む形式
const dateLayout = "2006-01-02"

// concertRow はDBの行を表す構造体
type concertRow struct {
	ID   int64      `db:"id"`
	Name string     `db:"name"`
	Date *time.Time `db:"date"`
}

var concertSchema = Schema[concert.Concert, concertRow, int64]{
	Table:    "concerts",
	Columns:  []string{"id", "name", "date"},
	OrderBy:  []string{"id"},
	Name:     "コンサート",
	NotFound: concert.ErrConcertNotFound,
	Where: func(id int64) sq.Eq {
		return sq.Eq{"id": id}
	},
	Values: func(c *concert.Concert) map[string]any {
		// 日付なしは NULL
		var date any
		if d := concert.DateOf(c.Date); d != nil {
			date = d.Format(dateLayout)
		}
		return map[string]any{"name": c.Name, "date": date}
	},
	Entity: func(r *concertRow) *concert.Concert {
		return &concert.Concert{ID: r.ID, Name: r.Name, Date: concert.DateOf(r.Date)}
	},
}

// NewConcertRepository はコンサートリポジトリのPostgreSQL実装を作成する
func NewConcertRepository(db *sqlx.DB) concert.Repository {
	return NewTable(db, concertSchema)
}
