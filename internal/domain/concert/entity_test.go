package concert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewConcert(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	startAt := time.Date(2025, 12, 31, 18, 30, 0, 0, jst)

	c := NewConcert("年末ライブ", &startAt)

	assert.Equal(t, "年末ライブ", c.Name)
	assert.Equal(t, int64(0), c.ID)
	require.NotNil(t, c.Date)
	assert.Equal(t, date(2025, 12, 31), c.Date)
}

func TestDateOf(t *testing.T) {
	assert.Nil(t, DateOf(nil))

	ts := time.Date(2025, 1, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date(2025, 1, 2), DateOf(&ts))
}

func TestConcert_Validate(t *testing.T) {
	tests := []struct {
		name    string
		concert *Concert
		wantErr bool
	}{
		{name: "有効なコンサート", concert: &Concert{Name: "春の定期演奏会"}},
		{name: "日付ありでも有効", concert: &Concert{Name: "春の定期演奏会", Date: date(2025, 4, 1)}},
		{name: "名前が空", concert: &Concert{Name: ""}, wantErr: true},
		{name: "名前が空白のみ", concert: &Concert{Name: "  \t"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resource.Validate(tt.concert)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "name は必須です", resource.ErrorMessage(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConcert_Key(t *testing.T) {
	id, err := (&Concert{ID: 5}).Key()
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	_, err = (&Concert{}).Key()
	assert.ErrorIs(t, err, ErrIDRequired)

	_, err = (&Concert{ID: -3}).Key()
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestMask(t *testing.T) {
	existing := &Concert{ID: 5, Name: "Old", Date: date(2024, 5, 1)}
	incoming := &Concert{ID: 5, Name: "New", Date: date(1970, 1, 1)}

	t.Run("nameのみ指定すると日付は既存値のまま", func(t *testing.T) {
		updated, err := Mask.Apply(existing, incoming, []string{"name"})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, existing.Date, updated.Date)
	})

	t.Run("マスクなしは全置換", func(t *testing.T) {
		updated, err := Mask.Apply(existing, &Concert{ID: 5, Name: "New"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		assert.Nil(t, updated.Date)
	})

	t.Run("dateの指定は暦日に丸める", func(t *testing.T) {
		ts := time.Date(2025, 6, 7, 15, 0, 0, 0, time.UTC)
		updated, err := Mask.Apply(existing, &Concert{Date: &ts}, []string{"date"})
		require.NoError(t, err)
		assert.Equal(t, "Old", updated.Name)
		assert.Equal(t, date(2025, 6, 7), updated.Date)
	})

	t.Run("未知のパスは拒否", func(t *testing.T) {
		_, err := Mask.Apply(existing, incoming, []string{"venue"})
		require.Error(t, err)
		assert.Equal(t, resource.CodeInvalidArgument, resource.ErrorCode(err))
	})
}
