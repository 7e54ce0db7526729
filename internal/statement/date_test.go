package statement

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	got := DateOf(time.Date(2025, 1, 10, 23, 30, 0, 0, loc))

	assert.Equal(t, "2025-01-10", got.String())
	assert.True(t, got.Equal(NewDate(2025, time.January, 10)))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", got.AddDays(1).String())

	for _, bad := range []string{"", "2025/01/01", "2025-13-01", "2025-1-1"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_MonthHelpers(t *testing.T) {
	dt := NewDate(2024, time.February, 17)

	assert.Equal(t, "2024-02-01", dt.MonthStart().String())
	assert.Equal(t, "2024-02-29", dt.MonthEnd().String())
	assert.Equal(t, "2024-03-01", dt.NextMonth().String())
	assert.Equal(t, "2024-02", dt.MonthKey())
	assert.Equal(t, "2025-01-01", NewDate(2024, time.December, 31).NextMonth().String())
}

func TestDate_Between(t *testing.T) {
	from, to := NewDate(2025, 1, 1), NewDate(2025, 1, 31)

	assert.True(t, from.Between(from, to))
	assert.True(t, to.Between(from, to))
	assert.False(t, NewDate(2024, 12, 31).Between(from, to))
	assert.False(t, NewDate(2025, 2, 1).Between(from, to))
}

func TestDate_JSON(t *testing.T) {
	type wrap struct {
		D Date `json:"d"`
	}
	raw, err := json.Marshal(wrap{D: NewDate(2025, 1, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-01-15"}`, string(raw))

	var back wrap
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.D.Equal(NewDate(2025, 1, 15)))

	raw, err = json.Marshal(wrap{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":null}`, string(raw))
}
