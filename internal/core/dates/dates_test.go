package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *Date {
	dt := New(y, m, d)
	return &dt
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := Parse("2024-06-10")
		require.NoError(t, err)
		assert.Equal(t, New(2024, time.June, 10), d)
		assert.Equal(t, "2024-06-10", d.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Parse("June 10th")
		assert.Error(t, err)
	})
}

func TestOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	t.Run("nil date is never overdue", func(t *testing.T) {
		assert.False(t, Overdue(nil, now))
	})

	t.Run("yesterday is overdue", func(t *testing.T) {
		assert.True(t, Overdue(date(2024, time.June, 9), now))
	})

	t.Run("today is not overdue until end of day", func(t *testing.T) {
		assert.False(t, Overdue(date(2024, time.June, 10), now))
	})

	t.Run("tomorrow is not overdue", func(t *testing.T) {
		assert.False(t, Overdue(date(2024, time.June, 11), now))
	})
}

func TestDueWithin(t *testing.T) {
	now := time.Date(2024, time.June, 10, 23, 50, 0, 0, time.UTC)

	tests := []struct {
		name string
		d    *Date
		days int
		want bool
	}{
		{"nil date", nil, 3, false},
		{"today inclusive", date(2024, time.June, 10), 3, true},
		{"upper bound inclusive", date(2024, time.June, 13), 3, true},
		{"past upper bound", date(2024, time.June, 14), 3, false},
		{"yesterday excluded", date(2024, time.June, 9), 3, false},
		{"ten days out with 3-day window", date(2024, time.June, 20), 3, false},
		{"zero window is today only", date(2024, time.June, 10), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueWithin(tt.d, now, tt.days))
		})
	}
}

func TestDueWithin_IgnoresTimeOfDay(t *testing.T) {
	// 23:50 local - a due date 3 days ahead is still inside the window
	// even though the instant 72h from now would fall past it.
	now := time.Date(2024, time.June, 10, 23, 50, 0, 0, time.FixedZone("X", -7*3600))
	assert.True(t, DueWithin(date(2024, time.June, 13), now, 3))
}

func TestStartOfWeek(t *testing.T) {
	// 2024-06-12 is a Wednesday; the week starts Sunday 2024-06-09.
	assert.Equal(t, New(2024, time.June, 9), New(2024, time.June, 12).StartOfWeek())

	// A Sunday is its own week start.
	assert.Equal(t, New(2024, time.June, 9), New(2024, time.June, 9).StartOfWeek())

	// Week start can cross a month boundary.
	assert.Equal(t, New(2024, time.May, 26), New(2024, time.June, 1).StartOfWeek())
}

func TestStartOfMonth(t *testing.T) {
	assert.Equal(t, New(2024, time.February, 1), New(2024, time.February, 29).StartOfMonth())
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, New(2024, time.March, 1), New(2024, time.February, 29).AddDays(1))
	assert.Equal(t, New(2023, time.December, 31), New(2024, time.January, 1).AddDays(-1))
}

func TestCompare(t *testing.T) {
	a := New(2024, time.June, 1)
	b := New(2024, time.June, 10)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(New(2024, time.June, 1), New(2024, time.June, 30)))
	assert.False(t, SameMonth(New(2024, time.June, 1), New(2023, time.June, 1)))
	assert.False(t, SameMonth(New(2024, time.June, 1), New(2024, time.July, 1)))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "—", FormatShort(nil))
	assert.Equal(t, "Jun 10", FormatShort(date(2024, time.June, 10)))
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.June, 10)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10"`, string(data))

	var back Date
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
