// Package dates provides timezone-naive calendar date arithmetic for the
// board. A Date carries no time-of-day and no location; predicates that need
// "now" take it explicitly so tests can pin the clock.
package dates

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISO is the wire format for calendar dates.
const ISO = "2006-01-02"

// WeekStart is the first day of the week everywhere in this application.
const WeekStart = time.Sunday

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Of returns the calendar date of t in t's location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads a date in ISO form ("2006-01-02").
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISO, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Of(t), nil
}

// String renders the date in ISO form. ISO strings order
// lexicographically the same way dates order chronologically.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns the midnight instant of d in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last instant of d in the given location.
func (d Date) EndOfDay(loc *time.Location) time.Time {
	return d.In(loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Of(d.In(time.UTC).AddDate(0, 0, n))
}

// Compare orders two dates: -1 if d is earlier, 0 if equal, 1 if later.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// StartOfWeek returns the Sunday on or before d.
func (d Date) StartOfWeek() Date {
	return d.AddDays(-int(d.In(time.UTC).Weekday() - WeekStart))
}

// SameMonth reports whether two dates fall in the same month and year.
func SameMonth(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

// MarshalJSON renders the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Overdue reports whether d is set and its end-of-day instant is strictly
// before now. Nil dates are never overdue.
func Overdue(d *Date, now time.Time) bool {
	if d == nil {
		return false
	}
	return d.EndOfDay(now.Location()).Before(now)
}

// DueWithin reports whether d is set and falls within [today, today+days]
// inclusive, comparing calendar dates only. Today is now's local date.
func DueWithin(d *Date, now time.Time, days int) bool {
	if d == nil {
		return false
	}
	today := Of(now)
	return !d.Before(today) && !d.After(today.AddDays(days))
}

// FormatShort renders an abbreviated month and day ("Jun 10"), or an em
// dash for absent dates.
func FormatShort(d *Date) string {
	if d == nil {
		return "—"
	}
	return d.In(time.UTC).Format("Jan 2")
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
