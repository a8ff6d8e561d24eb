package board

import (
	"time"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

// SortKey selects the ordering applied to the filtered list.
type SortKey string

const (
	SortDueDate  SortKey = "dueDate"
	SortCreated  SortKey = "createdAt"
	SortCategory SortKey = "category"
)

// SortKeys lists the sort keys in menu order.
var SortKeys = []SortKey{SortDueDate, SortCreated, SortCategory}

// StatusAll is the status filter value that keeps every status.
const StatusAll task.Status = ""

// CalendarMode selects how the calendar view slices time.
type CalendarMode string

const (
	ModeMonth CalendarMode = "month"
	ModeWeek  CalendarMode = "week"
	ModeDay   CalendarMode = "day"
)

// State is the complete view state the projections derive from. It is a
// value; every user action produces a new State rather than mutating a
// shared one, and the projections are pure functions of (tasks, State).
type State struct {
	Categories map[task.Category]bool
	Status     task.Status
	Query      string
	Sort       SortKey
	Cursor     dates.Date
	Mode       CalendarMode
}

// DefaultState returns the initial view state: all categories active, all
// statuses, due-date sort, month calendar cursored on today.
func DefaultState(now time.Time) State {
	cats := make(map[task.Category]bool, len(task.Categories))
	for _, c := range task.Categories {
		cats[c] = true
	}
	return State{
		Categories: cats,
		Status:     StatusAll,
		Sort:       SortDueDate,
		Cursor:     dates.Of(now),
		Mode:       ModeMonth,
	}
}

// WithCategoryToggled returns a copy of s with one category flipped.
func (s State) WithCategoryToggled(c task.Category) State {
	cats := make(map[task.Category]bool, len(s.Categories))
	for k, v := range s.Categories {
		cats[k] = v
	}
	cats[c] = !cats[c]
	s.Categories = cats
	return s
}

// WithStatus returns a copy of s filtering on the given status
// (StatusAll keeps everything).
func (s State) WithStatus(st task.Status) State {
	s.Status = st
	return s
}

// WithQuery returns a copy of s with a new search query.
func (s State) WithQuery(q string) State {
	s.Query = q
	return s
}

// WithSort returns a copy of s with a new sort key.
func (s State) WithSort(k SortKey) State {
	s.Sort = k
	return s
}

// WithCursor returns a copy of s with the calendar cursor moved.
func (s State) WithCursor(d dates.Date) State {
	s.Cursor = d
	return s
}

// WithMode returns a copy of s with a new calendar mode.
func (s State) WithMode(m CalendarMode) State {
	s.Mode = m
	return s
}

// CursorStep returns the cursor shifted by n periods of the current
// calendar mode: months in month mode, weeks in week mode, days in day
// mode.
func (s State) CursorStep(n int) dates.Date {
	switch s.Mode {
	case ModeWeek:
		return s.Cursor.AddDays(7 * n)
	case ModeDay:
		return s.Cursor.AddDays(n)
	default:
		first := s.Cursor.StartOfMonth().In(time.UTC).AddDate(0, n, 0)
		return dates.Of(first)
	}
}
