package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

func TestMonthGrid(t *testing.T) {
	// June 2024: the 1st is a Saturday, so the grid starts Sunday May 26.
	cursor := dates.New(2024, time.June, 10)
	today := dates.New(2024, time.June, 10)

	grid := MonthGrid(nil, cursor, today, 3)
	require.Len(t, grid, MonthGridCells)

	assert.Equal(t, dates.New(2024, time.May, 26), grid[0].Date)
	assert.Equal(t, dates.New(2024, time.July, 6), grid[41].Date)

	t.Run("in-month flags", func(t *testing.T) {
		assert.False(t, grid[0].InMonth)
		assert.True(t, grid[6].InMonth, "June 1 is the 7th cell")
		assert.False(t, grid[37].InMonth, "July 2 spills past the month")
	})

	t.Run("today highlighted exactly once", func(t *testing.T) {
		count := 0
		for _, d := range grid {
			if d.Today {
				count++
				assert.Equal(t, today, d.Date)
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestMonthGrid_TaskPlacement(t *testing.T) {
	cursor := dates.New(2024, time.June, 1)
	today := dates.New(2024, time.June, 1)

	tasks := []task.Task{
		{ID: "own-due", DueDate: due(2024, time.June, 10)},
		{ID: "via-step", NextSteps: []task.NextStep{{Text: "call", DueDate: due(2024, time.June, 10)}}},
		{ID: "elsewhere", DueDate: due(2024, time.June, 11)},
		{ID: "undated"},
	}

	grid := MonthGrid(tasks, cursor, today, 3)

	var cell Day
	for _, d := range grid {
		if d.Date == dates.New(2024, time.June, 10) {
			cell = d
		}
	}

	assert.Equal(t, []string{"own-due", "via-step"}, ids(cell.Tasks))
	assert.Zero(t, cell.Overflow)
}

func TestMonthGrid_Overflow(t *testing.T) {
	day := due(2024, time.June, 10)
	var tasks []task.Task
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		tasks = append(tasks, task.Task{ID: id, DueDate: day})
	}

	grid := MonthGrid(tasks, dates.New(2024, time.June, 1), dates.New(2024, time.June, 1), 3)
	for _, cell := range grid {
		if cell.Date != *day {
			continue
		}
		assert.Equal(t, []string{"a", "b", "c"}, ids(cell.Tasks))
		assert.Equal(t, 2, cell.Overflow)
	}
}

func TestWeekRow(t *testing.T) {
	// 2024-06-12 is a Wednesday.
	cursor := dates.New(2024, time.June, 12)
	row := WeekRow(nil, cursor, cursor, 3)

	require.Len(t, row, DaysPerWeek)
	assert.Equal(t, dates.New(2024, time.June, 9), row[0].Date)
	assert.Equal(t, dates.New(2024, time.June, 15), row[6].Date)
}

func TestDaySlot(t *testing.T) {
	cursor := dates.New(2024, time.June, 10)
	var tasks []task.Task
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		tasks = append(tasks, task.Task{ID: id, DueDate: &cursor})
	}

	slot := DaySlot(tasks, cursor, cursor)
	assert.Len(t, slot.Tasks, 5, "day view is never capped")
	assert.Zero(t, slot.Overflow)
	assert.True(t, slot.Today)
}

func TestCursorStep(t *testing.T) {
	s := testState().WithCursor(dates.New(2024, time.June, 15))

	t.Run("month mode lands on the first of the month", func(t *testing.T) {
		assert.Equal(t, dates.New(2024, time.July, 1), s.CursorStep(1))
		assert.Equal(t, dates.New(2024, time.May, 1), s.CursorStep(-1))
	})

	t.Run("week mode moves seven days", func(t *testing.T) {
		w := s.WithMode(ModeWeek)
		assert.Equal(t, dates.New(2024, time.June, 22), w.CursorStep(1))
	})

	t.Run("day mode moves one day", func(t *testing.T) {
		d := s.WithMode(ModeDay)
		assert.Equal(t, dates.New(2024, time.June, 16), d.CursorStep(1))
	})
}
