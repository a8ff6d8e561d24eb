package board

import (
	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

// MonthGridCells is the fixed cell count of the month grid: 6 rows of 7.
const MonthGridCells = 42

// DaysPerWeek is the column count of the month grid and week row.
const DaysPerWeek = 7

// Day is one calendar cell: the tasks landing on a date, capped for
// display with an overflow count.
type Day struct {
	Date     dates.Date
	InMonth  bool
	Today    bool
	Tasks    []task.Task
	Overflow int
}

// MonthGrid builds the 42-cell month grid for the cursor's month, starting
// from the Sunday on or before the first of the month. today marks the
// highlighted cell; maxPerDay caps each cell's task list (0 = no cap).
func MonthGrid(tasks []task.Task, cursor, today dates.Date, maxPerDay int) []Day {
	start := cursor.StartOfMonth().StartOfWeek()

	grid := make([]Day, MonthGridCells)
	for i := range grid {
		d := start.AddDays(i)
		grid[i] = buildDay(tasks, d, today, maxPerDay)
		grid[i].InMonth = dates.SameMonth(d, cursor)
	}
	return grid
}

// WeekRow builds the 7 days of the week containing the cursor.
func WeekRow(tasks []task.Task, cursor, today dates.Date, maxPerDay int) []Day {
	start := cursor.StartOfWeek()

	row := make([]Day, DaysPerWeek)
	for i := range row {
		d := start.AddDays(i)
		row[i] = buildDay(tasks, d, today, maxPerDay)
		row[i].InMonth = dates.SameMonth(d, cursor)
	}
	return row
}

// DaySlot builds the single cell for the cursor date. Day view shows every
// task, so no cap is applied.
func DaySlot(tasks []task.Task, cursor, today dates.Date) Day {
	d := buildDay(tasks, cursor, today, 0)
	d.InMonth = true
	return d
}

// TasksOn returns the tasks landing on a date: those whose own due date
// equals it, or with any next step due that day.
func TasksOn(tasks []task.Task, d dates.Date) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if landsOn(t, d) {
			out = append(out, t)
		}
	}
	return out
}

func landsOn(t task.Task, d dates.Date) bool {
	if t.DueDate != nil && *t.DueDate == d {
		return true
	}
	for _, s := range t.NextSteps {
		if s.DueDate != nil && *s.DueDate == d {
			return true
		}
	}
	return false
}

func buildDay(tasks []task.Task, d, today dates.Date, maxPerDay int) Day {
	day := Day{
		Date:  d,
		Today: d == today,
		Tasks: TasksOn(tasks, d),
	}
	if maxPerDay > 0 && len(day.Tasks) > maxPerDay {
		day.Overflow = len(day.Tasks) - maxPerDay
		day.Tasks = day.Tasks[:maxPerDay]
	}
	return day
}
