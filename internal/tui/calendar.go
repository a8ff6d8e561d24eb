package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/board"
	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/styles"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// renderCalendar draws the month grid, week row, or single day for the
// cursor date. Day placement uses the filtered task list, so category and
// status filters apply here too.
func (m Model) renderCalendar() string {
	today := dates.Of(nowFn())

	heading := styles.TitleStyle.Render(m.calendarHeading())

	var body string
	switch m.vs.Mode {
	case board.ModeWeek:
		body = m.renderWeek(today)
	case board.ModeDay:
		body = m.renderDay(today)
	default:
		body = m.renderMonth(today)
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, body)
}

func (m Model) calendarHeading() string {
	c := m.vs.Cursor
	switch m.vs.Mode {
	case board.ModeDay:
		return c.In(time.UTC).Format("Monday, January 2, 2006")
	case board.ModeWeek:
		start := c.StartOfWeek()
		end := start.AddDays(6)
		return fmt.Sprintf("Week of %s – %s", start.In(time.UTC).Format("Jan 2"), end.In(time.UTC).Format("Jan 2, 2006"))
	default:
		return c.In(time.UTC).Format("January 2006")
	}
}

func (m Model) renderMonth(today dates.Date) string {
	grid := board.MonthGrid(m.visible, m.vs.Cursor, today, m.cfg.CalendarMaxPerDay)

	cellWidth := 14
	if m.width > 0 {
		if w := m.width/board.DaysPerWeek - 2; w > 10 {
			cellWidth = w
		}
	}

	var header []string
	for _, name := range weekdayHeaders {
		header = append(header, styles.TextMutedStyle.Width(cellWidth+2).Render(name))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for week := 0; week < board.MonthGridCells/board.DaysPerWeek; week++ {
		var cells []string
		for i := 0; i < board.DaysPerWeek; i++ {
			cells = append(cells, m.renderCell(grid[week*board.DaysPerWeek+i], cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(day board.Day, width int) string {
	num := fmt.Sprintf("%d", day.Date.Day)
	switch {
	case day.Today:
		num = styles.TitleStyle.Render(num)
	case !day.InMonth:
		num = styles.CalendarOutsideStyle.Render(num)
	default:
		num = styles.TextStyle.Render(num)
	}

	lines := []string{num}
	for _, t := range day.Tasks {
		lines = append(lines, styles.CategoryStyle(t.Category).Render(truncate(t.Title, width)))
	}
	if day.Overflow > 0 {
		lines = append(lines, styles.TextMutedStyle.Render(fmt.Sprintf("+%d more", day.Overflow)))
	}

	cell := styles.CalendarDayStyle
	if day.Today {
		cell = styles.CalendarTodayStyle
	}
	return cell.Width(width).Height(m.cfg.CalendarMaxPerDay + 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderWeek(today dates.Date) string {
	row := board.WeekRow(m.visible, m.vs.Cursor, today, m.cfg.CalendarMaxPerDay)

	var days []string
	for _, day := range row {
		name := day.Date.In(time.UTC).Format("Mon 2")
		header := styles.TextMutedStyle.Render(name)
		if day.Today {
			header = styles.TitleStyle.Render(name)
		}

		lines := []string{header}
		for _, t := range day.Tasks {
			lines = append(lines, m.taskLine(t, false))
		}
		if day.Overflow > 0 {
			lines = append(lines, styles.TextMutedStyle.Render(fmt.Sprintf("+%d more", day.Overflow)))
		}
		if len(day.Tasks) == 0 {
			lines = append(lines, styles.TextMutedStyle.Render("—"))
		}

		days = append(days, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, days...)
}

func (m Model) renderDay(today dates.Date) string {
	slot := board.DaySlot(m.visible, m.vs.Cursor, today)

	if len(slot.Tasks) == 0 {
		return styles.TextMutedStyle.Render("Nothing due this day.")
	}

	var lines []string
	for _, t := range slot.Tasks {
		lines = append(lines, m.taskLine(t, false))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
