package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/styles"
)

const (
	colTitle    = 32
	colCategory = 12
	colStatus   = 10
	colDue      = 8
	colStep     = 28
)

// renderTable draws the flat sorted list with one row per task.
func (m Model) renderTable() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TextMutedStyle.Width(2).Render(""),
		styles.TextMutedStyle.Width(colTitle).Render("Title"),
		styles.TextMutedStyle.Width(colCategory).Render("Category"),
		styles.TextMutedStyle.Width(colStatus).Render("Status"),
		styles.TextMutedStyle.Width(colDue).Render("Due"),
		styles.TextMutedStyle.Width(colStep).Render("Next step"),
	)

	rows := []string{header}
	for i, t := range m.visible {
		step := "—"
		if s, ok := t.NearestStep(); ok {
			step = fmt.Sprintf("%s (%s)", truncate(s.Text, colStep-10), dueLabel(s.DueDate))
		}

		titleStyle := styles.TextStyle
		if t.ID != "" && i == m.selected {
			titleStyle = styles.RowSelectedStyle
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(2).Render(styles.StatusIcon(t.Status)),
			titleStyle.Width(colTitle).Render(truncate(t.Title, colTitle-1)),
			styles.CategoryStyle(t.Category).Width(colCategory).Render(string(t.Category)),
			styles.TextMutedStyle.Width(colStatus).Render(string(t.Status)),
			lipgloss.NewStyle().Width(colDue).Render(m.renderDue(t)),
			styles.TextMutedStyle.Width(colStep).Render(step),
		)
		rows = append(rows, row)
	}

	if len(m.visible) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("  No tasks match the current filters."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
