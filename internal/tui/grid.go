package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/styles"
)

// renderGrid draws the five category columns, one card per task, in the
// filtered and sorted order.
func (m Model) renderGrid() string {
	colWidth := 28
	if m.width > 0 {
		if w := m.width/len(m.groups) - 2; w > 20 {
			colWidth = w
		}
	}

	selectedID := ""
	if t, ok := m.selectedTask(); ok {
		selectedID = t.ID
	}

	var cols []string
	for _, g := range m.groups {
		header := styles.CategoryStyle(g.Category).Render(
			fmt.Sprintf("%s (%d)", g.Category, len(g.Tasks)))

		cards := []string{header}
		for _, t := range g.Tasks {
			card := styles.CardStyle
			if t.ID == selectedID {
				card = styles.CardSelectedStyle
			}
			cards = append(cards, card.Width(colWidth).Render(m.taskLine(t, t.ID == selectedID)))
		}
		if len(g.Tasks) == 0 {
			cards = append(cards, styles.TextMutedStyle.Render("  —"))
		}

		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, cards...))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
