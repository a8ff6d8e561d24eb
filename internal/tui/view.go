package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/board"
	"github.com/fieldsend/tend/internal/core/styles"
	"github.com/fieldsend/tend/internal/core/task"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateForm:
		return m.overlay(m.form.View())
	case stateConfirmDelete:
		return m.overlay(m.confirm.View())
	case stateHelp:
		return m.overlay(renderHelp(m.width - 4))
	}

	var body string
	switch m.tab {
	case ViewTable:
		body = m.renderTable()
	case ViewCalendar:
		body = m.renderCalendar()
	default:
		body = m.renderGrid()
	}

	sections := []string{
		m.renderTabs(),
		m.renderMetrics(),
		m.renderFilters(),
		body,
	}
	if m.statusLine != "" {
		sections = append(sections, styles.WarningStyle.Render(m.statusLine))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) overlay(content string) string {
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if ViewTab(i) == m.tab {
			tabs = append(tabs, styles.TabSelectedStyle.Render(name))
		} else {
			tabs = append(tabs, styles.TabNormalStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderMetrics() string {
	parts := []string{
		styles.TextStyle.Render(fmt.Sprintf("%d tasks", m.metrics.Total)),
		styles.OverdueStyle.Render(fmt.Sprintf("%d overdue", m.metrics.Overdue)),
		styles.DueSoonStyle.Render(fmt.Sprintf("%d due soon", m.metrics.DueSoon)),
		styles.TextStyle.Render(fmt.Sprintf("%d active", m.metrics.Active)),
	}
	return styles.TextMutedStyle.Render(" ") + strings.Join(parts, styles.TextMutedStyle.Render(" · "))
}

func (m Model) renderFilters() string {
	var chips []string
	for i, c := range task.Categories {
		label := fmt.Sprintf("%d %s %d", i+1, c, m.metrics.ByCategory[c])
		if m.vs.Categories[c] {
			chips = append(chips, styles.ChipActiveStyle.Render(label))
		} else {
			chips = append(chips, styles.ChipInactiveStyle.Render(label))
		}
	}

	status := "All"
	if m.vs.Status != board.StatusAll {
		status = string(m.vs.Status)
	}
	chips = append(chips,
		styles.TextMutedStyle.Render("status:"+status),
		styles.TextMutedStyle.Render("sort:"+string(m.vs.Sort)),
	)

	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if m.searching || m.search.Value() != "" {
		row = lipgloss.JoinVertical(lipgloss.Left, row, m.search.View())
	}
	return row
}

func (m Model) renderFooter() string {
	hints := "a add · e edit · d delete · x done · / search · ? help · q quit"
	if m.tab == ViewCalendar {
		hints = "h/l navigate · t today · m/w/y mode · a add · ? help · q quit"
	}
	return styles.HelpDescStyle.Render(hints)
}

// taskLine renders the one-line summary used by grid cards and day lists.
func (m Model) taskLine(t task.Task, selected bool) string {
	title := t.Title
	if t.Status == task.StatusCompleted {
		title = styles.CompletedStyle.Render(title)
	} else if selected {
		title = styles.RowSelectedStyle.Render(title)
	} else {
		title = styles.TextStyle.Render(title)
	}

	line := styles.StatusIcon(t.Status) + " " + title + " " + m.renderDue(t)

	if step, ok := t.NearestStep(); ok {
		line += "\n" + styles.TextMutedStyle.Render("  ↳ "+step.Text+" "+dueLabel(step.DueDate))
	}
	return line
}

func (m Model) renderDue(t task.Task) string {
	label := dueLabel(t.DueDate)
	switch {
	case isOverdue(t.DueDate):
		return styles.OverdueStyle.Render(label)
	case isDueSoon(t.DueDate, m.cfg.DueSoonDays):
		return styles.DueSoonStyle.Render(label)
	default:
		return styles.TextMutedStyle.Render(label)
	}
}
