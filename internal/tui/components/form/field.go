// Package form provides the focusable field framework used by the task
// edit form.
package form

import tea "github.com/charmbracelet/bubbletea"

// Field is a single focusable input in a form.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Label() string
}
