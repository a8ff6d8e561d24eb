package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/styles"
)

// SelectField is a single-choice form field cycled with the arrow keys.
type SelectField struct {
	label   string
	options []string
	index   int
	focused bool
}

// NewSelectField creates a select field. defaultVal selects the matching
// option when present.
func NewSelectField(label string, options []string, defaultVal string) *SelectField {
	index := 0
	for i, opt := range options {
		if opt == defaultVal {
			index = i
			break
		}
	}

	return &SelectField{
		label:   label,
		options: options,
		index:   index,
	}
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		f.index = (f.index - 1 + len(f.options)) % len(f.options)
	case "right", "l", " ":
		f.index = (f.index + 1) % len(f.options)
	}
	return f, nil
}

func (f *SelectField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	var opts []string
	for i, opt := range f.options {
		if i == f.index {
			opts = append(opts, styles.ModalButtonSelectedStyle.Render(opt))
		} else {
			opts = append(opts, styles.ModalButtonStyle.Render(opt))
		}
	}
	row := strings.Join(opts, " ")

	content := lipgloss.JoinVertical(lipgloss.Left, title, row)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() { f.focused = false }

func (f *SelectField) Focused() bool { return f.focused }
func (f *SelectField) Label() string { return f.label }

// Value returns the selected option.
func (f *SelectField) Value() string { return f.options[f.index] }
