package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/styles"
)

// DateField is an optional calendar-date input. Empty means no date.
type DateField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewDateField creates a date field pre-filled with the given date, which
// may be nil.
func NewDateField(label string, defaultVal *dates.Date) *DateField {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.Prompt = ""
	ti.Width = 12
	ti.CharLimit = 10

	if defaultVal != nil {
		ti.SetValue(defaultVal.String())
	}

	return &DateField{
		input: ti,
		label: label,
	}
}

func (f *DateField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *DateField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	line := f.input.View()
	if _, err := f.Value(); err != nil {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", styles.FormErrorStyle.Render("invalid date"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, line)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *DateField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *DateField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *DateField) Focused() bool { return f.focused }
func (f *DateField) Label() string { return f.label }

// Value parses the entered date. A blank input returns (nil, nil).
func (f *DateField) Value() (*dates.Date, error) {
	raw := strings.TrimSpace(f.input.Value())
	if raw == "" {
		return nil, nil
	}
	d, err := dates.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
