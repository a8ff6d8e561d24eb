// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/task"
)

// Tokyo Night palette.
var (
	ColorPrimary    = lipgloss.Color("#7aa2f7")
	ColorSecondary  = lipgloss.Color("#7dcfff")
	ColorForeground = lipgloss.Color("#c0caf5")
	ColorMuted      = lipgloss.Color("#565f89")
	ColorSurface    = lipgloss.Color("#292e42")
	ColorBackground = lipgloss.Color("#1a1b26")
	ColorSuccess    = lipgloss.Color("#9ece6a")
	ColorWarning    = lipgloss.Color("#e0af68")
	ColorError      = lipgloss.Color("#f7768e")
	ColorPurple     = lipgloss.Color("#bb9af7")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TextStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)

	// View tab bar.
	TabSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Padding(0, 1)
	TabNormalStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	// Filter chips.
	ChipActiveStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorSurface).
			Foreground(ColorForeground)
	ChipInactiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(ColorMuted).
				Strikethrough(true)

	// Task cards and rows.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurface).
			Padding(0, 1)
	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
	RowSelectedStyle = lipgloss.NewStyle().
				Background(ColorSurface).
				Foreground(ColorForeground)

	OverdueStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	DueSoonStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	CompletedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Strikethrough(true)

	// Calendar cells.
	CalendarDayStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorSurface)
	CalendarTodayStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary)
	CalendarOutsideStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// Modals.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground)
	ModalButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorSurface).
				Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
					Padding(0, 1).
					Background(ColorPrimary).
					Foreground(ColorBackground).
					Bold(true)

	// Form fields.
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorMuted).
			PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(ColorPrimary).
				PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	FormHelpStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// categoryColors gives each life domain a stable accent color.
var categoryColors = map[task.Category]lipgloss.Color{
	task.CategoryDealership: ColorPrimary,
	task.CategoryFamily:     ColorSuccess,
	task.CategoryBusiness:   ColorWarning,
	task.CategorySpiritual:  ColorPurple,
	task.CategoryPersonal:   ColorSecondary,
}

// CategoryStyle returns the accent style for a category label.
func CategoryStyle(c task.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		color = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// StatusIcon returns the single-glyph marker shown next to a task.
func StatusIcon(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return SuccessStyle.Render("✓")
	case task.StatusPending:
		return WarningStyle.Render("◌")
	default:
		return TextStyle.Render("○")
	}
}

// FormTheme returns the huh theme used by interactive CLI forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorPrimary)
	return t
}
