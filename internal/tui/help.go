package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

const helpMarkdown = `# tend

## Views

| Key | Action |
|-----|--------|
| tab | next view (grid, table, calendar) |
| ? | toggle this help |
| q | quit |

## Filtering & sorting

| Key | Action |
|-----|--------|
| 1-5 | toggle a category chip |
| s | cycle status filter (All, Active, Pending, Completed) |
| o | cycle sort (due date, created, category) |
| / | search; esc clears |

## Tasks

| Key | Action |
|-----|--------|
| j/k | move selection |
| a | add task |
| e / enter | edit selected task |
| d | delete selected task (with confirm) |
| x / space | toggle complete |

## Calendar

| Key | Action |
|-----|--------|
| h/l | previous / next month, week, or day |
| t | jump to today |
| m w y | month / week / day mode |
`

// renderHelp renders the keybinding reference as markdown, falling back to
// the raw text when the renderer cannot be built.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return helpMarkdown
	}

	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render help markdown")
		return helpMarkdown
	}

	return strings.TrimRight(rendered, "\n")
}
