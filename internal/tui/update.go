package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/fieldsend/tend/internal/core/board"
	"github.com/fieldsend/tend/internal/core/task"
	"github.com/fieldsend/tend/internal/tui/components"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case formSubmitMsg:
		if err := m.store.Upsert(msg.task); err != nil {
			log.Error().Err(err).Str("task_id", msg.task.ID).Msg("failed to save task")
			m.statusLine = "Save failed; see log"
		} else {
			m.statusLine = ""
		}
		m.state = stateBoard
		m.form = nil
		m.recompute()
		return m, nil

	case formCancelMsg:
		m.state = stateBoard
		m.form = nil
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case stateForm:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case stateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case stateHelp:
			if s := msg.String(); s == "?" || s == "esc" || s == "q" {
				m.state = stateBoard
			}
			return m, nil
		default:
			return m.updateBoard(msg)
		}
	}

	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)

	switch {
	case m.confirm.Confirmed():
		if err := m.store.Remove(m.pendingDelete); err != nil {
			log.Error().Err(err).Str("task_id", m.pendingDelete).Msg("failed to delete task")
			m.statusLine = "Delete failed; see log"
		}
		m.pendingDelete = ""
		m.state = stateBoard
		m.recompute()
	case m.confirm.Cancelled():
		m.pendingDelete = ""
		m.state = stateBoard
	}
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.state = stateHelp
		return m, nil

	case "tab":
		m.tab = (m.tab + 1) % 3
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + 2) % 3
		return m, nil

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		m.vs = m.vs.WithCategoryToggled(task.Categories[idx])
		m.recompute()
		return m, nil

	case "s":
		m.vs = m.vs.WithStatus(nextStatusFilter(m.vs.Status))
		m.recompute()
		return m, nil

	case "o":
		m.vs = m.vs.WithSort(nextSortKey(m.vs.Sort))
		m.recompute()
		return m, nil

	case "a":
		m.form = newTaskForm(task.New(), true)
		m.state = stateForm
		return m, m.form.applyFocus()

	case "e", "enter":
		if m.tab == ViewCalendar {
			if msg.String() == "enter" {
				m.vs = m.vs.WithMode(board.ModeDay)
				return m, nil
			}
		}
		if t, ok := m.selectedTask(); ok {
			m.form = newTaskForm(t, false)
			m.state = stateForm
			return m, m.form.applyFocus()
		}
		return m, nil

	case "d":
		if m.tab == ViewCalendar {
			// No visible selection in the calendar; delete from grid or table.
			return m, nil
		}
		if t, ok := m.selectedTask(); ok {
			m.pendingDelete = t.ID
			m.confirm = components.NewConfirmModal("Delete \"" + t.Title + "\" and its next steps?")
			m.state = stateConfirmDelete
		}
		return m, nil

	case "x", " ":
		if t, ok := m.selectedTask(); ok {
			if err := m.store.ToggleComplete(t.ID); err != nil {
				log.Error().Err(err).Str("task_id", t.ID).Msg("failed to toggle task")
				m.statusLine = "Toggle failed; see log"
			}
			m.recompute()
		}
		return m, nil

	case "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return m, nil
	case "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	}

	if m.tab == ViewCalendar {
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.recompute()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.recompute()
	return m, cmd
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.vs = m.vs.WithCursor(m.vs.CursorStep(-1))
	case "l", "right":
		m.vs = m.vs.WithCursor(m.vs.CursorStep(1))
	case "t":
		m.vs = m.vs.WithCursor(board.DefaultState(nowFn()).Cursor)
	case "m":
		m.vs = m.vs.WithMode(board.ModeMonth)
	case "w":
		m.vs = m.vs.WithMode(board.ModeWeek)
	case "y":
		m.vs = m.vs.WithMode(board.ModeDay)
	}
	return m, nil
}

func nextStatusFilter(s task.Status) task.Status {
	switch s {
	case board.StatusAll:
		return task.StatusActive
	case task.StatusActive:
		return task.StatusPending
	case task.StatusPending:
		return task.StatusCompleted
	default:
		return board.StatusAll
	}
}

func nextSortKey(k board.SortKey) board.SortKey {
	for i, key := range board.SortKeys {
		if key == k {
			return board.SortKeys[(i+1)%len(board.SortKeys)]
		}
	}
	return board.SortKeys[0]
}
