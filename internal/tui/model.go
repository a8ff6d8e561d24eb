// Package tui implements the interactive board: grid, table, and calendar
// views over the task store, plus the edit form and modals.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldsend/tend/internal/core/board"
	"github.com/fieldsend/tend/internal/core/config"
	"github.com/fieldsend/tend/internal/core/task"
	"github.com/fieldsend/tend/internal/data/stores"
	"github.com/fieldsend/tend/internal/tui/components"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateBoard UIState = iota
	stateForm
	stateConfirmDelete
	stateHelp
)

// ViewTab identifies the three board views.
type ViewTab int

const (
	ViewGrid ViewTab = iota
	ViewTable
	ViewCalendar
)

var tabNames = []string{"Grid", "Table", "Calendar"}

// nowFn is swapped out by tests to pin the clock.
var nowFn = time.Now

// Options configures the TUI behavior.
type Options struct {
	Store  *stores.TaskStore
	Config *config.Config
	// Warning is shown in the status line on startup, e.g. after a
	// corrupt-file recovery.
	Warning string
}

// Model is the main Bubble Tea model for the board.
type Model struct {
	store  *stores.TaskStore
	cfg    *config.Config
	state  UIState
	tab    ViewTab
	vs     board.State
	search textinput.Model

	searching     bool
	selected      int
	form          *taskForm
	confirm       components.ConfirmModal
	pendingDelete string
	statusLine    string
	width         int
	height        int
	quitting      bool

	// Derived projections. Recomputed from (store, vs) after every
	// mutation or view-state change; never mutated in place.
	visible []task.Task
	groups  []board.Group
	metrics board.Metrics
}

// New builds the initial model from the store and config.
func New(opts Options) Model {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.Prompt = "/ "
	search.CharLimit = 128

	vs := board.DefaultState(nowFn())
	vs = vs.WithSort(board.SortKey(opts.Config.DefaultSort))

	m := Model{
		store:      opts.Store,
		cfg:        opts.Config,
		state:      stateBoard,
		tab:        startTab(opts.Config.DefaultView),
		vs:         vs,
		search:     search,
		statusLine: opts.Warning,
	}
	m.recompute()
	return m
}

func startTab(view string) ViewTab {
	switch view {
	case config.ViewTable:
		return ViewTable
	case config.ViewCalendar:
		return ViewCalendar
	default:
		return ViewGrid
	}
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// recompute re-derives every projection from the store snapshot and the
// current view state.
func (m *Model) recompute() {
	tasks := m.store.List()
	vs := m.vs.WithQuery(m.search.Value())

	m.vs = vs
	m.visible = board.SortTasks(board.Filter(tasks, vs), vs.Sort)
	m.groups = board.GroupByCategory(m.visible)
	m.metrics = board.ComputeMetrics(tasks, nowFn(), m.cfg.DueSoonDays)

	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectedTask returns the task under the cursor, if any.
func (m Model) selectedTask() (task.Task, bool) {
	if len(m.visible) == 0 || m.selected >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[m.selected], true
}
