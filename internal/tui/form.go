package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldsend/tend/internal/core/styles"
	"github.com/fieldsend/tend/internal/core/task"
	"github.com/fieldsend/tend/internal/core/validate"
	"github.com/fieldsend/tend/internal/tui/components/form"
)

// formSubmitMsg carries the finished task back to the board model.
type formSubmitMsg struct {
	task task.Task
}

// formCancelMsg discards the draft.
type formCancelMsg struct{}

// stepRow is one editable next-step line: label plus optional date.
type stepRow struct {
	id   string
	done bool
	text *form.TextField
	date *form.DateField
}

// taskForm edits a task wholesale: submitting replaces the task in the
// store, cancelling leaves no trace. The same form serves create and edit;
// create pre-populates a fresh id and timestamp via task.New.
type taskForm struct {
	draft    task.Task
	title    *form.TextField
	desc     *form.TextAreaField
	category *form.SelectField
	status   *form.SelectField
	due      *form.DateField
	steps    []stepRow
	focus    int
	errMsg   string
	isNew    bool
}

func newTaskForm(t task.Task, isNew bool) *taskForm {
	f := &taskForm{
		draft:    t,
		title:    form.NewTextField("Title", "What needs doing?", t.Title),
		desc:     form.NewTextAreaField("Description", "Optional details", t.Description),
		category: form.NewSelectField("Category", categoryOptions(), string(t.Category)),
		status:   form.NewSelectField("Status", statusOptions(), string(t.Status)),
		due:      form.NewDateField("Due date", t.DueDate),
		isNew:    isNew,
	}

	for _, s := range t.NextSteps {
		f.steps = append(f.steps, stepRow{
			id:   s.ID,
			done: s.Done,
			text: form.NewTextField("Next step", "Step", s.Text),
			date: form.NewDateField("Step due", s.DueDate),
		})
	}

	f.applyFocus()
	return f
}

func categoryOptions() []string {
	opts := make([]string, len(task.Categories))
	for i, c := range task.Categories {
		opts[i] = string(c)
	}
	return opts
}

func statusOptions() []string {
	opts := make([]string, len(task.Statuses))
	for i, s := range task.Statuses {
		opts[i] = string(s)
	}
	return opts
}

// fields returns every focusable in visual order.
func (f *taskForm) fields() []form.Field {
	out := []form.Field{f.title, f.desc, f.category, f.status, f.due}
	for _, s := range f.steps {
		out = append(out, s.text, s.date)
	}
	return out
}

func (f *taskForm) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i, field := range f.fields() {
		if i == f.focus {
			cmd = field.Focus()
		} else {
			field.Blur()
		}
	}
	return cmd
}

// stepIndex returns which step row the focus is on, or -1 when focus is on
// a scalar field.
func (f *taskForm) stepIndex() int {
	scalars := 5
	if f.focus < scalars {
		return -1
	}
	return (f.focus - scalars) / 2
}

func (f *taskForm) Update(msg tea.Msg) (*taskForm, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return f, func() tea.Msg { return formCancelMsg{} }
		case "tab", "down":
			if _, isArea := f.fields()[f.focus].(*form.TextAreaField); isArea && keyMsg.String() == "down" {
				break
			}
			f.focus = (f.focus + 1) % len(f.fields())
			return f, f.applyFocus()
		case "shift+tab", "up":
			if _, isArea := f.fields()[f.focus].(*form.TextAreaField); isArea && keyMsg.String() == "up" {
				break
			}
			f.focus = (f.focus - 1 + len(f.fields())) % len(f.fields())
			return f, f.applyFocus()
		case "ctrl+n":
			f.steps = append(f.steps, stepRow{
				text: form.NewTextField("Next step", "Step", ""),
				date: form.NewDateField("Step due", nil),
			})
			f.focus = len(f.fields()) - 2
			return f, f.applyFocus()
		case "ctrl+d":
			if i := f.stepIndex(); i >= 0 {
				f.steps = append(f.steps[:i], f.steps[i+1:]...)
				if f.focus >= len(f.fields()) {
					f.focus = len(f.fields()) - 1
				}
				return f, f.applyFocus()
			}
		case "ctrl+s", "enter":
			if _, isArea := f.fields()[f.focus].(*form.TextAreaField); isArea && keyMsg.String() == "enter" {
				break
			}
			return f.submit()
		}
	}

	fields := f.fields()
	updated, cmd := fields[f.focus].Update(msg)
	f.storeField(f.focus, updated)
	return f, cmd
}

// storeField writes an updated field back to its slot.
func (f *taskForm) storeField(i int, field form.Field) {
	switch i {
	case 0:
		f.title = field.(*form.TextField)
	case 1:
		f.desc = field.(*form.TextAreaField)
	case 2:
		f.category = field.(*form.SelectField)
	case 3:
		f.status = field.(*form.SelectField)
	case 4:
		f.due = field.(*form.DateField)
	default:
		step := (i - 5) / 2
		if (i-5)%2 == 0 {
			f.steps[step].text = field.(*form.TextField)
		} else {
			f.steps[step].date = field.(*form.DateField)
		}
	}
}

func (f *taskForm) submit() (*taskForm, tea.Cmd) {
	title := strings.TrimSpace(f.title.Value())
	if err := validate.TaskTitleField("title", title); err != nil {
		f.errMsg = "Title is required"
		return f, nil
	}

	due, err := f.due.Value()
	if err != nil {
		f.errMsg = "Due date must be YYYY-MM-DD"
		return f, nil
	}

	t := task.Task{
		ID:          f.draft.ID,
		Title:       title,
		Description: strings.TrimSpace(f.desc.Value()),
		Category:    task.Category(f.category.Value()),
		Status:      task.Status(f.status.Value()),
		DueDate:     due,
		CreatedAt:   f.draft.CreatedAt,
		NextSteps:   []task.NextStep{},
	}

	for _, row := range f.steps {
		text := strings.TrimSpace(row.text.Value())
		if text == "" {
			continue
		}
		stepDue, err := row.date.Value()
		if err != nil {
			f.errMsg = "Step dates must be YYYY-MM-DD"
			return f, nil
		}

		step := task.NextStep{ID: row.id, Text: text, DueDate: stepDue, Done: row.done}
		if step.ID == "" {
			step = task.NewNextStep(text, stepDue)
			step.Done = row.done
		}
		t.NextSteps = append(t.NextSteps, step)
	}

	f.errMsg = ""
	return f, func() tea.Msg { return formSubmitMsg{task: t} }
}

func (f *taskForm) View() string {
	heading := "Edit task"
	if f.isNew {
		heading = "New task"
	}

	sections := []string{
		styles.TitleStyle.Render(heading),
		f.title.View(),
		f.desc.View(),
		f.category.View(),
		f.status.View(),
		f.due.View(),
	}

	for _, s := range f.steps {
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, s.text.View(), s.date.View()))
	}

	if f.errMsg != "" {
		sections = append(sections, styles.FormErrorStyle.Render(f.errMsg))
	}

	sections = append(sections, styles.FormHelpStyle.Render(
		"tab next · ctrl+n add step · ctrl+d remove step · enter save · esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
