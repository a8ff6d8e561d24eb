// Package task defines the task and next-step domain model for the board.
package task

import (
	"strings"
	"time"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/pkg/randid"
)

// IDLength is the length of generated task and next-step identifiers.
const IDLength = 8

// Category is one of five fixed life-domain labels. The set is closed and
// not user-extensible.
type Category string

const (
	CategoryDealership Category = "Dealership"
	CategoryFamily     Category = "Family"
	CategoryBusiness   Category = "Business"
	CategorySpiritual  Category = "Spiritual"
	CategoryPersonal   Category = "Personal"
)

// Categories lists all categories in display order. Grouping and the union
// of per-category buckets follow this order.
var Categories = []Category{
	CategoryDealership,
	CategoryFamily,
	CategoryBusiness,
	CategorySpiritual,
	CategoryPersonal,
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status represents the lifecycle state of a task. There is no enforced
// transition order; any status is reachable from any other.
type Status string

const (
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Statuses lists all statuses in display order.
var Statuses = []Status{StatusActive, StatusPending, StatusCompleted}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPending || s == StatusCompleted
}

// NextStep is a dated or undated sub-item of a task. It is owned
// exclusively by its parent and removed with it.
type NextStep struct {
	ID      string      `json:"id"`
	Text    string      `json:"text"`
	DueDate *dates.Date `json:"dueDate,omitempty"`
	Done    bool        `json:"done,omitempty"`
}

// NewNextStep creates a next step with a fresh id.
func NewNextStep(text string, due *dates.Date) NextStep {
	return NextStep{
		ID:      randid.Generate(IDLength),
		Text:    text,
		DueDate: due,
	}
}

// Task is a trackable unit of work.
type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    Category    `json:"category"`
	Status      Status      `json:"status"`
	DueDate     *dates.Date `json:"dueDate,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	NextSteps   []NextStep  `json:"nextSteps"`
}

// New returns an empty draft task with a fresh id and creation timestamp.
// The draft is not part of any store until upserted; discarding it leaves
// no trace.
func New() Task {
	return Task{
		ID:        randid.Generate(IDLength),
		Category:  CategoryPersonal,
		Status:    StatusActive,
		CreatedAt: time.Now(),
		NextSteps: []NextStep{},
	}
}

// ToggleComplete returns a copy of t with the status flipped between
// Completed and Active. Pending toggles to Completed like Active does, and
// is only reachable again through the edit form.
func (t Task) ToggleComplete() Task {
	if t.Status == StatusCompleted {
		t.Status = StatusActive
	} else {
		t.Status = StatusCompleted
	}
	return t
}

// NearestStep returns the next step chosen for summary display: the one
// with the earliest due date, ties broken by insertion order. When no step
// carries a date the first in insertion order wins. ok is false when the
// task has no next steps at all.
func (t Task) NearestStep() (step NextStep, ok bool) {
	if len(t.NextSteps) == 0 {
		return NextStep{}, false
	}

	best := -1
	for i, s := range t.NextSteps {
		if s.DueDate == nil {
			continue
		}
		if best == -1 || s.DueDate.Before(*t.NextSteps[best].DueDate) {
			best = i
		}
	}
	if best == -1 {
		return t.NextSteps[0], true
	}
	return t.NextSteps[best], true
}

// Matches reports whether the trimmed, case-folded query is a substring of
// the title, the description, or any next-step text. An empty query
// matches everything.
func (t Task) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, s := range t.NextSteps {
		if strings.Contains(strings.ToLower(s.Text), q) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of t. Stores hand out clones so callers cannot
// alias the authoritative list.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	steps := make([]NextStep, len(t.NextSteps))
	copy(steps, t.NextSteps)
	for i := range steps {
		if steps[i].DueDate != nil {
			d := *steps[i].DueDate
			steps[i].DueDate = &d
		}
	}
	t.NextSteps = steps
	return t
}
