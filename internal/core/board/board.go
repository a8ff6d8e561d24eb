// Package board derives every projection the views consume from the flat
// task list plus the current view state. All functions are pure: same
// inputs, same outputs, no retained state.
package board

import (
	"sort"
	"time"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

// noDueDateSentinel sorts tasks without a due date after every dated task.
const noDueDateSentinel = "9999"

// Filter keeps tasks whose category is active, whose status matches the
// status filter (when set), and that match the search query.
func Filter(tasks []task.Task, s State) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !s.Categories[t.Category] {
			continue
		}
		if s.Status != StatusAll && t.Status != s.Status {
			continue
		}
		if !t.Matches(s.Query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTasks returns a new, stably ordered copy of tasks.
func SortTasks(tasks []task.Task, key SortKey) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)

	switch key {
	case SortCreated:
		// Most recent first.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Category < out[j].Category
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return dueSortKey(out[i]) < dueSortKey(out[j])
		})
	}
	return out
}

func dueSortKey(t task.Task) string {
	if t.DueDate == nil {
		return noDueDateSentinel
	}
	return t.DueDate.String()
}

// Group is one category bucket of the grid view.
type Group struct {
	Category task.Category
	Tasks    []task.Task
}

// GroupByCategory partitions tasks into the five fixed category buckets in
// declaration order, preserving the incoming order inside each bucket.
// Every bucket is present even when empty.
func GroupByCategory(tasks []task.Task) []Group {
	index := make(map[task.Category]int, len(task.Categories))
	groups := make([]Group, len(task.Categories))
	for i, c := range task.Categories {
		index[c] = i
		groups[i] = Group{Category: c, Tasks: []task.Task{}}
	}

	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			continue
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// Metrics are summary counts over the unfiltered task list.
type Metrics struct {
	Total      int
	Overdue    int
	DueSoon    int
	Active     int
	ByCategory map[task.Category]int
}

// ComputeMetrics counts over the full, unfiltered list. dueSoonDays is the
// inclusive day window for the due-soon count.
func ComputeMetrics(tasks []task.Task, now time.Time, dueSoonDays int) Metrics {
	m := Metrics{
		Total:      len(tasks),
		ByCategory: make(map[task.Category]int, len(task.Categories)),
	}
	for _, c := range task.Categories {
		m.ByCategory[c] = 0
	}

	for _, t := range tasks {
		if dates.Overdue(t.DueDate, now) {
			m.Overdue++
		}
		if dates.DueWithin(t.DueDate, now, dueSoonDays) {
			m.DueSoon++
		}
		if t.Status != task.StatusCompleted {
			m.Active++
		}
		m.ByCategory[t.Category]++
	}
	return m
}
