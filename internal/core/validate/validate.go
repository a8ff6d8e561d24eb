// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/fieldsend/tend/internal/core/task"
)

// TaskTitle validates a task title is non-empty after trimming whitespace.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// StepText validates a next-step label is non-empty after trimming whitespace.
func StepText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// Category validates a category is one of the five known labels.
func Category(c task.Category) error {
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", string(c))
	}
	return nil
}

// Status validates a status is one of the three known states.
func Status(s task.Status) error {
	if !s.Valid() {
		return fmt.Errorf("unknown status %q", string(s))
	}
	return nil
}

// Task validates the fields the edit form guarantees before a task enters
// the store.
func Task(t task.Task) error {
	return criterio.ValidateStruct(
		criterio.Run("title", t.Title, TaskTitle),
		criterio.Run("category", string(t.Category), categoryName),
		criterio.Run("status", string(t.Status), statusName),
	)
}

func categoryName(s string) error { return Category(task.Category(s)) }
func statusName(s string) error   { return Status(task.Status(s)) }

// TaskTitleField returns a criterio field error for task titles.
func TaskTitleField(field, title string) error {
	return criterio.Run(field, title, TaskTitle)
}
