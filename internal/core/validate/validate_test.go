package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldsend/tend/internal/core/task"
)

func TestTaskTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid title", "Call the bank", false},
		{"single word", "Taxes", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskTitle(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestCategory(t *testing.T) {
	for _, c := range task.Categories {
		assert.NoError(t, Category(c))
	}
	assert.Error(t, Category(task.Category("Chores")))
	assert.Error(t, Category(task.Category("")))
}

func TestStatus(t *testing.T) {
	for _, s := range task.Statuses {
		assert.NoError(t, Status(s))
	}
	assert.Error(t, Status(task.Status("Done")))
}

func TestTask(t *testing.T) {
	valid := task.Task{
		Title:    "Renew registration",
		Category: task.CategoryPersonal,
		Status:   task.StatusActive,
	}
	assert.NoError(t, Task(valid))

	t.Run("missing title", func(t *testing.T) {
		tk := valid
		tk.Title = "  "
		assert.Error(t, Task(tk))
	})

	t.Run("unknown category", func(t *testing.T) {
		tk := valid
		tk.Category = "Errands"
		assert.Error(t, Task(tk))
	})

	t.Run("unknown status", func(t *testing.T) {
		tk := valid
		tk.Status = "Paused"
		assert.Error(t, Task(tk))
	})
}
