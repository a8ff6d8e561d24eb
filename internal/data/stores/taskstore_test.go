package stores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

func newStore(t *testing.T) *TaskStore {
	t.Helper()
	s, err := NewTaskStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Load())
	require.NoError(t, s.Replace(nil))
	return s
}

func mkTask(id, title string) task.Task {
	return task.Task{
		ID:        id,
		Title:     title,
		Category:  task.CategoryPersonal,
		Status:    task.StatusActive,
		CreatedAt: time.Now(),
		NextSteps: []task.NextStep{},
	}
}

func TestTaskStore_Load(t *testing.T) {
	t.Run("missing file seeds", func(t *testing.T) {
		s, err := NewTaskStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Load())

		tasks := s.List()
		require.Len(t, tasks, 5)

		seen := map[task.Category]bool{}
		for _, tk := range tasks {
			seen[tk.Category] = true
		}
		assert.Len(t, seen, 5, "seed spans all five categories")
	})

	t.Run("corrupt file seeds and reports", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))

		s, err := NewTaskStore(dir)
		require.NoError(t, err)

		err = s.Load()
		require.Error(t, err)
		assert.True(t, IsCorruptError(err))
		assert.Len(t, s.List(), 5, "store still usable with seed data")
	})

	t.Run("existing file round-trips", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewTaskStore(dir)
		require.NoError(t, err)
		require.NoError(t, s.Load())

		due := dates.New(2024, time.June, 10)
		tk := mkTask("t1", "Call dentist")
		tk.DueDate = &due
		tk.NextSteps = []task.NextStep{{ID: "s1", Text: "Find number", DueDate: &due}}
		require.NoError(t, s.Replace([]task.Task{tk}))

		reopened, err := NewTaskStore(dir)
		require.NoError(t, err)
		require.NoError(t, reopened.Load())

		got := reopened.List()
		require.Len(t, got, 1)
		assert.Equal(t, "Call dentist", got[0].Title)
		assert.Equal(t, due, *got[0].DueDate)
		require.Len(t, got[0].NextSteps, 1)
		assert.Equal(t, "Find number", got[0].NextSteps[0].Text)
	})
}

func TestTaskStore_Upsert(t *testing.T) {
	t.Run("new tasks prepend", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Upsert(mkTask("a", "first")))
		require.NoError(t, s.Upsert(mkTask("b", "second")))

		tasks := s.List()
		require.Len(t, tasks, 2)
		assert.Equal(t, "b", tasks[0].ID, "newest task goes to the front")
		assert.Equal(t, "a", tasks[1].ID)
	})

	t.Run("existing id replaces in place", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Upsert(mkTask("a", "first")))
		require.NoError(t, s.Upsert(mkTask("b", "second")))

		edited := mkTask("a", "first, edited")
		require.NoError(t, s.Upsert(edited))

		tasks := s.List()
		require.Len(t, tasks, 2)
		assert.Equal(t, "a", tasks[1].ID, "position preserved on replace")
		assert.Equal(t, "first, edited", tasks[1].Title)
	})

	t.Run("mutation persists immediately", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewTaskStore(dir)
		require.NoError(t, err)
		require.NoError(t, s.Load())
		require.NoError(t, s.Replace(nil))

		require.NoError(t, s.Upsert(mkTask("a", "first")))

		data, err := os.ReadFile(filepath.Join(dir, FileName))
		require.NoError(t, err)

		var onDisk []task.Task
		require.NoError(t, json.Unmarshal(data, &onDisk))
		require.Len(t, onDisk, 1)
		assert.Equal(t, "a", onDisk[0].ID)
	})
}

func TestTaskStore_Remove(t *testing.T) {
	s := newStore(t)
	tk := mkTask("a", "with steps")
	tk.NextSteps = []task.NextStep{{ID: "s1", Text: "step"}}
	require.NoError(t, s.Upsert(tk))
	require.NoError(t, s.Upsert(mkTask("b", "other")))

	t.Run("removes exactly the task and its steps", func(t *testing.T) {
		require.NoError(t, s.Remove("a"))

		tasks := s.List()
		require.Len(t, tasks, 1)
		assert.Equal(t, "b", tasks[0].ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := s.List()
		require.NoError(t, s.Remove("nope"))
		assert.Equal(t, before, s.List())
	})
}

func TestTaskStore_ToggleComplete(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Upsert(mkTask("a", "task")))

	require.NoError(t, s.ToggleComplete("a"))
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, task.StatusCompleted, got.Status)

	require.NoError(t, s.ToggleComplete("a"))
	got, _ = s.Get("a")
	assert.Equal(t, task.StatusActive, got.Status, "second toggle yields Active, not Pending")

	t.Run("unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, s.ToggleComplete("nope"))
	})
}

func TestTaskStore_Replace(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Upsert(mkTask("old", "gone after import")))

	imported := []task.Task{mkTask("n1", "one"), mkTask("n2", "two")}
	require.NoError(t, s.Replace(imported))

	tasks := s.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, "n1", tasks[0].ID)
	assert.Equal(t, "n2", tasks[1].ID)
}

func TestTaskStore_ExportImportRoundTrip(t *testing.T) {
	s := newStore(t)
	due := dates.New(2024, time.June, 10)
	tk := mkTask("a", "round trip")
	tk.Description = "with everything set"
	tk.DueDate = &due
	tk.NextSteps = []task.NextStep{
		{ID: "s1", Text: "dated", DueDate: &due, Done: true},
		{ID: "s2", Text: "undated"},
	}
	require.NoError(t, s.Upsert(tk))

	original := s.List()

	// Export to JSON and import into a fresh store.
	data, err := json.MarshalIndent(original, "", "  ")
	require.NoError(t, err)

	var decoded []task.Task
	require.NoError(t, json.Unmarshal(data, &decoded))

	other := newStore(t)
	require.NoError(t, other.Replace(decoded))

	roundTripped := other.List()
	require.Len(t, roundTripped, 1)
	assert.Equal(t, original[0].ID, roundTripped[0].ID)
	assert.Equal(t, original[0].NextSteps, roundTripped[0].NextSteps)
	assert.Equal(t, *original[0].DueDate, *roundTripped[0].DueDate)
	assert.True(t, original[0].CreatedAt.Equal(roundTripped[0].CreatedAt))
}

func TestTaskStore_ListIsACopy(t *testing.T) {
	s := newStore(t)
	tk := mkTask("a", "guarded")
	tk.NextSteps = []task.NextStep{{ID: "s1", Text: "original"}}
	require.NoError(t, s.Upsert(tk))

	leaked := s.List()
	leaked[0].NextSteps[0].Text = "mutated"

	got, _ := s.Get("a")
	assert.Equal(t, "original", got.NextSteps[0].Text)
}
