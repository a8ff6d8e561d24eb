// Package stores persists the task list as a single JSON file under the
// data directory. The whole list is rewritten after every mutation; at
// this data scale that is cheaper than being clever.
package stores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fieldsend/tend/internal/core/task"
)

// FileName is the task file name inside the data directory.
const FileName = "tasks.json"

// TaskStore holds the authoritative in-memory task list backed by a JSON
// file. All operations are safe for concurrent use, though the TUI is the
// only writer in practice.
type TaskStore struct {
	mu    sync.RWMutex
	path  string
	tasks []task.Task
}

// NewTaskStore creates a store rooted at dataDir. Call Load before use.
func NewTaskStore(dataDir string) (*TaskStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &TaskStore{path: filepath.Join(dataDir, FileName)}, nil
}

// Load reads the task file. A missing file seeds the store with the fixed
// example tasks. An unparsable file also seeds, but returns an error
// wrapping ErrCorrupt so the caller can log it; the previous file contents
// are preserved on disk until the next mutation.
func (s *TaskStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.tasks = SeedTasks()
			return nil
		}
		return fmt.Errorf("read task file: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.tasks = SeedTasks()
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	s.tasks = tasks
	return nil
}

// List returns a deep copy of the task list in insertion order.
func (s *TaskStore) List() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return task.Task{}, false
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Upsert replaces the task with the same id in place, or prepends it when
// new. The list is written to disk before returning.
func (s *TaskStore) Upsert(t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		s.tasks = append([]task.Task{t.Clone()}, s.tasks...)
	}
	return s.save()
}

// Remove deletes the task with the given id along with its next steps.
// Removing an unknown id is a no-op, not an error.
func (s *TaskStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// ToggleComplete flips the status of the task with the given id between
// Completed and Active. Unknown ids are a no-op.
func (s *TaskStore) ToggleComplete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = s.tasks[i].ToggleComplete()
			return s.save()
		}
	}
	return nil
}

// Replace overwrites the entire task list. This is the import path: no
// merge, no per-task reconciliation.
func (s *TaskStore) Replace(tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]task.Task, len(tasks))
	for i, t := range tasks {
		s.tasks[i] = t.Clone()
	}
	return s.save()
}

// save writes the full list atomically. Callers must hold the write lock.
func (s *TaskStore) save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}
