package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

func due(y int, m time.Month, d int) *dates.Date {
	dt := dates.New(y, m, d)
	return &dt
}

func testState() State {
	return DefaultState(time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC))
}

func ids(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Title: "Order parts", Category: task.CategoryDealership, Status: task.StatusActive},
		{ID: "b", Title: "Family dinner", Category: task.CategoryFamily, Status: task.StatusPending},
		{ID: "c", Title: "Quarterly taxes", Category: task.CategoryBusiness, Status: task.StatusCompleted},
		{ID: "d", Title: "Reading plan", Category: task.CategorySpiritual, Status: task.StatusActive,
			NextSteps: []task.NextStep{{Text: "Order study guide"}}},
	}

	t.Run("default state keeps everything", func(t *testing.T) {
		assert.Len(t, Filter(tasks, testState()), 4)
	})

	t.Run("category toggle removes its bucket", func(t *testing.T) {
		s := testState().WithCategoryToggled(task.CategoryFamily)
		assert.Equal(t, []string{"a", "c", "d"}, ids(Filter(tasks, s)))
	})

	t.Run("status filter", func(t *testing.T) {
		s := testState().WithStatus(task.StatusActive)
		assert.Equal(t, []string{"a", "d"}, ids(Filter(tasks, s)))
	})

	t.Run("query reaches next-step text", func(t *testing.T) {
		s := testState().WithQuery("order")
		assert.Equal(t, []string{"a", "d"}, ids(Filter(tasks, s)))
	})

	t.Run("filters compose", func(t *testing.T) {
		s := testState().
			WithCategoryToggled(task.CategoryDealership).
			WithStatus(task.StatusActive).
			WithQuery("order")
		assert.Equal(t, []string{"d"}, ids(Filter(tasks, s)))
	})

	t.Run("idempotent", func(t *testing.T) {
		s := testState().WithStatus(task.StatusActive).WithQuery("order")
		once := Filter(tasks, s)
		twice := Filter(once, s)
		assert.Equal(t, once, twice)
	})
}

func TestSortTasks(t *testing.T) {
	created := func(day int) time.Time {
		return time.Date(2024, time.June, day, 8, 0, 0, 0, time.UTC)
	}
	tasks := []task.Task{
		{ID: "undated", CreatedAt: created(3), Category: task.CategoryPersonal},
		{ID: "late", DueDate: due(2024, time.July, 1), CreatedAt: created(1), Category: task.CategoryFamily},
		{ID: "early", DueDate: due(2024, time.June, 5), CreatedAt: created(2), Category: task.CategoryBusiness},
	}

	t.Run("due date ascending, undated last", func(t *testing.T) {
		got := SortTasks(tasks, SortDueDate)
		assert.Equal(t, []string{"early", "late", "undated"}, ids(got))
	})

	t.Run("created descending", func(t *testing.T) {
		got := SortTasks(tasks, SortCreated)
		assert.Equal(t, []string{"undated", "early", "late"}, ids(got))
	})

	t.Run("category alphabetical", func(t *testing.T) {
		got := SortTasks(tasks, SortCategory)
		assert.Equal(t, []string{"early", "late", "undated"}, ids(got))
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = SortTasks(tasks, SortDueDate)
		assert.Equal(t, []string{"undated", "late", "early"}, ids(tasks))
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		same := []task.Task{
			{ID: "first", DueDate: due(2024, time.June, 5)},
			{ID: "second", DueDate: due(2024, time.June, 5)},
		}
		assert.Equal(t, []string{"first", "second"}, ids(SortTasks(same, SortDueDate)))
	})
}

func TestGroupByCategory(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Category: task.CategoryPersonal},
		{ID: "b", Category: task.CategoryDealership},
		{ID: "c", Category: task.CategoryPersonal},
	}

	groups := GroupByCategory(tasks)
	require.Len(t, groups, 5)

	t.Run("buckets follow declaration order", func(t *testing.T) {
		for i, c := range task.Categories {
			assert.Equal(t, c, groups[i].Category)
		}
	})

	t.Run("order preserved inside buckets", func(t *testing.T) {
		assert.Equal(t, []string{"b"}, ids(groups[0].Tasks))
		assert.Equal(t, []string{"a", "c"}, ids(groups[4].Tasks))
	})

	t.Run("partition is exhaustive and disjoint", func(t *testing.T) {
		var union []string
		for _, g := range groups {
			union = append(union, ids(g.Tasks)...)
		}
		assert.ElementsMatch(t, ids(tasks), union)
	})

	t.Run("empty buckets still present", func(t *testing.T) {
		assert.Empty(t, groups[1].Tasks)
		assert.NotNil(t, groups[1].Tasks)
	})
}

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	tasks := []task.Task{
		{ID: "overdue", DueDate: due(2024, time.June, 1), Status: task.StatusActive, Category: task.CategoryBusiness},
		{ID: "today", DueDate: due(2024, time.June, 10), Status: task.StatusActive, Category: task.CategoryFamily},
		{ID: "far", DueDate: due(2024, time.June, 20), Status: task.StatusPending, Category: task.CategoryFamily},
		{ID: "done", Status: task.StatusCompleted, Category: task.CategoryPersonal},
	}

	m := ComputeMetrics(tasks, now, 3)

	assert.Equal(t, 4, m.Total)
	assert.Equal(t, 1, m.Overdue)
	assert.Equal(t, 1, m.DueSoon, "task due today is in the 3-day window, +10 days is not")
	assert.Equal(t, 3, m.Active)
	assert.Equal(t, 2, m.ByCategory[task.CategoryFamily])
	assert.Equal(t, 1, m.ByCategory[task.CategoryBusiness])
	assert.Equal(t, 0, m.ByCategory[task.CategoryDealership], "all five categories counted even when empty")
}
