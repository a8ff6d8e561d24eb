package stores

import (
	"time"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/task"
)

// SeedTasks returns the fixed example tasks used on first run, one per
// category so every part of the board has something to show.
func SeedTasks() []task.Task {
	now := time.Now()
	today := dates.Of(now)

	in := func(days int) *dates.Date {
		d := today.AddDays(days)
		return &d
	}

	return []task.Task{
		{
			ID:          "seed-dealership",
			Title:       "Follow up with the Hendersons",
			Description: "They test drove the blue SUV on Saturday",
			Category:    task.CategoryDealership,
			Status:      task.StatusActive,
			DueDate:     in(1),
			CreatedAt:   now,
			NextSteps: []task.NextStep{
				{ID: "seed-dealership-1", Text: "Prepare trade-in numbers", DueDate: in(1)},
				{ID: "seed-dealership-2", Text: "Schedule second test drive"},
			},
		},
		{
			ID:        "seed-family",
			Title:     "Plan the anniversary dinner",
			Category:  task.CategoryFamily,
			Status:    task.StatusActive,
			DueDate:   in(5),
			CreatedAt: now,
			NextSteps: []task.NextStep{
				{ID: "seed-family-1", Text: "Book a table", DueDate: in(2)},
			},
		},
		{
			ID:          "seed-business",
			Title:       "Review quarterly numbers",
			Description: "Q2 close-out with the accountant",
			Category:    task.CategoryBusiness,
			Status:      task.StatusPending,
			DueDate:     in(7),
			CreatedAt:   now,
			NextSteps:   []task.NextStep{},
		},
		{
			ID:        "seed-spiritual",
			Title:     "Morning reading plan",
			Category:  task.CategorySpiritual,
			Status:    task.StatusActive,
			CreatedAt: now,
			NextSteps: []task.NextStep{
				{ID: "seed-spiritual-1", Text: "Pick the next book"},
			},
		},
		{
			ID:        "seed-personal",
			Title:     "Renew gym membership",
			Category:  task.CategoryPersonal,
			Status:    task.StatusCompleted,
			CreatedAt: now,
			NextSteps: []task.NextStep{},
		},
	}
}
