package tasks

import (
	"time"

	"taskboard/internal/models"
)

// Seed is a task to insert with a fixed creation time.
type Seed struct {
	Task      models.NewTask
	CreatedAt time.Time
}

// DemoSeeds returns the sample tasks shown on a fresh install, dated relative to now.
func DemoSeeds(now time.Time) []Seed {
	day := 24 * time.Hour
	due := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	return []Seed{
		{
			Task: models.NewTask{
				Title:       "Complete project proposal",
				Description: "Finish writing the project proposal for the client meeting.",
				Priority:    models.PriorityHigh,
				Status:      models.StatusInProgress,
				DueDate:     due(2 * day),
				Tags:        []string{"work", "client", "urgent"},
			},
			CreatedAt: now.Add(-3 * day),
		},
		{
			Task: models.NewTask{
				Title:       "Schedule team meeting",
				Description: "Set up a weekly team sync to discuss project progress.",
				Priority:    models.PriorityMedium,
				Status:      models.StatusPending,
				Tags:        []string{"work", "team"},
			},
			CreatedAt: now.Add(-1 * day),
		},
		{
			Task: models.NewTask{
				Title:       "Buy groceries",
				Description: "Get vegetables, fruits, and household supplies.",
				Priority:    models.PriorityLow,
				Status:      models.StatusCompleted,
				Tags:        []string{"personal", "shopping"},
			},
			CreatedAt: now.Add(-2 * day),
		},
		{
			Task: models.NewTask{
				Title:       "Read design documentation",
				Description: "Go through the UI/UX design documentation for the new mobile app.",
				Priority:    models.PriorityMedium,
				Status:      models.StatusPending,
				DueDate:     due(3 * day),
				Tags:        []string{"work", "learning", "design"},
			},
			CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			Task: models.NewTask{
				Title:       "Exercise",
				Description: "Go for a 30-minute jog in the park.",
				Priority:    models.PriorityMedium,
				Status:      models.StatusPending,
				Tags:        []string{"health", "personal"},
			},
			CreatedAt: now.Add(-18 * time.Hour),
		},
		{
			Task: models.NewTask{
				Title:       "Plan weekend trip",
				Description: "Research destinations and accommodations for the weekend getaway.",
				Priority:    models.PriorityLow,
				Status:      models.StatusInProgress,
				DueDate:     due(10 * day),
				Tags:        []string{"personal", "travel", "planning"},
			},
			CreatedAt: now.Add(-4 * day),
		},
	}
}
