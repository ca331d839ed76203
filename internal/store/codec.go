package store

import (
	"encoding/json"
	"fmt"
	"time"

	"taskboard/internal/models"
)

// taskRecord is the stored shape of a task. Timestamps are kept as RFC 3339
// strings so the blob stays readable and independent of Go's time encoding.
type taskRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags"`
}

// EncodeTasks serializes the collection in order.
func EncodeTasks(tasks []models.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		rec := taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
			Tags:        t.Tags,
		}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		if t.DueDate != nil {
			rec.DueDate = t.DueDate.UTC().Format(time.RFC3339Nano)
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses a blob written by EncodeTasks. Any malformed record,
// unknown enum value, bad timestamp or duplicate id fails the whole blob.
func DecodeTasks(data []byte) ([]models.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("task %d: missing id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("task %d: duplicate id %s", i, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("task %s: invalid createdAt: %w", rec.ID, err)
		}

		task := models.Task{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Priority:    models.Priority(rec.Priority),
			Status:      models.Status(rec.Status),
			CreatedAt:   createdAt,
			Tags:        rec.Tags,
		}
		if task.Tags == nil {
			task.Tags = []string{}
		}
		if rec.DueDate != "" {
			due, err := time.Parse(time.RFC3339Nano, rec.DueDate)
			if err != nil {
				return nil, fmt.Errorf("task %s: invalid dueDate: %w", rec.ID, err)
			}
			task.DueDate = &due
		}
		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("task %s: %w", rec.ID, err)
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}
