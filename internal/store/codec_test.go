package store

import (
	"strings"
	"testing"
	"time"

	"taskboard/internal/models"
)

func sampleTasks() []models.Task {
	created := time.Date(2026, 4, 2, 8, 30, 15, 123000000, time.UTC)
	due := created.Add(72 * time.Hour)
	return []models.Task{
		{
			ID:          "b",
			Title:       "Complete project proposal",
			Description: "Finish writing the proposal.",
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			CreatedAt:   created,
			DueDate:     &due,
			Tags:        []string{"work", "client", "work"},
		},
		{
			ID:        "a",
			Title:     "",
			Priority:  models.PriorityLow,
			Status:    models.StatusCompleted,
			CreatedAt: created.Add(-time.Hour),
			Tags:      []string{},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := sampleTasks()

	data, err := EncodeTasks(orig)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	got, err := DecodeTasks(data)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}

	if len(got) != len(orig) {
		t.Fatalf("expected %d tasks, got %d", len(orig), len(got))
	}
	for i := range orig {
		want, have := orig[i], got[i]
		if have.ID != want.ID || have.Title != want.Title || have.Description != want.Description {
			t.Errorf("position %d: text fields differ: want %+v, got %+v", i, want, have)
		}
		if have.Priority != want.Priority || have.Status != want.Status {
			t.Errorf("position %d: enums differ: want %s/%s, got %s/%s", i, want.Priority, want.Status, have.Priority, have.Status)
		}
		if !have.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("position %d: expected createdAt %v, got %v", i, want.CreatedAt, have.CreatedAt)
		}
		if (want.DueDate == nil) != (have.DueDate == nil) {
			t.Fatalf("position %d: due date presence differs", i)
		}
		if want.DueDate != nil && !have.DueDate.Equal(*want.DueDate) {
			t.Errorf("position %d: expected dueDate %v, got %v", i, want.DueDate, have.DueDate)
		}
		if strings.Join(have.Tags, ",") != strings.Join(want.Tags, ",") {
			t.Errorf("position %d: expected tags %v, got %v", i, want.Tags, have.Tags)
		}
	}
}

func TestEncodeTasks_TimestampsAreStrings(t *testing.T) {
	data, err := EncodeTasks(sampleTasks()[:1])
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	if !strings.Contains(string(data), `"createdAt":"2026-04-02T08:30:15.123Z"`) {
		t.Errorf("expected RFC 3339 createdAt in %s", data)
	}
	if !strings.Contains(string(data), `"dueDate":"2026-04-05T08:30:15.123Z"`) {
		t.Errorf("expected RFC 3339 dueDate in %s", data)
	}
}

func TestEncodeTasks_NilTagsBecomeEmpty(t *testing.T) {
	data, err := EncodeTasks([]models.Task{{ID: "x", Priority: models.PriorityLow, Status: models.StatusPending}})
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	if !strings.Contains(string(data), `"tags":[]`) {
		t.Errorf("expected empty tags array in %s", data)
	}
}

func TestDecodeTasks_Malformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "not json", blob: "{{{"},
		{name: "wrong shape", blob: `{"id":"1"}`},
		{name: "unknown status", blob: `[{"id":"1","priority":"low","status":"archived","createdAt":"2026-01-01T00:00:00Z"}]`},
		{name: "unknown priority", blob: `[{"id":"1","priority":"urgent","status":"pending","createdAt":"2026-01-01T00:00:00Z"}]`},
		{name: "bad createdAt", blob: `[{"id":"1","priority":"low","status":"pending","createdAt":"yesterday"}]`},
		{name: "bad dueDate", blob: `[{"id":"1","priority":"low","status":"pending","createdAt":"2026-01-01T00:00:00Z","dueDate":"soon"}]`},
		{name: "missing id", blob: `[{"priority":"low","status":"pending","createdAt":"2026-01-01T00:00:00Z"}]`},
		{name: "duplicate id", blob: `[{"id":"1","priority":"low","status":"pending","createdAt":"2026-01-01T00:00:00Z"},{"id":"1","priority":"low","status":"pending","createdAt":"2026-01-01T00:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTasks([]byte(tt.blob)); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestDecodeTasks_MissingTagsDefaultEmpty(t *testing.T) {
	got, err := DecodeTasks([]byte(`[{"id":"1","priority":"low","status":"pending","createdAt":"2026-01-01T00:00:00Z"}]`))
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}
	if got[0].Tags == nil {
		t.Error("expected tags to default to an empty slice")
	}
	if got[0].DueDate != nil {
		t.Error("expected no due date")
	}
}
