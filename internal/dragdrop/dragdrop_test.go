package dragdrop

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/store"
	"taskboard/internal/tasks"
	"taskboard/internal/view"
)

// setupStore returns a store holding tasks 1..n, created one minute apart, so
// the manual order is n..1 and a newest-first view agrees with it.
func setupStore(t *testing.T, n int) *tasks.Store {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	next, tick := 0, 0
	s, err := tasks.New(context.Background(), store.NewMemoryStore(),
		tasks.WithIDGenerator(func() string { next++; return strconv.Itoa(next) }),
		tasks.WithClock(func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }),
	)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	for i := 1; i <= n; i++ {
		if _, err := s.Create(context.Background(), models.NewTask{Title: "Task " + strconv.Itoa(i)}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	return s
}

func order(s *tasks.Store) string {
	all := s.Tasks()
	out := make([]string, len(all))
	for i, t := range all {
		out[i] = t.ID
	}
	return strings.Join(out, ",")
}

func TestApply_NoDestinationIsNoop(t *testing.T) {
	s := setupStore(t, 3)
	p := view.Project(s.Tasks(), view.DefaultQuery())

	res, err := Apply(context.Background(), s, p, Drop{
		DraggableID: "1",
		Source:      Location{Container: view.ContainerList, Index: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Changed || order(s) != "3,2,1" {
		t.Errorf("expected no change, got %+v and order %s", res, order(s))
	}
}

func TestApply_SameContainer(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		from, to  int
		want      string
		wantMoved bool
	}{
		{name: "move down", id: "3", from: 0, to: 2, want: "2,1,3", wantMoved: true},
		{name: "move up", id: "1", from: 2, to: 0, want: "1,3,2", wantMoved: true},
		{name: "one step down", id: "3", from: 0, to: 1, want: "2,3,1", wantMoved: true},
		{name: "same index", id: "2", from: 1, to: 1, want: "3,2,1"},
		{name: "index past end clamps", id: "3", from: 0, to: 9, want: "2,1,3", wantMoved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t, 3)
			p := view.Project(s.Tasks(), view.DefaultQuery())

			res, err := Apply(context.Background(), s, p, Drop{
				DraggableID: tt.id,
				Source:      Location{Container: view.ContainerList, Index: tt.from},
				Destination: &Location{Container: view.ContainerList, Index: tt.to},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Changed != tt.wantMoved {
				t.Errorf("expected changed=%v, got %v", tt.wantMoved, res.Changed)
			}
			if got := order(s); got != tt.want {
				t.Errorf("expected order %s, got %s", tt.want, got)
			}
		})
	}
}

func TestApply_FilteredViewUsesVisibleNeighbours(t *testing.T) {
	s := setupStore(t, 4)
	ctx := context.Background()
	high := models.PriorityHigh
	for _, id := range []string{"1", "3"} {
		if _, _, err := s.Update(ctx, id, models.Patch{Priority: &high}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	q := view.DefaultQuery()
	q.Priority = view.Filter(models.PriorityHigh)
	p := view.Project(s.Tasks(), q)

	// Visible list is 3,1. Dragging 3 below 1 must place it after 1 in the
	// full collection, not at raw index 1.
	_, err := Apply(ctx, s, p, Drop{
		DraggableID: "3",
		Source:      Location{Container: view.ContainerList, Index: 0},
		Destination: &Location{Container: view.ContainerList, Index: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := order(s); got != "4,2,1,3" {
		t.Errorf("expected 4,2,1,3, got %s", got)
	}
}

func TestApply_AcrossColumnsChangesStatus(t *testing.T) {
	s := setupStore(t, 2)
	q := view.DefaultQuery()
	q.Mode = view.ModeBoard
	p := view.Project(s.Tasks(), q)

	res, err := Apply(context.Background(), s, p, Drop{
		DraggableID: "1",
		Source:      Location{Container: string(models.StatusPending), Index: 1},
		Destination: &Location{Container: string(models.StatusCompleted), Index: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed || res.Status != models.StatusCompleted {
		t.Errorf("expected status change to completed, got %+v", res)
	}
	got, _ := s.Get("1")
	if got.Status != models.StatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}
	if order(s) != "2,1" {
		t.Errorf("expected manual order untouched, got %s", order(s))
	}
}

func TestApply_Errors(t *testing.T) {
	s := setupStore(t, 2)
	p := view.Project(s.Tasks(), view.DefaultQuery())

	tests := []struct {
		name    string
		drop    Drop
		wantErr error
	}{
		{
			name: "unknown destination column",
			drop: Drop{
				DraggableID: "1",
				Source:      Location{Container: view.ContainerList, Index: 1},
				Destination: &Location{Container: "archive", Index: 0},
			},
			wantErr: ErrUnknownContainer,
		},
		{
			name: "board column in list mode",
			drop: Drop{
				DraggableID: "1",
				Source:      Location{Container: "pending", Index: 1},
				Destination: &Location{Container: "pending", Index: 0},
			},
			wantErr: ErrUnknownContainer,
		},
		{
			name: "task not in container",
			drop: Drop{
				DraggableID: "nope",
				Source:      Location{Container: view.ContainerList, Index: 0},
				Destination: &Location{Container: view.ContainerList, Index: 1},
			},
			wantErr: ErrUnknownTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(context.Background(), s, p, tt.drop)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
