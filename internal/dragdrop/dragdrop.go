// Package dragdrop turns a drop event from the UI into a store mutation.
//
// Indices in a drop refer to positions inside the rendered container, which
// may be filtered and sorted. They are resolved to task ids through the
// projection the user was looking at, and the store is then asked to move by
// id, so a drag in a filtered view never lands on a hidden neighbour's slot.
package dragdrop

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/models"
	"taskboard/internal/tasks"
	"taskboard/internal/view"
)

var (
	ErrUnknownContainer = errors.New("unknown drop container")
	ErrUnknownTask      = errors.New("dragged task is not in the source container")
)

// Location is a slot inside a container ("list" or a status column id).
type Location struct {
	Container string `json:"droppableId"`
	Index     int    `json:"index"`
}

// Drop is a finished drag. Destination is nil when the task was dropped
// outside any container.
type Drop struct {
	DraggableID string    `json:"draggableId"`
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
}

// Result says what a drop changed.
type Result struct {
	Changed bool          `json:"changed"`
	Status  models.Status `json:"status,omitempty"`
}

// Apply performs d against s. p must be the projection the drag started from.
func Apply(ctx context.Context, s *tasks.Store, p view.Projection, d Drop) (Result, error) {
	if d.Destination == nil {
		return Result{}, nil
	}
	dst := *d.Destination

	if dst.Container != d.Source.Container {
		return moveAcross(ctx, s, dst, d.DraggableID)
	}
	if dst.Index == d.Source.Index {
		return Result{}, nil
	}

	container, ok := p.Container(d.Source.Container)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownContainer, d.Source.Container)
	}
	from := indexOf(container, d.DraggableID)
	if from < 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTask, d.DraggableID)
	}

	to := dst.Index
	if to < 0 {
		to = 0
	}
	if to >= len(container) {
		to = len(container) - 1
	}
	if to == from {
		return Result{}, nil
	}

	// Moving down lands after the task now at the target slot, moving up
	// lands before it.
	pos := tasks.Before
	if to > from {
		pos = tasks.After
	}
	changed, err := s.Move(ctx, d.DraggableID, container[to].ID, pos)
	return Result{Changed: changed}, err
}

// moveAcross handles a drop into another board column: the task takes that
// column's status. Order in the collection is left alone.
func moveAcross(ctx context.Context, s *tasks.Store, dst Location, id string) (Result, error) {
	status, err := models.ParseStatus(dst.Container)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownContainer, dst.Container)
	}
	_, ok, err := s.Update(ctx, id, models.Patch{Status: &status})
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, nil
	}
	return Result{Changed: true, Status: status}, nil
}

func indexOf(list []models.Task, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
