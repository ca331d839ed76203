package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"taskboard/internal/dragdrop"
	"taskboard/internal/models"
	"taskboard/internal/tasks"
	"taskboard/internal/view"
)

// ListTasks returns the projection for the query string as JSON.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := view.ParseQuery(r.URL.Query())
	respondJSON(w, http.StatusOK, view.Project(h.tasks.Tasks(), q))
}

// CreateTask creates a new task at the head of the collection.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in models.NewTask
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	task, err := h.tasks.Create(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondServerError(w, r, err)
		return
	}

	h.log.Info("task created", zap.String("id", task.ID))
	respondJSON(w, http.StatusCreated, task)
}

// GetTask returns a single task.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.tasks.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// UpdateTask merges a partial update into an existing task.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch models.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	task, ok, err := h.tasks.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondServerError(w, r, err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ok, err := h.tasks.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetTaskStatus is the checkbox: completed or back to pending.
func (h *Handlers) SetTaskStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Completed bool `json:"completed"`
	}
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	ok, err := h.tasks.SetStatus(r.Context(), id, payload.Completed)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	task, _ := h.tasks.Get(id)
	respondJSON(w, http.StatusOK, task)
}

// MoveTask places a task directly before or after another one.
func (h *Handlers) MoveTask(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Target   string         `json:"target"`
		Position tasks.Position `json:"position"`
	}
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if payload.Position != tasks.Before && payload.Position != tasks.After {
		respondError(w, http.StatusBadRequest, `position must be "before" or "after"`)
		return
	}

	id := chi.URLParam(r, "id")
	if id == payload.Target {
		respondError(w, http.StatusBadRequest, "a task cannot be moved relative to itself")
		return
	}

	ok, err := h.tasks.Move(r.Context(), id, payload.Target, payload.Position)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderTasks moves the task at one collection index to another.
func (h *Handlers) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	if err := h.tasks.Reorder(r.Context(), payload.From, payload.To); err != nil {
		if errors.Is(err, tasks.ErrIndexOutOfRange) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type dropRequest struct {
	dragdrop.Drop
	// Query is the query string of the view the drag happened in.
	Query string `json:"query"`
}

// DropTask applies a finished drag from the page.
func (h *Handlers) DropTask(w http.ResponseWriter, r *http.Request) {
	var payload dropRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	values, err := url.ParseQuery(payload.Query)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid query")
		return
	}

	p := view.Project(h.tasks.Tasks(), view.ParseQuery(values))
	res, err := dragdrop.Apply(r.Context(), h.tasks, p, payload.Drop)
	if err != nil {
		if errors.Is(err, dragdrop.ErrUnknownContainer) || errors.Is(err, dragdrop.ErrUnknownTask) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// ClearCompleted removes every completed task.
func (h *Handlers) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	removed, err := h.tasks.ClearCompleted(r.Context())
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}

	if removed > 0 {
		h.log.Info("completed tasks cleared", zap.Int("removed", removed))
	}
	respondJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidStatus) || errors.Is(err, models.ErrInvalidPriority)
}
