package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Register mounts the page and API routes on r.
func (h *Handlers) Register(r chi.Router) {
	// Page routes
	r.Get("/", h.Index)

	// Task API routes
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Post("/reorder", h.ReorderTasks)
		r.Post("/drop", h.DropTask)
		r.Post("/clear-completed", h.ClearCompleted)

		r.Get("/{id}", h.GetTask)
		r.Patch("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Post("/{id}/status", h.SetTaskStatus)
		r.Post("/{id}/move", h.MoveTask)
	})

	// Preferences
	r.Get("/api/preferences", h.GetPreferences)
	r.Put("/api/preferences", h.UpdatePreferences)

	r.Get("/api/events", h.Events)
}
