package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/view"
)

// heartbeat keeps idle event streams from being closed by proxies.
const heartbeat = 30 * time.Second

// Events streams a "tasks" server-sent event with fresh counts after every
// mutation, so open pages know to refresh.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// The stream outlives the server's write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	updates := make(chan view.Counts, 1)
	unsubscribe := h.tasks.Subscribe(func(snapshot []models.Task) {
		counts := view.Count(snapshot)
		// Keep only the latest counts if the client is slow.
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- counts:
		default:
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, view.Count(h.tasks.Tasks())); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case counts := <-updates:
			if err := writeEvent(w, counts); err != nil {
				return
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, counts view.Counts) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: tasks\ndata: %s\n\n", data)
	return err
}
