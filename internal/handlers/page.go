package handlers

import (
	"net/http"
	"time"

	"taskboard/internal/i18n"
	"taskboard/internal/models"
	"taskboard/internal/settings"
	"taskboard/internal/view"
)

// PageData holds data for the index page template.
type PageData struct {
	Title string
	T     i18n.Translator
	Prefs settings.Preferences

	Query view.Query
	View  view.Projection
	Now   time.Time

	Statuses   []models.Status
	Priorities []models.Priority
	Tabs       []view.Filter

	// EmptyHint is the message key shown under "no tasks" when the view is empty.
	EmptyHint string
}

// Index renders the task page in list or board mode, per the query string.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferences(r)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}

	q := view.ParseQuery(r.URL.Query())
	p := view.Project(h.tasks.Tasks(), q)

	tabs := []view.Filter{view.All}
	for _, st := range models.Statuses {
		tabs = append(tabs, view.Filter(st))
	}

	data := PageData{
		Title:      i18n.T(prefs.Language, "app.title"),
		T:          i18n.Translator{Lang: prefs.Language},
		Prefs:      prefs,
		Query:      p.Query,
		View:       p,
		Now:        h.now(),
		Statuses:   models.Statuses,
		Priorities: models.Priorities,
		Tabs:       tabs,
		EmptyHint:  emptyHint(p.Query),
	}

	h.render(w, r, "index.html", data)
}

func emptyHint(q view.Query) string {
	if q.HasActiveFilters() {
		return "empty.adjust-filters"
	}
	return "empty.create-new"
}

// preferences loads the stored preferences, negotiating the language from
// Accept-Language when none has been saved yet.
func (h *Handlers) preferences(r *http.Request) (settings.Preferences, error) {
	fallback := settings.Defaults()
	fallback.Language = i18n.Match(r.Header.Get("Accept-Language"))
	return settings.LoadOr(r.Context(), h.prefs, fallback)
}
