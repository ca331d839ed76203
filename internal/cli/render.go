package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/i18n"
	"taskboard/internal/models"
	"taskboard/internal/view"
)

// shortID is how many id characters the terminal shows. Commands accept any
// unique prefix.
const shortID = 8

type renderer struct {
	st   *styles
	lang i18n.Language
	now  time.Time
}

func (r renderer) t(key string) string {
	return i18n.T(r.lang, key)
}

func (r renderer) list(w io.Writer, p view.Projection) {
	fmt.Fprintln(w, r.st.Title.Render(r.t("app.title")))
	fmt.Fprintln(w, r.st.Muted.Render(r.tabs(p.Counts)))
	fmt.Fprintln(w)

	if len(p.Tasks) == 0 {
		r.empty(w, p.Query)
		return
	}
	for _, t := range p.Tasks {
		fmt.Fprintln(w, r.card(t))
	}
}

func (r renderer) board(w io.Writer, p view.Projection) {
	fmt.Fprintln(w, r.st.Title.Render(r.t("app.title")))
	fmt.Fprintln(w)

	cols := make([]string, 0, len(p.Columns))
	for _, col := range p.Columns {
		var b strings.Builder
		fmt.Fprintf(&b, "%s (%d)\n", r.st.Title.Render(r.t("status."+string(col.Status))), len(col.Tasks))
		for _, t := range col.Tasks {
			b.WriteString("\n")
			b.WriteString(r.card(t))
		}
		cols = append(cols, r.st.Column.Render(b.String()))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

func (r renderer) tabs(c view.Counts) string {
	parts := []string{fmt.Sprintf("%s %d", r.t("tab.all"), c.All)}
	for _, st := range models.Statuses {
		parts = append(parts, fmt.Sprintf("%s %d", r.t("tab."+string(st)), c.Of(view.Filter(st))))
	}
	return strings.Join(parts, " · ")
}

func (r renderer) empty(w io.Writer, q view.Query) {
	fmt.Fprintln(w, r.t("empty.no-tasks"))
	if q.HasActiveFilters() {
		fmt.Fprintln(w, r.st.Muted.Render(r.t("empty.adjust-filters")))
		return
	}
	fmt.Fprintln(w, r.st.Muted.Render(r.t("empty.create-new")))
}

// card is the terminal version of a task card: one headline plus a muted
// detail line.
func (r renderer) card(t models.Task) string {
	box := "[ ]"
	if t.Status == models.StatusInProgress {
		box = "[~]"
	}
	title := t.Title
	if t.IsCompleted() {
		box = "[x]"
		title = r.st.Done.Render(title)
	}

	id := t.ID
	if len(id) > shortID {
		id = id[:shortID]
	}

	head := fmt.Sprintf("%s %s %s %s",
		r.st.ID.Render(id),
		box,
		title,
		r.st.Priority[t.Priority].Render(r.t("priority."+string(t.Priority))),
	)

	details := []string{r.t("task.created") + " " + i18n.Relative(r.lang, t.CreatedAt, r.now)}
	if t.DueDate != nil {
		details = append(details, r.t("task.dueDate")+" "+t.DueDay())
	}
	line := r.st.Muted.Render(strings.Join(details, " · "))
	if t.IsOverdue(r.now) {
		line += " " + r.st.Overdue.Render(r.t("task.overdue"))
	}
	for _, tag := range t.Tags {
		line += " " + r.st.Tag.Render("#"+tag)
	}

	out := head + "\n    " + line
	if t.Description != "" {
		out += "\n    " + t.Description
	}
	return out
}
