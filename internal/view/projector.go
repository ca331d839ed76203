// Package view derives what is rendered from the task collection: search and
// enum filters, createdAt ordering and, in board mode, the status columns.
package view

import (
	"net/url"
	"sort"
	"strings"

	"taskboard/internal/models"
)

// Filter is either All or the string value of a status or priority.
type Filter string

// All matches every task.
const All Filter = "all"

// Direction is the createdAt sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Mode selects between the single list and the three-column board.
type Mode string

const (
	ModeList  Mode = "list"
	ModeBoard Mode = "board"
)

// Query holds every user-controlled view parameter.
type Query struct {
	Search   string
	Status   Filter
	Priority Filter
	// Tab is the list-mode tab strip. It is ignored in board mode.
	Tab  Filter
	Sort Direction
	Mode Mode
}

// DefaultQuery is what a fresh page shows: everything, newest first, as a list.
func DefaultQuery() Query {
	return Query{
		Status:   All,
		Priority: All,
		Tab:      All,
		Sort:     Desc,
		Mode:     ModeList,
	}
}

// HasActiveFilters reports whether the search box or a dropdown narrows the list.
func (q Query) HasActiveFilters() bool {
	return q.Search != "" || q.Status != All || q.Priority != All
}

// Values encodes q as request parameters, omitting defaults.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Status != All {
		v.Set("status", string(q.Status))
	}
	if q.Priority != All {
		v.Set("priority", string(q.Priority))
	}
	if q.Tab != All {
		v.Set("tab", string(q.Tab))
	}
	if q.Sort != Desc {
		v.Set("sort", string(q.Sort))
	}
	if q.Mode != ModeList {
		v.Set("view", string(q.Mode))
	}
	return v
}

// ParseQuery reads q, status, priority, tab, sort and view. Unknown values fall
// back to the defaults.
func ParseQuery(v url.Values) Query {
	q := DefaultQuery()
	q.Search = strings.TrimSpace(v.Get("q"))

	if s := v.Get("status"); models.Status(s).IsValid() {
		q.Status = Filter(s)
	}
	if p := v.Get("priority"); models.Priority(p).IsValid() {
		q.Priority = Filter(p)
	}
	if tab := v.Get("tab"); models.Status(tab).IsValid() {
		q.Tab = Filter(tab)
	}
	if Direction(v.Get("sort")) == Asc {
		q.Sort = Asc
	}
	if Mode(v.Get("view")) == ModeBoard {
		q.Mode = ModeBoard
	}
	return q
}

// Column is one board column.
type Column struct {
	Status models.Status `json:"status"`
	Tasks  []models.Task `json:"tasks"`
}

// Counts are taken over the whole collection, before any filter.
type Counts struct {
	All        int `json:"all"`
	Pending    int `json:"pending"`
	InProgress int `json:"in-progress"`
	Completed  int `json:"completed"`
}

// Of returns the count for one tab value.
func (c Counts) Of(f Filter) int {
	switch f {
	case Filter(models.StatusPending):
		return c.Pending
	case Filter(models.StatusInProgress):
		return c.InProgress
	case Filter(models.StatusCompleted):
		return c.Completed
	default:
		return c.All
	}
}

// Projection is the result of projecting a collection through a Query.
type Projection struct {
	Query   Query         `json:"-"`
	Mode    Mode          `json:"mode"`
	Tasks   []models.Task `json:"tasks"`
	Columns []Column      `json:"columns,omitempty"`
	Counts  Counts        `json:"counts"`
}

// Container returns the ordered tasks of a drag container: "list" in list
// mode, or a status column id in board mode.
func (p Projection) Container(id string) ([]models.Task, bool) {
	if p.Mode == ModeList {
		if id == ContainerList {
			return p.Tasks, true
		}
		return nil, false
	}
	for _, col := range p.Columns {
		if string(col.Status) == id {
			return col.Tasks, true
		}
	}
	return nil, false
}

// ContainerList is the drag container id of the list view.
const ContainerList = "list"

// Project filters, sorts and, in board mode, groups tasks. The input slice is
// never modified.
func Project(tasks []models.Task, q Query) Projection {
	if q.Mode != ModeBoard {
		q.Mode = ModeList
	}

	sorted := Sort(FilterTasks(tasks, q), q.Sort)

	p := Projection{
		Query:  q,
		Mode:   q.Mode,
		Tasks:  sorted,
		Counts: Count(tasks),
	}
	if q.Mode == ModeBoard {
		p.Columns = Group(sorted)
	}
	return p
}

// FilterTasks keeps the tasks matching every active predicate, in input order.
func FilterTasks(tasks []models.Task, q Query) []models.Task {
	needle := strings.ToLower(q.Search)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesSearch(t, needle) {
			continue
		}
		if !matchesStatus(t, q.Status) {
			continue
		}
		if q.Priority != "" && q.Priority != All && string(t.Priority) != string(q.Priority) {
			continue
		}
		if q.Mode != ModeBoard && !matchesStatus(t, q.Tab) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t models.Task, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesStatus(t models.Task, f Filter) bool {
	return f == "" || f == All || string(t.Status) == string(f)
}

// Sort returns a createdAt-ordered copy. Ties keep their input order in both
// directions.
func Sort(tasks []models.Task, dir Direction) []models.Task {
	out := append([]models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Asc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Group partitions tasks into the pending, in-progress and completed columns,
// keeping order within each column.
func Group(tasks []models.Task) []Column {
	cols := make([]Column, len(models.Statuses))
	index := make(map[models.Status]int, len(models.Statuses))
	for i, st := range models.Statuses {
		cols[i] = Column{Status: st, Tasks: []models.Task{}}
		index[st] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			cols[i].Tasks = append(cols[i].Tasks, t)
		}
	}
	return cols
}

// Count tallies tasks per status.
func Count(tasks []models.Task) Counts {
	var c Counts
	for _, t := range tasks {
		c.All++
		switch t.Status {
		case models.StatusPending:
			c.Pending++
		case models.StatusInProgress:
			c.InProgress++
		case models.StatusCompleted:
			c.Completed++
		}
	}
	return c
}
