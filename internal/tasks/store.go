// Package tasks owns the authoritative, ordered task collection. Every
// mutation is persisted as a single blob and then announced to subscribers.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard/internal/models"
	"taskboard/internal/store"
)

// StorageKey is the key the collection is persisted under.
const StorageKey = "proactive-task-manager-tasks"

// ErrIndexOutOfRange is returned by Reorder for positions outside the collection.
var ErrIndexOutOfRange = errors.New("index out of range")

// Position says on which side of the target a moved task lands.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// Listener receives a snapshot of the collection after each mutation. All
// listeners share the snapshot and must not modify it.
type Listener func(tasks []models.Task)

// snapshot is the collection as of mutation seq.
type snapshot struct {
	seq   uint64
	tasks []models.Task
}

// Store is the task collection plus its persistence and subscribers.
type Store struct {
	mu      sync.Mutex
	tasks   []models.Task
	backend store.Store
	key     string
	log     *zap.Logger
	now     func() time.Time
	newID   func() string
	seq     uint64

	subMu     sync.Mutex
	listeners map[int]Listener
	nextSub   int

	// deliverMu orders deliveries; delivered is the last seq handed out.
	deliverMu sync.Mutex
	delivered uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how task ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New loads the collection from backend. A missing or unreadable blob starts an
// empty collection; only backend I/O failures are returned.
func New(ctx context.Context, backend store.Store, opts ...Option) (*Store, error) {
	s := &Store{
		backend:   backend,
		key:       StorageKey,
		log:       zap.NewNop(),
		now:       time.Now,
		newID:     uuid.NewString,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := backend.Get(ctx, s.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.tasks = []models.Task{}
	case err != nil:
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	default:
		tasks, err := store.DecodeTasks(data)
		if err != nil {
			s.log.Warn("failed to parse saved tasks, starting empty", zap.Error(err))
			tasks = []models.Task{}
		}
		s.tasks = tasks
	}

	s.log.Debug("task store loaded", zap.Int("tasks", len(s.tasks)))
	return s, nil
}

// Tasks returns a deep copy of the collection in manual order.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns a copy of the task with id.
func (s *Store) Get(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Create inserts a new task at the head of the collection.
func (s *Store) Create(ctx context.Context, in models.NewTask) (models.Task, error) {
	task := s.build(in, s.now())
	if err := task.Validate(); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	s.tasks = append([]models.Task{task}, s.tasks...)
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return task.Clone(), err
}

// Seed inserts tasks with their own createdAt when the collection is empty.
// It returns the number of tasks added.
func (s *Store) Seed(ctx context.Context, seeds []Seed) (int, error) {
	s.mu.Lock()
	if len(s.tasks) > 0 {
		s.mu.Unlock()
		return 0, nil
	}
	for _, sd := range seeds {
		task := s.build(sd.Task, sd.CreatedAt)
		if err := task.Validate(); err != nil {
			s.tasks = s.tasks[:0]
			s.mu.Unlock()
			return 0, err
		}
		s.tasks = append([]models.Task{task}, s.tasks...)
	}
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return len(seeds), err
}

// Update merges patch into the task with id. An unknown id is a no-op and
// reports false.
func (s *Store) Update(ctx context.Context, id string, patch models.Patch) (models.Task, bool, error) {
	if err := patch.Validate(); err != nil {
		return models.Task{}, false, err
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Task{}, false, nil
	}
	patch.Apply(&s.tasks[i])
	updated := s.tasks[i].Clone()
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return updated, true, err
}

// Delete removes the task with id. An unknown id is a no-op and reports false.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return true, err
}

// SetStatus is the checkbox toggle: completed or pending, nothing else. A task
// that was in progress does not return to in-progress when unchecked.
func (s *Store) SetStatus(ctx context.Context, id string, completed bool) (bool, error) {
	status := models.StatusPending
	if completed {
		status = models.StatusCompleted
	}
	_, ok, err := s.Update(ctx, id, models.Patch{Status: &status})
	return ok, err
}

// Reorder moves the task at from to position to. Both indices refer to the
// full collection, not to any filtered view.
func (s *Store) Reorder(ctx context.Context, from, to int) error {
	s.mu.Lock()
	n := len(s.tasks)
	if from < 0 || from >= n || to < 0 || to >= n {
		s.mu.Unlock()
		return fmt.Errorf("reorder %d -> %d with %d tasks: %w", from, to, n, ErrIndexOutOfRange)
	}
	if from == to {
		s.mu.Unlock()
		return nil
	}
	moveLocked(s.tasks, from, to)
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return err
}

// Move places the task with id directly before or after targetID. Unknown ids
// and id == targetID are no-ops and report false.
func (s *Store) Move(ctx context.Context, id, targetID string, pos Position) (bool, error) {
	if id == targetID {
		return false, nil
	}

	s.mu.Lock()
	from := s.indexLocked(id)
	target := s.indexLocked(targetID)
	if from < 0 || target < 0 {
		s.mu.Unlock()
		return false, nil
	}

	// Index of target once the moved task has been taken out.
	if from < target {
		target--
	}
	to := target
	if pos == After {
		to++
	}
	if to == from {
		s.mu.Unlock()
		return true, nil
	}
	moveLocked(s.tasks, from, to)
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return true, err
}

// ClearCompleted removes every completed task and returns how many were removed.
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Status != models.StatusCompleted {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	if removed == 0 {
		s.mu.Unlock()
		return 0, nil
	}
	snap, err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return removed, err
}

// Subscribe registers fn to run after every mutation. The returned func
// removes the subscription.
//
// Deliveries are serialized and follow mutation order. A snapshot that is
// already superseded by a delivered one is skipped, so under concurrent
// writes fn may see fewer calls than mutations but never an older state
// after a newer one. fn may read the store but must not mutate it.
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) build(in models.NewTask, createdAt time.Time) models.Task {
	task := models.Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		CreatedAt:   createdAt,
		Tags:        append([]string{}, in.Tags...),
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if in.DueDate != nil {
		d := *in.DueDate
		task.DueDate = &d
	}
	return task
}

func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []models.Task {
	out := make([]models.Task, len(s.tasks))
	for i := range s.tasks {
		out[i] = s.tasks[i].Clone()
	}
	return out
}

// persistLocked writes the collection and returns the snapshot to announce.
// The in-memory change stands even when the write fails.
func (s *Store) persistLocked(ctx context.Context) (snapshot, error) {
	s.seq++
	snap := snapshot{seq: s.seq, tasks: s.snapshotLocked()}

	data, err := store.EncodeTasks(s.tasks)
	if err != nil {
		s.log.Error("failed to encode tasks", zap.Error(err))
		return snap, err
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		s.log.Error("failed to persist tasks", zap.Error(err), zap.Int("tasks", len(s.tasks)))
		return snap, fmt.Errorf("failed to persist tasks: %w", err)
	}
	return snap, nil
}

func (s *Store) notify(snap snapshot) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if snap.seq <= s.delivered {
		return
	}
	s.delivered = snap.seq

	s.subMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	fns := make([]Listener, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap.tasks)
	}
}

// moveLocked removes the element at from and reinserts it at to.
func moveLocked(tasks []models.Task, from, to int) {
	moved := tasks[from]
	if from < to {
		copy(tasks[from:to], tasks[from+1:to+1])
	} else {
		copy(tasks[to+1:from+1], tasks[to:from])
	}
	tasks[to] = moved
}
