// Package tasks owns the task collection. Every mutation goes through Store,
// which persists the collection after each change.
package tasks

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/storage"
	"go.uber.org/zap"
)

type Store struct {
	port    storage.Port
	entries []model.Entry
	lastID  model.TaskID
	now     func() time.Time
	logger  *zap.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(port storage.Port, opts ...Option) *Store {
	s := &Store{
		port:   port,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init replaces the collection with what the port holds. Edit mode starts
// off for every task.
func (s *Store) Init(ctx context.Context) error {
	loaded, err := s.port.Load(ctx)
	if err != nil {
		return &model.StorageError{Op: "load", Err: err}
	}
	s.entries = make([]model.Entry, 0, len(loaded))
	s.lastID = 0
	for _, t := range loaded {
		s.entries = append(s.entries, model.Entry{Task: t})
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.logger.Info("tasks loaded", zap.Int("count", len(s.entries)))
	return nil
}

func (s *Store) Today() string {
	return model.FormatDate(s.now())
}

// Add appends a new task. An empty date means today. A blank title is
// rejected before anything changes.
func (s *Store) Add(ctx context.Context, date, title, description string) (model.TaskID, error) {
	if strings.TrimSpace(date) == "" {
		date = s.Today()
	}
	t := model.Task{
		Date:        date,
		Title:       strings.TrimSpace(title),
		Description: description,
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}
	t.ID = model.NextID(s.now(), s.lastID)
	s.lastID = t.ID
	s.entries = append(s.entries, model.Entry{Task: t})
	s.logger.Debug("task added", zap.Int64("id", int64(t.ID)), zap.String("date", t.Date))
	return t.ID, s.persist(ctx, "add")
}

func (s *Store) ToggleCompleted(ctx context.Context, id model.TaskID) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.entries[i].Completed = !s.entries[i].Completed
	s.logger.Debug("task toggled", zap.Int64("id", int64(id)), zap.Bool("completed", s.entries[i].Completed))
	return s.persist(ctx, "toggle")
}

func (s *Store) SetEditMode(id model.TaskID, on bool) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.entries[i].UI.Editing = on
	return nil
}

// Update commits edited fields and leaves edit mode. A blank title is
// rejected and the task stays in edit mode unchanged.
func (s *Store) Update(ctx context.Context, id model.TaskID, title, description string) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	next := s.entries[i].Task
	next.Title = strings.TrimSpace(title)
	next.Description = description
	if err := next.Validate(); err != nil {
		return err
	}
	s.entries[i].Task = next
	s.entries[i].UI.Editing = false
	s.logger.Debug("task updated", zap.Int64("id", int64(id)))
	return s.persist(ctx, "update")
}

func (s *Store) Delete(ctx context.Context, id model.TaskID) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	s.logger.Debug("task deleted", zap.Int64("id", int64(id)))
	return s.persist(ctx, "delete")
}

func (s *Store) List() []model.Entry {
	return slices.Clone(s.entries)
}

func (s *Store) Get(id model.TaskID) (model.Entry, bool) {
	i, err := s.index(id)
	if err != nil {
		return model.Entry{}, false
	}
	return s.entries[i], true
}

func (s *Store) Len() int { return len(s.entries) }

func (s *Store) index(id model.TaskID) (int, error) {
	i := slices.IndexFunc(s.entries, func(e model.Entry) bool { return e.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: %d", model.ErrNotFound, id)
	}
	return i, nil
}

// persist writes the collection. On failure the in-memory change is kept
// and the error is returned as *model.StorageError.
func (s *Store) persist(ctx context.Context, op string) error {
	out := make([]model.Task, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Task)
	}
	if err := s.port.Save(ctx, out); err != nil {
		s.logger.Warn("save failed", zap.String("op", op), zap.Error(err))
		return &model.StorageError{Op: op, Err: err}
	}
	return nil
}
