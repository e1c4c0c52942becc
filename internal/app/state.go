// Package app wires the task store and the navigation state into one
// explicitly constructed value. Every user intent enters through State and
// every view is a fresh projection of it.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/navigation"
	"github.com/sandeepkv93/taskcal/internal/projection"
	"github.com/sandeepkv93/taskcal/internal/storage"
	"github.com/sandeepkv93/taskcal/internal/tasks"
	"go.uber.org/zap"
)

type State struct {
	tasks       *tasks.Store
	nav         navigation.State
	now         func() time.Time
	logger      *zap.Logger
	selectToday bool
}

type Option func(*State)

func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithSelectToday(on bool) Option {
	return func(s *State) { s.selectToday = on }
}

func New(port storage.Port, opts ...Option) *State {
	s := &State{
		now:         time.Now,
		logger:      zap.NewNop(),
		selectToday: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = tasks.New(port, tasks.WithClock(s.now), tasks.WithLogger(s.logger))
	s.nav = navigation.New(calendar.MonthOf(s.now()), "")
	return s
}

func (s *State) Init(ctx context.Context) error {
	if err := s.tasks.Init(ctx); err != nil {
		return err
	}
	today := s.Today()
	s.nav = navigation.New(calendar.MonthOf(s.now()), "")
	if s.selectToday {
		s.nav.SelectDate(today)
	}
	s.logger.Debug("state initialised",
		zap.String("month", s.nav.Month.String()),
		zap.Bool("filtered", s.selectToday),
	)
	return nil
}

func (s *State) Today() string { return s.tasks.Today() }

func (s *State) Month() calendar.Month { return s.nav.Month }

func (s *State) Selected() (string, bool) { return s.nav.Selected() }

func (s *State) Entries() []model.Entry { return s.tasks.List() }

func (s *State) Get(id model.TaskID) (model.Entry, bool) { return s.tasks.Get(id) }

func (s *State) Last() (model.Entry, bool) {
	entries := s.tasks.List()
	if len(entries) == 0 {
		return model.Entry{}, false
	}
	return entries[len(entries)-1], true
}

func (s *State) AddTask(ctx context.Context, date, title, description string) (model.TaskID, error) {
	return s.tasks.Add(ctx, date, title, description)
}

func (s *State) ToggleCompleted(ctx context.Context, id model.TaskID) error {
	return s.tasks.ToggleCompleted(ctx, id)
}

func (s *State) SetEditMode(id model.TaskID, on bool) error {
	return s.tasks.SetEditMode(id, on)
}

func (s *State) UpdateTask(ctx context.Context, id model.TaskID, title, description string) error {
	return s.tasks.Update(ctx, id, title, description)
}

func (s *State) DeleteTask(ctx context.Context, id model.TaskID) error {
	return s.tasks.Delete(ctx, id)
}

func (s *State) Navigate(delta int) {
	s.nav.Navigate(delta)
}

// SelectDate toggles the filter date. Selecting a day outside the displayed
// month also moves the calendar there.
func (s *State) SelectDate(date string) error {
	d, err := model.ParseDate(date)
	if err != nil {
		return err
	}
	s.nav.SelectDate(date)
	if m := calendar.MonthOf(d); m != s.nav.Month {
		if _, active := s.nav.Selected(); active {
			s.nav.Month = m
		}
	}
	return nil
}

func (s *State) ShowMonth(m calendar.Month) {
	s.nav.Month = m
}

func (s *State) ClearSelection() { s.nav.Clear() }

func (s *State) GoToToday() {
	s.nav.Month = calendar.MonthOf(s.now())
}

func (s *State) Project() projection.ViewModel {
	return projection.Project(s.tasks.List(), s.nav, s.Today())
}

// Dispatch runs one command to completion. A command naming an unknown task
// is a no-op; validation and storage errors are returned.
func (s *State) Dispatch(ctx context.Context, cmd commands.Command) error {
	_, err := s.Run(ctx, cmd)
	return err
}

func (s *State) Run(ctx context.Context, cmd commands.Command) (commands.Result, error) {
	res, err := commands.Execute(cmd, s.handlers(ctx))
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("command ignored", zap.String("type", string(cmd.Type)), zap.Error(err))
		return commands.Result{Message: "no such task"}, nil
	}
	return res, err
}

func (s *State) handlers(ctx context.Context) commands.Handlers {
	return commands.Handlers{
		AddTask: func(a commands.AddTaskArgs) (commands.Result, error) {
			id, err := s.AddTask(ctx, a.Date, a.Title, a.Description)
			if err != nil && id == 0 {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added task %d", id)}, err
		},
		ToggleCompleted: func(a commands.ToggleCompletedArgs) (commands.Result, error) {
			if err := s.ToggleCompleted(ctx, a.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("toggled task %d", a.ID)}, nil
		},
		SetEditMode: func(a commands.SetEditModeArgs) (commands.Result, error) {
			if err := s.SetEditMode(a.ID, a.On); err != nil {
				return commands.Result{}, err
			}
			if a.On {
				return commands.Result{Message: fmt.Sprintf("editing task %d", a.ID)}, nil
			}
			return commands.Result{Message: "edit cancelled"}, nil
		},
		UpdateTask: func(a commands.UpdateTaskArgs) (commands.Result, error) {
			if err := s.UpdateTask(ctx, a.ID, a.Title, a.Description); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("updated task %d", a.ID)}, nil
		},
		DeleteTask: func(a commands.DeleteTaskArgs) (commands.Result, error) {
			if err := s.DeleteTask(ctx, a.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted task %d", a.ID)}, nil
		},
		Navigate: func(a commands.NavigateArgs) (commands.Result, error) {
			s.Navigate(a.Delta)
			return commands.Result{Message: s.nav.Month.Title()}, nil
		},
		SelectDate: func(a commands.SelectDateArgs) (commands.Result, error) {
			date := a.Date
			if a.Today {
				date = s.Today()
			}
			if err := s.SelectDate(date); err != nil {
				return commands.Result{}, err
			}
			if sel, ok := s.nav.Selected(); ok {
				return commands.Result{Message: "showing " + sel}, nil
			}
			return commands.Result{Message: "showing all tasks"}, nil
		},
	}
}
