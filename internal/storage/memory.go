package storage

import (
	"context"
	"slices"

	"github.com/sandeepkv93/taskcal/internal/model"
)

// Memory keeps the collection in process. SaveErr, when set, is returned by
// every Save without touching the stored tasks.
type Memory struct {
	tasks   []model.Task
	SaveErr error
	Saves   int
}

func NewMemory(initial ...model.Task) *Memory {
	return &Memory{tasks: slices.Clone(initial)}
}

func (m *Memory) Load(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.tasks == nil {
		return []model.Task{}, nil
	}
	return slices.Clone(m.tasks), nil
}

func (m *Memory) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tasks = slices.Clone(tasks)
	return nil
}

func (m *Memory) Tasks() []model.Task {
	return slices.Clone(m.tasks)
}
