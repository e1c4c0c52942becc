package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/taskcal/internal/model"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

// Port is the durable side of the task store. Load returns an empty slice
// when there is no prior data or the data cannot be decoded; only failures
// of the medium itself are returned as errors. Save replaces the stored
// collection with tasks, keeping their order.
type Port interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}
