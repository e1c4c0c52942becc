package storage

import (
	"fmt"
	"io"

	"github.com/sandeepkv93/taskcal/internal/config"
	"go.uber.org/zap"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the Port selected by cfg. The returned closer releases any
// handle the backend holds and is never nil.
func Open(cfg config.Storage, logger *zap.Logger) (Port, io.Closer, error) {
	logger = orNop(logger).With(zap.String("backend", cfg.Backend))
	switch cfg.Backend {
	case config.BackendJSON, "":
		return NewJSONFile(cfg.Path, logger), nopCloser{}, nil
	case config.BackendSQLite:
		repo, err := OpenSQLite(cfg.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	case config.BackendDiskv:
		return NewDisk(cfg.Path, logger), nopCloser{}, nil
	case config.BackendMemory:
		return NewMemory(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
