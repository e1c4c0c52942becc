package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"github.com/sandeepkv93/taskcal/internal/model"
	"go.uber.org/zap"
)

const (
	diskvTaskPrefix = "task-"
	diskvIndexKey   = "index"
)

// Disk stores one JSON record per task in a diskv directory, plus an index
// key holding the collection order.
type Disk struct {
	d      *diskv.Diskv
	logger *zap.Logger
}

func NewDisk(basePath string, logger *zap.Logger) *Disk {
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024,
		}),
		logger: orNop(logger),
	}
}

func taskKey(id model.TaskID) string {
	return diskvTaskPrefix + strconv.FormatInt(int64(id), 10)
}

func (s *Disk) Load(ctx context.Context) ([]model.Task, error) {
	byID := make(map[int64]Record)
	for key := range s.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, diskvTaskPrefix) {
			continue
		}
		raw, err := s.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.logger.Warn("ignoring malformed task record", zap.String("key", key), zap.Error(err))
			continue
		}
		byID[rec.ID] = rec
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(byID))
	for _, id := range s.readIndex() {
		if rec, ok := byID[id]; ok {
			records = append(records, rec)
			delete(byID, id)
		}
	}
	// Records missing from the index go last, oldest id first.
	rest := make([]Record, 0, len(byID))
	for _, rec := range byID {
		rest = append(rest, rec)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].ID < rest[j].ID })
	records = append(records, rest...)
	return fromRecords(records, s.logger), nil
}

func (s *Disk) readIndex() []int64 {
	if !s.d.Has(diskvIndexKey) {
		return nil
	}
	raw, err := s.d.Read(diskvIndexKey)
	if err != nil {
		s.logger.Warn("ignoring unreadable task index", zap.Error(err))
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Warn("ignoring malformed task index", zap.Error(err))
		return nil
	}
	return ids
}

func (s *Disk) Save(ctx context.Context, tasks []model.Task) error {
	keep := make(map[string]bool, len(tasks))
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload, err := json.Marshal(toRecord(t))
		if err != nil {
			return fmt.Errorf("encode task %d: %w", t.ID, err)
		}
		key := taskKey(t.ID)
		if err := s.d.Write(key, payload); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
		keep[key] = true
		ids = append(ids, int64(t.ID))
	}
	index, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := s.d.Write(diskvIndexKey, index); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	stale := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, diskvTaskPrefix) && !keep[key] {
			stale = append(stale, key)
		}
	}
	for _, key := range stale {
		if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("erase %s: %w", key, err)
		}
	}
	return nil
}
