package storage

import (
	"encoding/json"

	"github.com/sandeepkv93/taskcal/internal/model"
	"go.uber.org/zap"
)

// Record is the wire shape of a task. Field names follow the data written by
// earlier versions of the tracker. IsEditing is kept for compatibility: it is
// always written false and ignored when read.
type Record struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsEditing   bool   `json:"isEditing"`
	Completed   bool   `json:"completed"`
}

func toRecord(t model.Task) Record {
	return Record{
		ID:          int64(t.ID),
		Date:        t.Date,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

func (r Record) task() model.Task {
	return model.Task{
		ID:          model.TaskID(r.ID),
		Date:        r.Date,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

func toRecords(tasks []model.Task) []Record {
	out := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toRecord(t))
	}
	return out
}

// fromRecords drops records that violate the task invariants or repeat an
// earlier id.
func fromRecords(records []Record, logger *zap.Logger) []model.Task {
	out := make([]model.Task, 0, len(records))
	seen := make(map[model.TaskID]bool, len(records))
	for _, r := range records {
		t := r.task()
		if err := t.Validate(); err != nil {
			logger.Warn("dropping invalid task record", zap.Int64("id", r.ID), zap.Error(err))
			continue
		}
		if seen[t.ID] {
			logger.Warn("dropping duplicate task record", zap.Int64("id", r.ID))
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// decodeDocument parses a JSON task list. Malformed input yields no tasks.
func decodeDocument(raw []byte, logger *zap.Logger) []model.Task {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("ignoring malformed task data", zap.Error(err))
		return []model.Task{}
	}
	return fromRecords(records, logger)
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
