package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrValidation = errors.New("model: validation failed")
	ErrNotFound   = errors.New("model: task not found")
	ErrStorage    = errors.New("model: storage failure")
)

// TaskID identifies a task. IDs are compared by value only and are strictly
// increasing in creation order.
type TaskID int64

type Task struct {
	ID          TaskID
	Date        string
	Title       string
	Description string
	Completed   bool
}

type UIState struct {
	Editing bool
}

// Entry pairs a task with its transient UI state. The task store keeps
// entries; persistence works on the embedded Task only.
type Entry struct {
	Task
	UI UIState
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !IsValidDate(t.Date) {
		return fmt.Errorf("%w: invalid date %q", ErrValidation, t.Date)
	}
	return nil
}

// StorageError reports a failed write to the persistence medium. The
// in-memory collection has already been mutated when this is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func NextID(now time.Time, last TaskID) TaskID {
	id := TaskID(now.UnixMilli())
	if id <= last {
		id = last + 1
	}
	return id
}
