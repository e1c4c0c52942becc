package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newStore(t *testing.T, initial ...model.Task) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory(initial...)
	s := New(mem, WithClock(fixedClock(time.Date(2024, time.May, 2, 9, 30, 0, 0, time.Local))))
	require.NoError(t, s.Init(context.Background()))
	return s, mem
}

func titles(entries []model.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func TestAddAppendsAndPersists(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "2024-05-01", "  Write report ", "quarterly")
	require.NoError(t, err)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly", got.Description)
	assert.Equal(t, "2024-05-01", got.Date)
	assert.False(t, got.Completed)
	assert.False(t, got.UI.Editing)

	require.Len(t, mem.Tasks(), 1)
	assert.Equal(t, got.Task, mem.Tasks()[0])
}

func TestAddDefaultsDateToToday(t *testing.T) {
	s, _ := newStore(t)
	id, err := s.Add(context.Background(), "", "No date", "")
	require.NoError(t, err)
	got, _ := s.Get(id)
	assert.Equal(t, "2024-05-02", got.Date)
}

func TestAddRejectsBlankTitleWithoutMutation(t *testing.T) {
	s, mem := newStore(t)
	_, err := s.Add(context.Background(), "2024-05-01", "   ", "ignored")
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, mem.Saves)
}

func TestAddRejectsMalformedDate(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Add(context.Background(), "2024/05/01", "x", "")
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 0, s.Len())
}

func TestAddGeneratesDistinctIncreasingIDs(t *testing.T) {
	s, _ := newStore(t, model.Task{ID: model.TaskID(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()), Date: "2030-01-01", Title: "future"})
	ctx := context.Background()
	a, err := s.Add(ctx, "", "a", "")
	require.NoError(t, err)
	b, err := s.Add(ctx, "", "b", "")
	require.NoError(t, err)
	assert.Greater(t, int64(a), int64(s.List()[0].ID))
	assert.Greater(t, int64(b), int64(a))
}

func TestToggleCompleted(t *testing.T) {
	s, mem := newStore(t, model.Task{ID: 1, Date: "2024-05-01", Title: "A"})
	ctx := context.Background()

	require.NoError(t, s.ToggleCompleted(ctx, 1))
	got, _ := s.Get(1)
	assert.True(t, got.Completed)
	assert.True(t, mem.Tasks()[0].Completed)

	require.NoError(t, s.ToggleCompleted(ctx, 1))
	got, _ = s.Get(1)
	assert.False(t, got.Completed)
}

func TestMissingIDReturnsNotFound(t *testing.T) {
	s, mem := newStore(t, model.Task{ID: 1, Date: "2024-05-01", Title: "A"})
	ctx := context.Background()
	assert.ErrorIs(t, s.ToggleCompleted(ctx, 2), model.ErrNotFound)
	assert.ErrorIs(t, s.SetEditMode(2, true), model.ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, 2, "x", ""), model.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 2), model.ErrNotFound)
	assert.Equal(t, 0, mem.Saves)
	assert.Equal(t, 1, s.Len())
}

func TestSetEditModeIsPerTaskAndNotPersisted(t *testing.T) {
	s, mem := newStore(t,
		model.Task{ID: 1, Date: "2024-05-01", Title: "A"},
		model.Task{ID: 2, Date: "2024-05-01", Title: "B"},
	)
	require.NoError(t, s.SetEditMode(1, true))
	require.NoError(t, s.SetEditMode(2, true))

	a, _ := s.Get(1)
	b, _ := s.Get(2)
	assert.True(t, a.UI.Editing)
	assert.True(t, b.UI.Editing, "entering edit mode must not clear another task's edit mode")
	assert.Equal(t, 0, mem.Saves)

	require.NoError(t, s.SetEditMode(1, false))
	a, _ = s.Get(1)
	b, _ = s.Get(2)
	assert.False(t, a.UI.Editing)
	assert.True(t, b.UI.Editing)
}

func TestUpdateCommitsAndLeavesEditMode(t *testing.T) {
	s, mem := newStore(t, model.Task{ID: 1, Date: "2024-05-01", Title: "A", Description: "old"})
	ctx := context.Background()
	require.NoError(t, s.SetEditMode(1, true))
	require.NoError(t, s.Update(ctx, 1, "A2", "new"))

	got, _ := s.Get(1)
	assert.Equal(t, "A2", got.Title)
	assert.Equal(t, "new", got.Description)
	assert.Equal(t, "2024-05-01", got.Date)
	assert.False(t, got.UI.Editing)
	assert.Equal(t, "A2", mem.Tasks()[0].Title)
}

func TestUpdateRejectsBlankTitleAndStaysInEditMode(t *testing.T) {
	s, mem := newStore(t, model.Task{ID: 1, Date: "2024-05-01", Title: "A", Description: "old"})
	require.NoError(t, s.SetEditMode(1, true))

	err := s.Update(context.Background(), 1, " ", "new")
	require.ErrorIs(t, err, model.ErrValidation)

	got, _ := s.Get(1)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "old", got.Description)
	assert.True(t, got.UI.Editing)
	assert.Equal(t, 0, mem.Saves)
}

func TestDeleteRemovesTask(t *testing.T) {
	s, mem := newStore(t,
		model.Task{ID: 1, Date: "2024-05-01", Title: "A"},
		model.Task{ID: 2, Date: "2024-05-01", Title: "B"},
		model.Task{ID: 3, Date: "2024-05-02", Title: "C"},
	)
	require.NoError(t, s.Delete(context.Background(), 2))
	assert.Equal(t, []string{"A", "C"}, titles(s.List()))
	require.Len(t, mem.Tasks(), 2)
}

func TestSaveFailureKeepsMutationAndReturnsStorageError(t *testing.T) {
	s, mem := newStore(t)
	cause := errors.New("quota exceeded")
	mem.SaveErr = cause

	id, err := s.Add(context.Background(), "2024-05-01", "kept", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStorage)
	assert.ErrorIs(t, err, cause)

	var se *model.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "add", se.Op)

	_, ok := s.Get(id)
	assert.True(t, ok, "in-memory state is not rolled back")
	assert.Empty(t, mem.Tasks())
}

func TestListIsSnapshot(t *testing.T) {
	s, _ := newStore(t, model.Task{ID: 1, Date: "2024-05-01", Title: "A"})
	list := s.List()
	list[0].Title = "mutated"
	got, _ := s.Get(1)
	assert.Equal(t, "A", got.Title)
}

type failingLoad struct{ storage.Memory }

func (failingLoad) Load(context.Context) ([]model.Task, error) {
	return nil, errors.New("permission denied")
}

func TestInitLoadFailure(t *testing.T) {
	s := New(&failingLoad{})
	err := s.Init(context.Background())
	assert.ErrorIs(t, err, model.ErrStorage)
}
