package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekService_Add_FreshTask(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	svc := NewWeekService(st)

	require.Empty(t, svc.Tasks(), "fresh document starts with no week tasks")

	task, err := svc.Add(ctx, "Buy milk", "", 2, "h1")
	require.NoError(t, err)

	tasks := svc.Tasks()
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Done)
	assert.NotEmpty(t, tasks[0].ID)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, 2, tasks[0].DayIndex)
	assert.Equal(t, "h1", tasks[0].HorizonID)
}

func TestWeekService_Add_Validation(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	svc := NewWeekService(st)

	_, err := svc.Add(ctx, "   ", "", 2, "h1")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.Add(ctx, "Out of range", "", 7, "h1")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = svc.Add(ctx, "Negative day", "", -1, "h1")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = svc.Add(ctx, "Bad horizon", "", 2, "years")
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	assert.Empty(t, svc.Tasks(), "rejected adds never mutate the collection")
}

func TestWeekService_ToggleSharedAcrossViews(t *testing.T) {
	// Toggling a task must be visible identically through the week-view day
	// grouping and through the today-derived sub-list: both read the same
	// underlying record.
	st, _, _ := setupStore(t)
	ctx := context.Background()
	week := NewWeekService(st)
	today := NewTodayService(st)

	// Clock is pinned to Wednesday, so day index 2 is "today".
	task, err := week.Add(ctx, "Water plants", "", 2, "h1")
	require.NoError(t, err)

	require.NoError(t, week.ToggleDone(ctx, task.ID))

	byDay := week.TasksForDay(2)
	require.Len(t, byDay, 1)
	assert.True(t, byDay[0].Done)

	dueToday := today.TasksDueToday()
	require.Len(t, dueToday, 1)
	assert.True(t, dueToday[0].Done)
	assert.Same(t, byDay[0], dueToday[0])
}

func TestWeekService_Edit_MovesDay(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	svc := NewWeekService(st)

	task, err := svc.Add(ctx, "Laundry", "whites only", 0, "h1")
	require.NoError(t, err)

	require.NoError(t, svc.Edit(ctx, task.ID, "Laundry", "", 5, "h3"))

	assert.Empty(t, svc.TasksForDay(0))
	moved := svc.TasksForDay(5)
	require.Len(t, moved, 1)
	assert.Equal(t, "h3", moved[0].HorizonID)
	assert.Equal(t, "", moved[0].Notes)
}

func TestWeekService_DayBucketOrdering(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	svc := NewWeekService(st)

	// Adds prepend, so insertion order within the flat sequence is c, b, a.
	a, err := svc.Add(ctx, "task a", "", 4, "h1")
	require.NoError(t, err)
	b, err := svc.Add(ctx, "task b", "", 4, "h1")
	require.NoError(t, err)
	c, err := svc.Add(ctx, "task c", "", 4, "h1")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleDone(ctx, c.ID))

	day := svc.TasksForDay(4)
	require.Len(t, day, 3)
	assert.Equal(t, b.ID, day[0].ID, "incomplete tasks first, stable otherwise")
	assert.Equal(t, a.ID, day[1].ID)
	assert.Equal(t, c.ID, day[2].ID)
}

func TestWeekService_Delete(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	svc := NewWeekService(st)

	task, err := svc.Add(ctx, "Short-lived", "", 1, "h1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.Empty(t, svc.Tasks())
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrNotFound)

	fresh := reload(t, repo, clock)
	assert.Empty(t, fresh.Document().WeekTasks)
}
