package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayService_Rollover_ClearsDoneKeepsItems(t *testing.T) {
	st, _, clock := setupStore(t)
	ctx := context.Background()
	svc := NewTodayService(st)

	item, err := svc.Add(ctx, "Morning stretch")
	require.NoError(t, err)
	require.NoError(t, svc.ToggleDone(ctx, item.ID))
	require.True(t, item.Done)

	// Same calendar day: nothing to do.
	rolled, err := svc.EnsureRollover(ctx)
	require.NoError(t, err)
	assert.False(t, rolled)
	assert.True(t, item.Done)

	clock.NextDay()

	rolled, err = svc.EnsureRollover(ctx)
	require.NoError(t, err)
	assert.True(t, rolled)

	items := svc.Items()
	require.Len(t, items, 1, "items are preserved, not deleted")
	assert.False(t, items[0].Done, "completion state resets")
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, domain.DateKey(clock.Now()), st.Document().Today.Date)
}

func TestTodayService_Rollover_IdempotentWithinDay(t *testing.T) {
	st, _, clock := setupStore(t)
	ctx := context.Background()
	svc := NewTodayService(st)

	clock.NextDay()
	rolled, err := svc.EnsureRollover(ctx)
	require.NoError(t, err)
	require.True(t, rolled)

	stamp := st.Document().UpdatedAt
	clock.Advance(5 * time.Minute)

	rolled, err = svc.EnsureRollover(ctx)
	require.NoError(t, err)
	assert.False(t, rolled, "second check within the same day is a no-op")
	assert.True(t, st.Document().UpdatedAt.Equal(stamp), "no save, no timestamp change")
}

func TestTodayService_Rollover_YesterdayScenario(t *testing.T) {
	st, _, clock := setupStore(t)
	ctx := context.Background()
	svc := NewTodayService(st)

	// Document stamped with yesterday's date and one completed item.
	doc := st.Document()
	doc.Today.Date = domain.DateKey(clock.Now().AddDate(0, 0, -1))
	doc.Today.Items = []*domain.TodayItem{
		{ID: "td1", Title: "Drink water", Done: true, CreatedAt: clock.Now()},
	}
	require.NoError(t, st.Save(ctx))

	rolled, err := svc.EnsureRollover(ctx)
	require.NoError(t, err)
	assert.True(t, rolled)
	assert.Equal(t, domain.DateKey(clock.Now()), doc.Today.Date)
	require.Len(t, doc.Today.Items, 1, "count unchanged")
	assert.False(t, doc.Today.Items[0].Done)
}

func TestTodayService_Rollover_NewSessionClearsStaleFlags(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	svc := NewTodayService(st)

	item, err := svc.Add(ctx, "Water the plants")
	require.NoError(t, err)
	require.NoError(t, svc.ToggleDone(ctx, item.ID))

	// Process restarts the next day. Load alone keeps the stale state on
	// disk; the startup rollover must clear it before any command runs.
	clock.NextDay()
	fresh := reload(t, repo, clock)
	require.True(t, fresh.Document().Today.Items[0].Done, "load does not roll over by itself")

	rolled, err := NewTodayService(fresh).EnsureRollover(ctx)
	require.NoError(t, err)
	assert.True(t, rolled)
	assert.Equal(t, domain.DateKey(clock.Now()), fresh.Document().Today.Date)
	assert.False(t, fresh.Document().Today.Items[0].Done)

	// Persisted, so a command that never touches the today list (an export,
	// say) serializes the rolled-over state.
	assert.False(t, reload(t, repo, clock).Document().Today.Items[0].Done)
}

func TestTodayService_AddEditToggleDelete(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	svc := NewTodayService(st)

	_, err := svc.Add(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Empty(t, svc.Items())

	item, err := svc.Add(ctx, "Inbox zero")
	require.NoError(t, err)

	require.NoError(t, svc.Edit(ctx, item.ID, "Inbox to ten"))
	assert.Equal(t, "Inbox to ten", item.Title)

	assert.ErrorIs(t, svc.Edit(ctx, item.ID, " "), ErrEmptyTitle)
	assert.Equal(t, "Inbox to ten", item.Title)

	require.NoError(t, svc.ToggleDone(ctx, item.ID))
	assert.True(t, item.Done)

	require.NoError(t, svc.Delete(ctx, item.ID))
	assert.Empty(t, svc.Items())
	assert.ErrorIs(t, svc.Delete(ctx, item.ID), ErrNotFound)

	fresh := reload(t, repo, clock)
	assert.Empty(t, fresh.Document().Today.Items)
}

func TestTodayService_TasksDueToday(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	today := NewTodayService(st)
	week := NewWeekService(st)

	// Clock is Wednesday (day index 2).
	_, err := week.Add(ctx, "Due today", "", 2, "h1")
	require.NoError(t, err)
	_, err = week.Add(ctx, "Due Friday", "", 4, "h1")
	require.NoError(t, err)

	due := today.TasksDueToday()
	require.Len(t, due, 1)
	assert.Equal(t, "Due today", due[0].Title)
}
