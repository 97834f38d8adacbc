package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Add_PrependsAndPersists(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	svc := NewGoalService(st)

	first, err := svc.Add(ctx, "h1", "Run a marathon", "sub 4 hours", nil)
	require.NoError(t, err)
	second, err := svc.Add(ctx, "h1", "Learn violin", "", nil)
	require.NoError(t, err)

	goals := svc.List("h1")
	require.Len(t, goals, 2)
	assert.Equal(t, second.ID, goals[0].ID, "new goals are inserted at the front")
	assert.Equal(t, first.ID, goals[1].ID)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Done)
	assert.True(t, first.CreatedAt.Equal(clock.Now()))

	// Durable before Add returned.
	fresh := reload(t, repo, clock)
	assert.Len(t, fresh.Document().GoalsByHorizon["h1"], 2)
}

func TestGoalService_Add_BlankTitleAborts(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	svc := NewGoalService(st)

	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		_, err := svc.Add(ctx, "h1", title, "desc", nil)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	}
	assert.Empty(t, svc.List("h1"), "no mutation on aborted add")
}

func TestGoalService_Add_UnknownHorizonRejected(t *testing.T) {
	st, _, _ := setupStore(t)
	svc := NewGoalService(st)

	_, err := svc.Add(context.Background(), "h7", "Orphan goal", "", nil)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestGoalService_Edit(t *testing.T) {
	st, _, clock := setupStore(t)
	ctx := context.Background()
	svc := NewGoalService(st)

	goal, err := svc.Add(ctx, "h3", "Write a novel", "", nil)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	target := time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, svc.Edit(ctx, "h3", goal.ID, "  Write a short novel  ", "50k words", &target))

	edited, err := svc.Get("h3", goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write a short novel", edited.Title, "title is trimmed")
	assert.Equal(t, "50k words", edited.Desc)
	require.NotNil(t, edited.TargetDate)
	assert.True(t, edited.TargetDate.Equal(target))
	assert.True(t, edited.UpdatedAt.After(edited.CreatedAt))

	// Blank title aborts without touching the record.
	err = svc.Edit(ctx, "h3", goal.ID, "   ", "ignored", nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)
	unchanged, _ := svc.Get("h3", goal.ID)
	assert.Equal(t, "Write a short novel", unchanged.Title)
}

func TestGoalService_ToggleDone(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	svc := NewGoalService(st)

	goal, err := svc.Add(ctx, "h1", "Run a marathon", "", nil)
	require.NoError(t, err)

	require.NoError(t, svc.ToggleDone(ctx, "h1", goal.ID))
	assert.True(t, goal.Done)
	require.NoError(t, svc.ToggleDone(ctx, "h1", goal.ID))
	assert.False(t, goal.Done)
}

func TestGoalService_Delete(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	svc := NewGoalService(st)

	goal, err := svc.Add(ctx, "h1", "Doomed goal", "", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "h1", goal.ID))
	assert.Empty(t, svc.List("h1"))

	err = svc.Delete(ctx, "h1", goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	fresh := reload(t, repo, clock)
	assert.Empty(t, fresh.Document().GoalsByHorizon["h1"])
}

func TestGoalService_SelectHorizon(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	svc := NewGoalService(st)

	assert.Equal(t, domain.DefaultHorizonID, svc.SelectedHorizon().ID)

	require.NoError(t, svc.SelectHorizon(ctx, "h10"))
	assert.Equal(t, "h10", svc.SelectedHorizon().ID)
	assert.Equal(t, "10 years", svc.SelectedHorizon().Label)

	err := svc.SelectHorizon(ctx, "decade")
	assert.ErrorIs(t, err, ErrInvalidHorizon)
	assert.Equal(t, "h10", svc.SelectedHorizon().ID)

	// Selection is persisted state.
	fresh := reload(t, repo, clock)
	assert.Equal(t, "h10", fresh.Document().SelectedHorizonID)
}
