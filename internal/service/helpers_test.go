package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/plans/internal/repository"
	"github.com/alexanderramin/plans/internal/store"
	"github.com/alexanderramin/plans/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupStore builds a loaded store over an in-memory database with the clock
// pinned to Wednesday 2026-03-04 (day index 2).
func setupStore(t *testing.T) (*store.Store, *repository.SQLiteDocumentRepo, *testutil.Clock) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDocumentRepo(database)
	clock := testutil.NewClock(time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local))
	st := store.NewWithClock(repo, clock.Now)
	require.NoError(t, st.Load(context.Background()))
	return st, repo, clock
}

// reload builds a second store over the same repository to verify that a
// mutation was durably persisted before the service returned.
func reload(t *testing.T, repo *repository.SQLiteDocumentRepo, clock *testutil.Clock) *store.Store {
	t.Helper()
	st := store.NewWithClock(repo, clock.Now)
	require.NoError(t, st.Load(context.Background()))
	return st
}
