package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/plans/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataService_Export_FixedFilename(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	notes := NewNoteService(st)
	data := NewDataService(st)

	_, err := notes.Add(ctx, "Keep", "exported body")
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := data.Export(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, store.ExportFilename), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "exported body")
	assert.Contains(t, string(body), "\n  \"version\"", "export is pretty-printed")
}

func TestDataService_ImportExportRoundTrip(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	notes := NewNoteService(st)
	data := NewDataService(st)

	note, err := notes.Add(ctx, "Survivor", "round trip")
	require.NoError(t, err)

	path, err := data.Export(ctx, t.TempDir())
	require.NoError(t, err)

	// Wipe, then import the exported file.
	require.NoError(t, data.Reset(ctx))
	require.Empty(t, notes.List())

	require.NoError(t, data.Import(ctx, path))
	restored := notes.List()
	require.Len(t, restored, 1)
	assert.Equal(t, note.ID, restored[0].ID)
	assert.Equal(t, "round trip", restored[0].Body)
}

func TestDataService_Import_BadFileLeavesDocumentUntouched(t *testing.T) {
	st, _, _ := setupStore(t)
	ctx := context.Background()
	notes := NewNoteService(st)
	data := NewDataService(st)

	_, err := notes.Add(ctx, "Precious", "")
	require.NoError(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0644))

	assert.Error(t, data.Import(ctx, bad))
	assert.Error(t, data.Import(ctx, filepath.Join(dir, "missing.json")))

	require.Len(t, notes.List(), 1)
	assert.Equal(t, "Precious", notes.List()[0].Title)
}

func TestDataService_Reset(t *testing.T) {
	st, repo, clock := setupStore(t)
	ctx := context.Background()
	goals := NewGoalService(st)
	data := NewDataService(st)

	_, err := goals.Add(ctx, "h1", "Doomed", "", nil)
	require.NoError(t, err)

	require.NoError(t, data.Reset(ctx))
	assert.Empty(t, goals.List("h1"))

	fresh := reload(t, repo, clock)
	assert.Empty(t, fresh.Document().GoalsByHorizon["h1"])
}
