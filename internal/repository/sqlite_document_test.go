package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/plans/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLiteDocumentRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteDocumentRepo(database)
}

func TestSQLiteDocumentRepo_ReadMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Read(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteDocumentRepo_WriteReadRoundtrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{"version":1}`)))

	body, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), body)
}

func TestSQLiteDocumentRepo_WriteReplaces(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{"version":1}`)))
	require.NoError(t, repo.Write(ctx, []byte(`{"version":1,"notes":[]}`)))

	body, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1,"notes":[]}`), body)
}

func TestSQLiteDocumentRepo_Erase(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{}`)))
	require.NoError(t, repo.Erase(ctx))

	_, err := repo.Read(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// Erasing an already-empty store is not an error.
	require.NoError(t, repo.Erase(ctx))
}
