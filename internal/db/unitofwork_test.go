package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/plans/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return db.NewSQLiteUnitOfWork(database)
}

// readBody reads the stored body for a key, reusing WithinTx for the read.
func readBody(uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	var body string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, key)
		if err := row.Scan(&body); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return body, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, '')`, "k1", "v1")
		return err
	})
	require.NoError(t, err)

	body, found := readBody(uow, "k1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "v1", body)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, '')`, "k2", "v2")
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readBody(uow, "k2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx,
				`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, '')`, "k3", "v3")
			panic("boom")
		})
	})

	_, found := readBody(uow, "k3")
	assert.False(t, found, "row should not exist after panic rollback")
}
