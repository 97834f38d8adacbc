package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/plans/internal/db"
)

// StorageKey is the fixed key the planning document is stored under.
// Kept from the original storage layout so existing exports stay importable.
const StorageKey = "plan_pwa_v1"

// SQLiteDocumentRepo implements DocumentRepo using a SQLite database.
type SQLiteDocumentRepo struct {
	db db.DBTX
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo.
func NewSQLiteDocumentRepo(conn db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn}
}

func (r *SQLiteDocumentRepo) Read(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, StorageKey)

	var body []byte
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return body, nil
}

func (r *SQLiteDocumentRepo) Write(ctx context.Context, body []byte) error {
	query := `INSERT OR REPLACE INTO documents (key, body, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, StorageKey, body, nowUTC()); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentRepo) Erase(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, StorageKey); err != nil {
		return fmt.Errorf("erasing document: %w", err)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
