package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. The schema is a single key-value table
// holding serialized documents; document-level migration (field defaulting)
// happens in the store, not here.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
