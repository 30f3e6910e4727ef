package database

import (
	"database/sql"
	"fmt"
)

// Datasets hold uploaded raw rows verbatim. Reports are recomputed on every
// request, so pipeline output is never persisted.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		row_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS dataset_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		raw TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_dataset_rows_dataset ON dataset_rows(dataset_id, seq)`,
}

func applySchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
