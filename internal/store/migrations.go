package store

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id                   TEXT PRIMARY KEY,
		algorithm            TEXT NOT NULL,
		time_quantum         INTEGER NOT NULL DEFAULT 0,
		process_count        INTEGER NOT NULL,
		avg_turn_around_time REAL NOT NULL,
		avg_waiting_time     REAL NOT NULL,
		jobs                 TEXT NOT NULL,
		response             TEXT NOT NULL,
		created_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
