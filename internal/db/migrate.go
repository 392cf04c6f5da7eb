package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS calendar_events (
		id         TEXT PRIMARY KEY,
		summary    TEXT NOT NULL,
		starts_at  TEXT NOT NULL,
		ends_at    TEXT NOT NULL,
		all_day    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		CHECK (ends_at >= starts_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_starts ON calendar_events(starts_at)`,

	// Imported events remember their origin so a re-import can replace them.
	`ALTER TABLE calendar_events ADD COLUMN source TEXT NOT NULL DEFAULT 'manual'`,
	`CREATE INDEX IF NOT EXISTS idx_events_source ON calendar_events(source)`,
}
