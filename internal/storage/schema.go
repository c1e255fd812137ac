// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the WorkoutEntry table, its exercise index, and the settings table.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const settingInstallationID = "installation_id"

// initSchema creates the tables if absent. Safe to run on every open.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS WorkoutEntry (
		workout_id INTEGER PRIMARY KEY AUTOINCREMENT,
		exercise TEXT NOT NULL DEFAULT '',
		weight INTEGER NOT NULL DEFAULT 0,
		reps INTEGER NOT NULL DEFAULT 0,
		sets INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_exercise ON WorkoutEntry (exercise);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		settingInstallationID, uuid.New().String(),
	)
	if err != nil {
		return fmt.Errorf("seed installation id: %w", err)
	}
	return nil
}
