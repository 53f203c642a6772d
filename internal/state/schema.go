package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS assets (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL,
			size INTEGER NOT NULL,
			kind TEXT NOT NULL,
			subsongs TEXT NOT NULL DEFAULT '[]',
			inputs TEXT NOT NULL DEFAULT '',
			scanned_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_assets_kind ON assets(kind);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add inputs column if missing. Old rows get '' and are
	// decoded again on the next scan.
	_, _ = db.Exec(`ALTER TABLE assets ADD COLUMN inputs TEXT NOT NULL DEFAULT ''`)

	return nil
}
