package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) a SQLite database at the given path and enables WAL
// journal mode for better concurrency under read-heavy analytics traffic.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    entry_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    entry_date    TEXT NOT NULL,
    app           TEXT NOT NULL,
    time_minutes  REAL NOT NULL,
    category      TEXT,
    pickups       INTEGER,
    creation_time TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_user ON entries(user_id);
`

// EnsureSchema creates the entries table when missing.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
