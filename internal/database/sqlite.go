// Package database provides the analysis history store.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// DefaultPingTimeout bounds the startup connectivity check.
	DefaultPingTimeout = 5 * time.Second

	dbDirMode = 0o755
)

const historySchema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	text_snippet TEXT NOT NULL,
	company_name TEXT NOT NULL,
	verdict      TEXT NOT NULL,
	risk_score   INTEGER NOT NULL,
	trust_level  TEXT NOT NULL,
	analyzed_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_run_id ON analysis_history(run_id);
`

// Open opens (creating if needed) the SQLite database at path and
// ensures the schema exists.
func Open(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dbDirMode); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return db, nil
}
