package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS airports (
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	latitude REAL,
	longitude REAL
);
CREATE TABLE IF NOT EXISTS track_samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	flight_number TEXT NOT NULL,
	mode TEXT NOT NULL,
	progress REAL,
	latitude REAL,
	longitude REAL,
	bearing REAL
);
CREATE INDEX IF NOT EXISTS track_samples_flight ON track_samples (flight_number);
`

func initDB() (*sql.DB, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}

	dbDir := filepath.Join(configDir, appDirName)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	return openDB(filepath.Join(dbDir, "tracking.db"))
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps writes from the tick goroutines serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}
