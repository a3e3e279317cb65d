// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "sqlite" or "postgres".
// For sqlite the URL is a file path (or ":memory:"); WAL mode is enabled.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// modernc.org/sqlite connections don't share in-memory or WAL
		// state safely across the pool; a single writer is all we need.
		conn.SetMaxOpenConns(1)
		if !strings.Contains(url, ":memory:") {
			if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
				conn.Close()
				return nil, fmt.Errorf("failed to enable WAL: %w", err)
			}
		}
		return conn, nil
	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown database type: %s", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	idCol := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if dbType == "postgres" {
		idCol = "BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(fmt.Sprintf(schema, idCol, idCol, idCol, idCol, idCol))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a uniqueness constraint failure
// from either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

const schema = `
-- Arena songs
CREATE TABLE IF NOT EXISTS arena_song (
    id %s,
    song TEXT NOT NULL,
    artist TEXT NOT NULL,
    decade INTEGER NOT NULL,
    elo_score REAL DEFAULT 1000.0,
    appearances INTEGER DEFAULT 0,
    wins INTEGER DEFAULT 0,
    losses INTEGER DEFAULT 0,
    eliminated INTEGER DEFAULT 0,
    UNIQUE (song, artist)
);

-- Resolved pairwise comparisons, one row per unordered pair
CREATE TABLE IF NOT EXISTS arena_matchup (
    id %s,
    song_lo_id INTEGER NOT NULL,
    song_hi_id INTEGER NOT NULL,
    outcome TEXT NOT NULL CHECK (outcome IN ('lo_wins', 'hi_wins', 'tie')),
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (song_lo_id, song_hi_id)
);

CREATE INDEX IF NOT EXISTS idx_arena_song_eliminated ON arena_song(eliminated);

-- Chart mirror
CREATE TABLE IF NOT EXISTS chart (
    id %s,
    name TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    source TEXT NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS chart_week (
    id %s,
    chart_id INTEGER NOT NULL REFERENCES chart(id),
    chart_date TEXT NOT NULL,
    fetched_at TEXT DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (chart_id, chart_date)
);

CREATE TABLE IF NOT EXISTS entry (
    id %s,
    chart_week_id INTEGER NOT NULL REFERENCES chart_week(id),
    position INTEGER NOT NULL,
    song TEXT NOT NULL,
    artist TEXT NOT NULL,
    last_week INTEGER,
    peak_position INTEGER,
    weeks_on_chart INTEGER
);

CREATE INDEX IF NOT EXISTS idx_chart_week_date ON chart_week(chart_date);
CREATE INDEX IF NOT EXISTS idx_entry_week ON entry(chart_week_id);
CREATE INDEX IF NOT EXISTS idx_entry_song ON entry(song);
`
