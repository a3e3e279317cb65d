// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := setupDB(t)

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Errorf("Second CreateSchema failed: %v", err)
	}
}

func TestUniqueSongConstraint(t *testing.T) {
	conn := setupDB(t)

	insert := `INSERT INTO arena_song (song, artist, decade) VALUES ($1, $2, $3)`
	if _, err := conn.Exec(insert, "Jump", "Van Halen", 1980); err != nil {
		t.Fatal(err)
	}

	_, err := conn.Exec(insert, "Jump", "Van Halen", 1980)
	if !IsUniqueViolation(err) {
		t.Errorf("Expected unique violation, got %v", err)
	}

	// same title by a different artist is a different song
	if _, err := conn.Exec(insert, "Jump", "Kris Kross", 1990); err != nil {
		t.Errorf("Expected distinct artist to insert cleanly: %v", err)
	}
}

func TestUniquePairConstraint(t *testing.T) {
	conn := setupDB(t)

	songs := `INSERT INTO arena_song (song, artist, decade) VALUES ($1, $2, $3)`
	if _, err := conn.Exec(songs, "A", "X", 1990); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(songs, "B", "Y", 1990); err != nil {
		t.Fatal(err)
	}

	insert := `INSERT INTO arena_matchup (song_lo_id, song_hi_id, outcome) VALUES (1, 2, $1)`
	if _, err := conn.Exec(insert, "lo_wins"); err != nil {
		t.Fatal(err)
	}

	_, err := conn.Exec(insert, "tie")
	if !IsUniqueViolation(err) {
		t.Errorf("Expected unique violation for repeated pair, got %v", err)
	}
}

func TestOutcomeCheckConstraint(t *testing.T) {
	conn := setupDB(t)

	_, err := conn.Exec(`INSERT INTO arena_matchup (song_lo_id, song_hi_id, outcome) VALUES (1, 2, 'draw')`)
	if err == nil {
		t.Error("Expected CHECK constraint to reject unknown outcome")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("nil error is not a violation")
	}
}
