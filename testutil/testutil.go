// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/song-arena/cliparse"
	"github.com/danielhkuo/song-arena/db"
	"github.com/danielhkuo/song-arena/models"
)

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8780,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		ChartBaseURL: "http://charts.test",
	}
}

// InsertTestSong adds a song to the arena pool and returns its id
func InsertTestSong(t *testing.T, conn *sql.DB, title, artist string, decade int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO arena_song (song, artist, decade)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, artist, decade).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test song: %v", err)
	}

	return id
}

// InsertTestOutcome records a judged pair directly. outcome is the
// stored form: "lo_wins", "hi_wins", or "tie".
func InsertTestOutcome(t *testing.T, conn *sql.DB, loID, hiID int64, outcome string) {
	t.Helper()

	if loID > hiID {
		t.Fatalf("InsertTestOutcome wants canonical order, got (%d, %d)", loID, hiID)
	}
	_, err := conn.Exec(`
		INSERT INTO arena_matchup (song_lo_id, song_hi_id, outcome)
		VALUES ($1, $2, $3)
	`, loID, hiID, outcome)
	if err != nil {
		t.Fatalf("Failed to insert test outcome: %v", err)
	}
}

// InsertTestWin records that winner beat loser, canonicalizing the pair
func InsertTestWin(t *testing.T, conn *sql.DB, winnerID, loserID int64) {
	t.Helper()

	outcome := models.StoredHiWins
	lo, hi := winnerID, loserID
	if winnerID < loserID {
		outcome = models.StoredLoWins
	} else {
		lo, hi = loserID, winnerID
	}
	InsertTestOutcome(t, conn, lo, hi, outcome)
}

// InsertTestChartWeek adds a chart week with entries. Each entry is
// (position, song, artist); position doubles as peak position.
func InsertTestChartWeek(t *testing.T, conn *sql.DB, date string, entries [][3]string) {
	t.Helper()

	var chartID int64
	err := conn.QueryRow(`SELECT id FROM chart WHERE name = 'hot-100'`).Scan(&chartID)
	if err == sql.ErrNoRows {
		err = conn.QueryRow(`
			INSERT INTO chart (name, display_name, source)
			VALUES ('hot-100', 'Billboard Hot 100', 'test')
			RETURNING id
		`).Scan(&chartID)
	}
	if err != nil {
		t.Fatalf("Failed to get/create chart: %v", err)
	}

	var weekID int64
	err = conn.QueryRow(`
		INSERT INTO chart_week (chart_id, chart_date)
		VALUES ($1, $2)
		RETURNING id
	`, chartID, date).Scan(&weekID)
	if err != nil {
		t.Fatalf("Failed to insert chart week: %v", err)
	}

	for _, e := range entries {
		_, err := conn.Exec(`
			INSERT INTO entry (chart_week_id, position, song, artist, peak_position, weeks_on_chart)
			VALUES ($1, $2, $3, $4, $2, 1)
		`, weekID, e[0], e[1], e[2])
		if err != nil {
			t.Fatalf("Failed to insert entry: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
