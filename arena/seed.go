// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/song-arena/charts"
	"github.com/danielhkuo/song-arena/db"
)

// SeedResult reports what a seeding run did
type SeedResult struct {
	Added   int
	Skipped int
	Decades int
}

// Seed populates the arena song pool from the chart aggregates, one
// decade at a time. The UNIQUE(song, artist) constraint makes the run
// idempotent: duplicate chart entries (songs charting across years)
// are counted as skipped, never raised.
func Seed(conn *sql.DB) (SeedResult, error) {
	decades, err := charts.DecadesWithData(conn)
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to list decades: %w", err)
	}

	var result SeedResult
	result.Decades = len(decades)
	for _, decade := range decades {
		songs, err := charts.TopSongsForDecade(conn, decade)
		if err != nil {
			return result, fmt.Errorf("failed to aggregate decade %d: %w", decade, err)
		}
		for _, song := range songs {
			_, err := conn.Exec(`
				INSERT INTO arena_song (song, artist, decade)
				VALUES ($1, $2, $3)
			`, song.Title, song.Artist, decade)
			if err != nil {
				if db.IsUniqueViolation(err) {
					result.Skipped++
					continue
				}
				return result, fmt.Errorf("failed to insert song: %w", err)
			}
			result.Added++
		}
	}

	slog.Info("arena seeded",
		"added", result.Added,
		"skipped", result.Skipped,
		"decades", result.Decades,
	)
	return result, nil
}
