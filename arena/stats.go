// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/song-arena/models"
)

// Stats returns summary counts for the arena
func Stats(conn *sql.DB) (models.StatsResponse, error) {
	var stats models.StatsResponse

	if err := conn.QueryRow(`SELECT COUNT(*) FROM arena_song`).Scan(&stats.TotalSongs); err != nil {
		return stats, fmt.Errorf("failed to count songs: %w", err)
	}
	if err := conn.QueryRow(`SELECT COUNT(*) FROM arena_matchup`).Scan(&stats.TotalMatchups); err != nil {
		return stats, fmt.Errorf("failed to count matchups: %w", err)
	}
	if err := conn.QueryRow(`SELECT COUNT(*) FROM arena_song WHERE eliminated = 1`).Scan(&stats.Eliminated); err != nil {
		return stats, fmt.Errorf("failed to count eliminated: %w", err)
	}

	rows, err := conn.Query(`SELECT DISTINCT decade FROM arena_song ORDER BY decade`)
	if err != nil {
		return stats, fmt.Errorf("failed to list decades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var decade int
		if err := rows.Scan(&decade); err != nil {
			return stats, err
		}
		stats.Decades = append(stats.Decades, decade)
	}
	return stats, rows.Err()
}
