// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"database/sql"
	"fmt"
)

// EliminateSong removes a song from future matchup selection. Its
// recorded outcomes and score are untouched, and eliminating an
// already-eliminated song is a no-op.
func EliminateSong(conn *sql.DB, songID int64) error {
	_, err := conn.Exec(`UPDATE arena_song SET eliminated = 1 WHERE id = $1`, songID)
	if err != nil {
		return fmt.Errorf("failed to eliminate song %d: %w", songID, err)
	}
	return nil
}
