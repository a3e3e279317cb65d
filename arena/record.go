// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/song-arena/db"
	"github.com/danielhkuo/song-arena/models"
)

var (
	// ErrAlreadyJudged means this unordered pair has a recorded outcome.
	// Callers must treat it as "already recorded", not retry.
	ErrAlreadyJudged = errors.New("pair already judged")

	ErrInvalidOutcome = errors.New("invalid outcome")
	ErrSongNotFound   = errors.New("song not found")
)

// RecordOutcome durably records one pairwise comparison. The pair is
// canonicalized to (lo, hi) so record(a, b) and record(b, a) hit the
// same uniqueness constraint; the second write fails with
// ErrAlreadyJudged regardless of submission order.
func RecordOutcome(conn *sql.DB, songAID, songBID int64, outcome string) error {
	if songAID <= 0 || songBID <= 0 || songAID == songBID {
		return fmt.Errorf("%w: invalid song pair (%d, %d)", ErrSongNotFound, songAID, songBID)
	}

	lo := min(songAID, songBID)
	hi := max(songAID, songBID)

	var stored string
	switch outcome {
	case models.OutcomeAWins:
		stored = models.StoredHiWins
		if songAID == lo {
			stored = models.StoredLoWins
		}
	case models.OutcomeBWins:
		stored = models.StoredHiWins
		if songBID == lo {
			stored = models.StoredLoWins
		}
	case models.OutcomeTie:
		stored = models.StoredTie
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	var known int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM arena_song WHERE id IN ($1, $2)
	`, lo, hi).Scan(&known)
	if err != nil {
		return fmt.Errorf("failed to verify songs: %w", err)
	}
	if known != 2 {
		return fmt.Errorf("%w: pair (%d, %d)", ErrSongNotFound, songAID, songBID)
	}

	// The UNIQUE(song_lo_id, song_hi_id) constraint is the enforcement
	// point; a prior existence check would race.
	_, err = conn.Exec(`
		INSERT INTO arena_matchup (song_lo_id, song_hi_id, outcome)
		VALUES ($1, $2, $3)
	`, lo, hi, stored)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("%w: (%d, %d)", ErrAlreadyJudged, lo, hi)
		}
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}
