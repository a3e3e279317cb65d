// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"database/sql"
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/song-arena/models"
)

// Matchup picks an unseen pair of non-eliminated songs, or (nil, nil)
// when no unjudged pair remains. Candidates are shuffled so repeated
// calls surface different pairs; the scan itself is exhaustive, which
// is quadratic in the worst case and fine at arena pool sizes.
func Matchup(conn *sql.DB) (*models.Song, *models.Song, error) {
	candidates, err := activeSongs(conn, 0)
	if err != nil {
		return nil, nil, err
	}
	if len(candidates) < 2 {
		return nil, nil, nil
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			judged, err := pairJudged(conn, candidates[i].ID, candidates[j].ID)
			if err != nil {
				return nil, nil, err
			}
			if !judged {
				return &candidates[i], &candidates[j], nil
			}
		}
	}
	return nil, nil, nil
}

// MatchupForSong pins one side of the matchup to the given song and
// pairs it with a random opponent it has not faced. Returns (nil, nil)
// if the song is missing, eliminated, or out of fresh opponents.
func MatchupForSong(conn *sql.DB, songID int64) (*models.Song, *models.Song, error) {
	var song models.Song
	err := conn.QueryRow(`
		SELECT id, song, artist, decade FROM arena_song
		WHERE id = $1 AND eliminated = 0
	`, songID).Scan(&song.ID, &song.Title, &song.Artist, &song.Decade)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load song %d: %w", songID, err)
	}

	candidates, err := activeSongs(conn, songID)
	if err != nil {
		return nil, nil, err
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := range candidates {
		judged, err := pairJudged(conn, song.ID, candidates[i].ID)
		if err != nil {
			return nil, nil, err
		}
		if !judged {
			return &song, &candidates[i], nil
		}
	}
	return nil, nil, nil
}

// activeSongs returns all non-eliminated songs, excluding excludeID if non-zero
func activeSongs(conn *sql.DB, excludeID int64) ([]models.Song, error) {
	rows, err := conn.Query(`
		SELECT id, song, artist, decade FROM arena_song
		WHERE eliminated = 0 AND id != $1
	`, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var s models.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Decade); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// pairJudged checks whether an outcome exists for the unordered pair
func pairJudged(conn *sql.DB, aID, bID int64) (bool, error) {
	var exists bool
	err := conn.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM arena_matchup
			WHERE song_lo_id = $1 AND song_hi_id = $2
		)
	`, min(aID, bID), max(aID, bID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pair: %w", err)
	}
	return exists, nil
}
