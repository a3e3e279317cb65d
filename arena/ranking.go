// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/danielhkuo/song-arena/models"
)

// ComputeScores derives each song's score from the full outcome
// history: the number of distinct other songs transitively beaten,
// following win edges only. Ties contribute no edge, so a song seen
// only in ties gets no entry. A visited set makes cycles safe - in
// a beats b beats c beats a, every node reaches the other two.
func ComputeScores(conn *sql.DB) (map[int64]int, error) {
	rows, err := conn.Query(`
		SELECT song_lo_id, song_hi_id, outcome
		FROM arena_matchup
		WHERE outcome != 'tie'
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	// winner -> losers
	graph := make(map[int64][]int64)
	nodes := make(map[int64]bool)
	for rows.Next() {
		var lo, hi int64
		var outcome string
		if err := rows.Scan(&lo, &hi, &outcome); err != nil {
			return nil, err
		}
		nodes[lo] = true
		nodes[hi] = true
		if outcome == models.StoredLoWins {
			graph[lo] = append(graph[lo], hi)
		} else {
			graph[hi] = append(graph[hi], lo)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// BFS from every node; O(V*(V+E)) but the pool is small
	scores := make(map[int64]int, len(nodes))
	for node := range nodes {
		visited := map[int64]bool{node: true}
		queue := slices.Clone(graph[node])
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			for _, next := range graph[cur] {
				if !visited[next] {
					queue = append(queue, next)
				}
			}
		}
		scores[node] = len(visited) - 1 // exclude self
	}
	return scores, nil
}

// Leaderboard joins scores to song attributes and returns the top
// limit entries, descending by score. Order among equal scores is
// unspecified.
func Leaderboard(conn *sql.DB, limit int) ([]models.ScoredSong, error) {
	scores, err := ComputeScores(conn)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return []models.ScoredSong{}, nil
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, fmt.Sprintf("%d", id))
	}
	rows, err := conn.Query(fmt.Sprintf(`
		SELECT id, song, artist, decade FROM arena_song
		WHERE id IN (%s)
	`, strings.Join(ids, ",")))
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard songs: %w", err)
	}
	defer rows.Close()

	var board []models.ScoredSong
	for rows.Next() {
		var s models.ScoredSong
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Decade); err != nil {
			return nil, err
		}
		s.Score = scores[s.ID]
		board = append(board, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(board, func(a, b models.ScoredSong) int {
		return b.Score - a.Score
	})
	if len(board) > limit {
		board = board[:limit]
	}
	return board, nil
}
