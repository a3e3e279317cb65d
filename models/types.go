// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Outcome values as submitted by callers
const (
	OutcomeAWins = "a_wins"
	OutcomeBWins = "b_wins"
	OutcomeTie   = "tie"
)

// Outcome values as stored, after canonicalizing the pair to (lo, hi)
const (
	StoredLoWins = "lo_wins"
	StoredHiWins = "hi_wins"
	StoredTie    = "tie"
)

// Domain types

type Song struct {
	ID          int64   `json:"id"`
	Title       string  `json:"song"`
	Artist      string  `json:"artist"`
	Decade      int     `json:"decade"`
	EloScore    float64 `json:"-"` // legacy rating, not used by the reachability ranking
	Appearances int     `json:"-"`
	Wins        int     `json:"-"`
	Losses      int     `json:"-"`
	Eliminated  bool    `json:"-"`
}

type Outcome struct {
	ID       int64  `json:"id"`
	SongLoID int64  `json:"song_lo_id"`
	SongHiID int64  `json:"song_hi_id"`
	Outcome  string `json:"outcome"`
}

// ScoredSong is a song annotated with its current reachability score
type ScoredSong struct {
	ID     int64  `json:"id"`
	Title  string `json:"song"`
	Artist string `json:"artist"`
	Decade int    `json:"decade"`
	Score  int    `json:"score"`
}

// Request types

type ResultRequest struct {
	SongAID int64  `json:"song_a_id"`
	SongBID int64  `json:"song_b_id"`
	Outcome string `json:"outcome"`
}

type EliminateRequest struct {
	SongID int64 `json:"song_id"`
}

type PlaylistRequest struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

// Response types

type MatchupResponse struct {
	SongA ScoredSong `json:"song_a"`
	SongB ScoredSong `json:"song_b"`
}

type ResultResponse struct {
	Leaderboard []ScoredSong `json:"leaderboard"`
}

type EliminateResponse struct {
	OK bool `json:"ok"`
}

type StatsResponse struct {
	TotalSongs    int   `json:"total_songs"`
	TotalMatchups int   `json:"total_matches"`
	Eliminated    int   `json:"eliminated"`
	Decades       []int `json:"decades"`
}

type SeedResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Decades int `json:"decades"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PlaylistResponse struct {
	PlaylistID string   `json:"playlist_id"`
	Added      int      `json:"added"`
	NotFound   []string `json:"not_found,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
