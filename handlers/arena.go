// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/song-arena/arena"
	"github.com/danielhkuo/song-arena/cliparse"
	"github.com/danielhkuo/song-arena/middleware"
	"github.com/danielhkuo/song-arena/models"
)

const defaultLeaderboardLimit = 10

type ArenaHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewArenaHandler(db *sql.DB, cfg cliparse.Config) *ArenaHandler {
	return &ArenaHandler{db: db, cfg: cfg}
}

// GetMatchup handles GET /api/matchup?keep_song_id=N
func (h *ArenaHandler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	var songA, songB *models.Song
	var err error

	if keep := r.URL.Query().Get("keep_song_id"); keep != "" {
		keepID, parseErr := strconv.ParseInt(keep, 10, 64)
		if parseErr != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "keep_song_id must be an integer")
			return
		}
		songA, songB, err = arena.MatchupForSong(h.db, keepID)
	} else {
		songA, songB, err = arena.Matchup(h.db)
	}

	if err != nil {
		slog.Error("failed to select matchup", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if songA == nil {
		// Pool exhausted or too small; same signal either way
		middleware.ErrorResponse(w, http.StatusNotFound, "No more matchups available")
		return
	}

	scores, err := arena.ComputeScores(h.db)
	if err != nil {
		slog.Error("failed to compute scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MatchupResponse{
		SongA: scoredSong(*songA, scores),
		SongB: scoredSong(*songB, scores),
	})
}

// SubmitResult handles POST /api/matchup-result
func (h *ArenaHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req models.ResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SongAID == 0 || req.SongBID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song_a_id and song_b_id are required")
		return
	}

	err := arena.RecordOutcome(h.db, req.SongAID, req.SongBID, req.Outcome)
	switch {
	case errors.Is(err, arena.ErrAlreadyJudged):
		middleware.ErrorResponse(w, http.StatusConflict, "This pair has already been judged")
		return
	case errors.Is(err, arena.ErrInvalidOutcome), errors.Is(err, arena.ErrSongNotFound):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to record outcome", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record outcome")
		return
	}

	board, err := arena.Leaderboard(h.db, defaultLeaderboardLimit)
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("outcome recorded",
		"song_a_id", req.SongAID,
		"song_b_id", req.SongBID,
		"outcome", req.Outcome,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.ResultResponse{Leaderboard: board})
}

// GetLeaderboard handles GET /api/leaderboard?limit=N
func (h *ArenaHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	board, err := arena.Leaderboard(h.db, limit)
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, board)
}

// Eliminate handles POST /api/eliminate
func (h *ArenaHandler) Eliminate(w http.ResponseWriter, r *http.Request) {
	var req models.EliminateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SongID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song_id is required")
		return
	}

	if err := arena.EliminateSong(h.db, req.SongID); err != nil {
		slog.Error("failed to eliminate song", "error", err, "song_id", req.SongID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to eliminate song")
		return
	}

	slog.Info("song eliminated", "song_id", req.SongID)
	middleware.JSONResponse(w, http.StatusOK, models.EliminateResponse{OK: true})
}

// GetStats handles GET /api/stats
func (h *ArenaHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := arena.Stats(h.db)
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stats)
}

// SeedArena handles POST /api/seed
func (h *ArenaHandler) SeedArena(w http.ResponseWriter, r *http.Request) {
	result, err := arena.Seed(h.db)
	if err != nil {
		slog.Error("failed to seed arena", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to seed arena")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SeedResponse{
		Added:   result.Added,
		Skipped: result.Skipped,
		Decades: result.Decades,
	})
}

func scoredSong(s models.Song, scores map[int64]int) models.ScoredSong {
	return models.ScoredSong{
		ID:     s.ID,
		Title:  s.Title,
		Artist: s.Artist,
		Decade: s.Decade,
		Score:  scores[s.ID],
	}
}
