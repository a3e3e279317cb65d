// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/song-arena/cliparse"
	"github.com/danielhkuo/song-arena/handlers"
	"github.com/danielhkuo/song-arena/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	arenaHandler := handlers.NewArenaHandler(db, cfg)
	playlistHandler := handlers.NewPlaylistHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Arena operations
	mux.HandleFunc("GET /api/matchup", middleware.WithLogging(arenaHandler.GetMatchup))
	mux.HandleFunc("POST /api/matchup-result", middleware.WithLogging(arenaHandler.SubmitResult))
	mux.HandleFunc("GET /api/leaderboard", middleware.WithLogging(arenaHandler.GetLeaderboard))
	mux.HandleFunc("POST /api/eliminate", middleware.WithLogging(arenaHandler.Eliminate))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(arenaHandler.GetStats))
	mux.HandleFunc("POST /api/seed", middleware.WithLogging(arenaHandler.SeedArena))

	// Apple Music integration
	mux.HandleFunc("GET /api/token", middleware.WithLogging(playlistHandler.GetToken))
	mux.HandleFunc("POST /api/playlist", middleware.WithLogging(playlistHandler.CreatePlaylist))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("song-arena API v1"))
	})

	return mux
}
