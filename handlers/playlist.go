// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-arena/applemusic"
	"github.com/danielhkuo/song-arena/arena"
	"github.com/danielhkuo/song-arena/cliparse"
	"github.com/danielhkuo/song-arena/middleware"
	"github.com/danielhkuo/song-arena/models"
)

// PlaylistHandler exports leaderboards to Apple Music. Client is
// created lazily from config; tests inject one directly.
type PlaylistHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	Client *applemusic.Client
}

func NewPlaylistHandler(db *sql.DB, cfg cliparse.Config) *PlaylistHandler {
	return &PlaylistHandler{db: db, cfg: cfg}
}

func (h *PlaylistHandler) client() (*applemusic.Client, error) {
	if h.Client != nil {
		return h.Client, nil
	}
	client, err := applemusic.NewClient(applemusic.Config{
		TeamID:         h.cfg.AppleTeamID,
		KeyID:          h.cfg.AppleKeyID,
		PrivateKeyPath: h.cfg.ApplePrivateKeyPath,
		MusicUserToken: h.cfg.MusicUserToken,
	})
	if err != nil {
		return nil, err
	}
	h.Client = client
	return client, nil
}

// GetToken handles GET /api/token - hands the MusicKit developer
// token to the browser.
func (h *PlaylistHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil && !h.cfg.AppleMusicConfigured() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Apple Music credentials not configured")
		return
	}

	client, err := h.client()
	if err != nil {
		slog.Error("failed to create apple music client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate developer token")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: client.DeveloperToken()})
}

// CreatePlaylist handles POST /api/playlist - builds an Apple Music
// playlist from the current leaderboard.
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil && !h.cfg.AppleMusicConfigured() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Apple Music credentials not configured")
		return
	}

	var req models.PlaylistRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Limit < 1 {
		req.Limit = defaultLeaderboardLimit
	}

	board, err := arena.Leaderboard(h.db, req.Limit)
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if len(board) == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Leaderboard is empty; vote first")
		return
	}

	client, err := h.client()
	if err != nil {
		slog.Error("failed to create apple music client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Apple Music client error")
		return
	}

	var trackIDs []string
	var notFound []string
	for _, entry := range board {
		track, err := client.SearchSong(entry.Title, entry.Artist)
		if err != nil {
			slog.Warn("catalog search failed", "song", entry.Title, "artist", entry.Artist, "error", err)
			notFound = append(notFound, entry.Title+" - "+entry.Artist)
			continue
		}
		if track == nil {
			notFound = append(notFound, entry.Title+" - "+entry.Artist)
			continue
		}
		trackIDs = append(trackIDs, track.ID)
	}

	if len(trackIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadGateway, "No leaderboard songs found in the catalog")
		return
	}

	playlistID, err := client.CreatePlaylist(req.Name, "Song Arena leaderboard export")
	if err != nil {
		slog.Error("failed to create playlist", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to create playlist")
		return
	}
	if err := client.AddTracks(playlistID, trackIDs); err != nil {
		slog.Error("failed to add tracks", "error", err, "playlist_id", playlistID)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to add tracks to playlist")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.PlaylistResponse{
		PlaylistID: playlistID,
		Added:      len(trackIDs),
		NotFound:   notFound,
	})
}
