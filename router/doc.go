// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method-aware patterns on the standard ServeMux:

	GET  /health
	GET  /api/matchup            (?keep_song_id=N pins one side)
	POST /api/matchup-result
	GET  /api/leaderboard        (?limit=N, default 10)
	POST /api/eliminate
	GET  /api/stats
	POST /api/seed
	GET  /api/token
	POST /api/playlist
*/
package router
