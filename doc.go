// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Song Arena API server.

Song Arena is a pairwise song voting tool: it offers two songs at a
time ("which is better?"), records each verdict exactly once per pair,
and derives a leaderboard by transitive reachability over the win
graph - no full round-robin needed.

# Starting the Server

The server runs against an embedded SQLite file by default:

	go run main.go

Or with flags:

	go run main.go -p 8780 -d billboard.db

# Configuration

Optional settings (flags or env, .env supported):

  - PORT (-p): Server port (default: 8780)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: billboard.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CHART_BASE_URL (-chart-url): Billboard mirror base URL
  - APPLE_MUSIC_TEAM_ID / APPLE_MUSIC_KEY_ID / APPLE_MUSIC_PRIVATE_KEY:
    enable the MusicKit token endpoint and playlist export
  - MUSIC_USER_TOKEN: library write access for playlist export

# Architecture

The server uses a handler-based architecture with dependency injection:

  - arena: matchup selection, outcome recording, reachability ranking
  - charts: Billboard Hot 100 mirror and top-song aggregation
  - applemusic: developer tokens and playlist export
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
