// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

ArenaHandler maps requests onto the five arena operations (matchup
selection, outcome recording, leaderboard, elimination, seeding) plus
a stats summary. PlaylistHandler exports leaderboards to Apple Music
and serves the MusicKit developer token.

# Error Mapping

  - validation failures (bad JSON, missing ids, unknown outcome): 400
  - duplicate pair (arena.ErrAlreadyJudged): 409, never retried
  - exhausted matchup pool: 404 with "No more matchups available"
  - Apple Music not configured: 503
  - store failures: 500
*/
package handlers
