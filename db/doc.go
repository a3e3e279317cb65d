// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open("sqlite", "billboard.db")

SQLite (modernc.org/sqlite, pure Go) is the primary backend and runs the
whole store in a single file; PostgreSQL (lib/pq) is supported as an
alternate backend behind the same queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - arena_song: the song pool, unique on (song, artist)
  - arena_matchup: one immutable row per judged unordered pair,
    unique on (song_lo_id, song_hi_id)
  - chart / chart_week / entry: mirrored Billboard chart data that
    feeds the arena seeder

# Constraints

Both uniqueness invariants are enforced by the schema, not by callers:
duplicate song inserts and duplicate pair inserts fail at the database.
IsUniqueViolation classifies those failures across both drivers.
*/
package db
