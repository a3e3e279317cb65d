// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain types and API request/response types.

# Domain Types

Song is one arena entrant; (Title, Artist) is unique in the store. The
ELO fields are legacy attributes kept for historical data and hidden
from JSON - the reachability ranking never reads them.

Outcome is one judged pair, stored with ids in canonical (lo, hi)
order and an outcome of lo_wins, hi_wins, or tie. Outcomes are
immutable once written.

ScoredSong is a song joined with its derived reachability score;
scores are never persisted.

# API Types

Request/response structs mirror the HTTP surface one-to-one. Errors
use ErrorResponse with an HTTP status text and optional message.
*/
package models
