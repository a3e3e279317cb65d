// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package arena implements the pairwise song ranking engine.

Users compare two songs at a time; the engine turns the accumulated,
possibly cyclic, partial tournament into a total order without needing
a full round-robin.

# Operations

  - Seed: fill the song pool from chart aggregates (idempotent)
  - Matchup / MatchupForSong: pick an unseen non-eliminated pair
  - RecordOutcome: store one outcome per unordered pair, exactly once
  - ComputeScores / Leaderboard: transitive-reachability ranking
  - EliminateSong: drop a song from selection, keep its history
  - Stats: summary counts

# Scoring

A song's score is the number of distinct songs it transitively beats:
win edges form a directed graph and each node's score is the size of
its reachable set, minus itself. Ties contribute no edges. The BFS
visited set handles cycles, so mutually-beating songs score equally.

Scores are recomputed from the outcome table on every call - nothing
derived is persisted, so results can never go stale.

# Invariants

The store's uniqueness constraints, not application checks, enforce
"at most one outcome per unordered pair" and "one song per
(title, artist)". RecordOutcome surfaces the former as
ErrAlreadyJudged, which callers must treat as final.
*/
package arena
