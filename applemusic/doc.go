// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package applemusic is a thin Apple Music API client used to export
arena leaderboards as playlists.

# Authentication

Apple Music authenticates with an ES256 JWT "developer token" signed
by a team private key (GenerateDeveloperToken); library operations
additionally require a music user token obtained out of band. The
client refreshes the developer token once on a 401 before giving up.

# Operations

  - SearchSong: best-effort catalog lookup by title and artist,
    cached for 24h per (artist, title)
  - CreatePlaylist / AddTracks: build a library playlist from
    catalog song ids
*/
package applemusic
