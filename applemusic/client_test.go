// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package applemusic

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	keyPath, _ := writeTestKey(t)
	client, err := NewClient(Config{
		TeamID:         "TEAM123456",
		KeyID:          "KEY9876543",
		PrivateKeyPath: keyPath,
		MusicUserToken: "user-token",
	})
	if err != nil {
		t.Fatal(err)
	}

	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return client
}

const searchBody = `{
	"results": {
		"songs": {
			"data": [
				{"id": "111", "attributes": {"name": "Jump (Live)", "artistName": "Somebody Else"}},
				{"id": "222", "attributes": {"name": "Jump", "artistName": "Van Halen"}}
			]
		}
	}
}`

func TestSearchSong_BestMatch(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", defaultBaseURL+"/catalog/us/search",
		httpmock.NewStringResponder(200, searchBody))

	track, err := client.SearchSong("Jump", "Van Halen")
	if err != nil {
		t.Fatal(err)
	}
	if track == nil {
		t.Fatal("expected a track")
	}
	// the title+artist match beats the first result
	if track.ID != "222" {
		t.Errorf("expected best match id 222, got %s", track.ID)
	}
}

func TestSearchSong_CachesResults(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", defaultBaseURL+"/catalog/us/search",
		httpmock.NewStringResponder(200, searchBody))

	for i := 0; i < 3; i++ {
		if _, err := client.SearchSong("Jump", "Van Halen"); err != nil {
			t.Fatal(err)
		}
	}

	if calls := httpmock.GetTotalCallCount(); calls != 1 {
		t.Errorf("expected 1 HTTP call with caching, got %d", calls)
	}
}

func TestSearchSong_NoResults(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", defaultBaseURL+"/catalog/us/search",
		httpmock.NewStringResponder(200, `{"results": {}}`))

	track, err := client.SearchSong("Nothing", "Nobody")
	if err != nil {
		t.Fatal(err)
	}
	if track != nil {
		t.Errorf("expected nil track, got %+v", track)
	}

	// the miss is cached too
	if _, err := client.SearchSong("Nothing", "Nobody"); err != nil {
		t.Fatal(err)
	}
	if calls := httpmock.GetTotalCallCount(); calls != 1 {
		t.Errorf("expected cached miss, got %d HTTP calls", calls)
	}
}

func TestCreatePlaylistAndAddTracks(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("POST", defaultBaseURL+"/me/library/playlists",
		httpmock.NewStringResponder(201, `{"data": [{"id": "p.abc123"}]}`))
	httpmock.RegisterResponder("POST", defaultBaseURL+"/me/library/playlists/p.abc123/tracks",
		httpmock.NewStringResponder(204, ""))

	playlistID, err := client.CreatePlaylist("Best of the 90s", "test")
	if err != nil {
		t.Fatal(err)
	}
	if playlistID != "p.abc123" {
		t.Errorf("expected playlist id p.abc123, got %s", playlistID)
	}

	if err := client.AddTracks(playlistID, []string{"111", "222"}); err != nil {
		t.Fatal(err)
	}
}

func TestDo_RefreshesTokenOn401(t *testing.T) {
	client := newTestClient(t)
	firstToken := client.DeveloperToken()

	calls := 0
	httpmock.RegisterResponder("GET", defaultBaseURL+"/catalog/us/search",
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 1 {
				return httpmock.NewStringResponse(401, "expired"), nil
			}
			return httpmock.NewStringResponse(200, searchBody), nil
		})

	track, err := client.SearchSong("Jump", "Van Halen")
	if err != nil {
		t.Fatal(err)
	}
	if track == nil {
		t.Fatal("expected a track after token refresh")
	}
	if calls != 2 {
		t.Errorf("expected retry after 401, got %d calls", calls)
	}
	if client.DeveloperToken() == firstToken {
		t.Error("expected a fresh developer token after 401")
	}
}

func TestDo_ErrorStatus(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("POST", defaultBaseURL+"/me/library/playlists",
		httpmock.NewStringResponder(403, `{"errors": [{"title": "Forbidden"}]}`))

	if _, err := client.CreatePlaylist("Nope", "test"); err == nil {
		t.Error("expected error for 403 response")
	}
}
