// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package applemusic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultBaseURL = "https://api.music.apple.com/v1"

// Track is one catalog song from a search result
type Track struct {
	ID     string
	Name   string
	Artist string
}

// Client calls the Apple Music API with a developer token and, for
// library operations, a music user token. A 401 triggers one token
// refresh and retry before the error is surfaced.
type Client struct {
	cfg         Config
	baseURL     string
	devToken    string
	httpClient  *http.Client
	searchCache *cache.Cache
}

func NewClient(cfg Config) (*Client, error) {
	devToken, err := GenerateDeveloperToken(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		cfg:         cfg,
		baseURL:     defaultBaseURL,
		devToken:    devToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		searchCache: cache.New(24*time.Hour, time.Hour),
	}, nil
}

func (c *Client) refreshDeveloperToken() error {
	devToken, err := GenerateDeveloperToken(c.cfg)
	if err != nil {
		return err
	}
	c.devToken = devToken
	return nil
}

// DeveloperToken returns the current developer token, for handing to
// MusicKit on the client side.
func (c *Client) DeveloperToken() string {
	return c.devToken
}

func (c *Client) do(method, path string, query url.Values, body any) (*http.Response, error) {
	return c.doRetry(method, path, query, body, true)
}

func (c *Client) doRetry(method, path string, query url.Values, body any, retryOn401 bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.devToken)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.MusicUserToken != "" {
		req.Header.Set("Music-User-Token", c.cfg.MusicUserToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && retryOn401 {
		resp.Body.Close()
		slog.Warn("apple music returned 401, refreshing developer token", "path", path)
		if err := c.refreshDeveloperToken(); err != nil {
			return nil, err
		}
		return c.doRetry(method, path, query, body, false)
	}

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s failed: status %d: %s", method, path, resp.StatusCode, detail)
	}

	return resp, nil
}

type searchResponse struct {
	Results struct {
		Songs struct {
			Data []struct {
				ID         string `json:"id"`
				Attributes struct {
					Name       string `json:"name"`
					ArtistName string `json:"artistName"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"songs"`
	} `json:"results"`
}

// SearchSong finds the catalog track best matching a title and artist.
// Results are cached so repeated playlist exports don't re-query.
// Returns nil when nothing matches.
func (c *Client) SearchSong(title, artist string) (*Track, error) {
	cacheKey := strings.ToLower(artist + "|" + title)
	if hit, ok := c.searchCache.Get(cacheKey); ok {
		if track, ok := hit.(*Track); ok {
			return track, nil
		}
		return nil, nil // cached miss
	}

	query := url.Values{
		"term":  {artist + " " + title},
		"types": {"songs"},
		"limit": {"5"},
	}
	resp, err := c.do(http.MethodGet, "/catalog/us/search", query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	track := bestMatch(result, title, artist)
	if track == nil {
		c.searchCache.Set(cacheKey, "miss", cache.DefaultExpiration)
		return nil, nil
	}
	c.searchCache.Set(cacheKey, track, cache.DefaultExpiration)
	return track, nil
}

// bestMatch prefers a substring match on both title and artist, then
// falls back to the first result.
func bestMatch(result searchResponse, title, artist string) *Track {
	data := result.Results.Songs.Data
	if len(data) == 0 {
		return nil
	}

	titleLower := strings.ToLower(title)
	artistLower := strings.ToLower(artist)
	for _, song := range data {
		if strings.Contains(strings.ToLower(song.Attributes.Name), titleLower) &&
			strings.Contains(strings.ToLower(song.Attributes.ArtistName), artistLower) {
			return &Track{ID: song.ID, Name: song.Attributes.Name, Artist: song.Attributes.ArtistName}
		}
	}
	first := data[0]
	return &Track{ID: first.ID, Name: first.Attributes.Name, Artist: first.Attributes.ArtistName}
}

type createPlaylistResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CreatePlaylist creates a library playlist and returns its id
func (c *Client) CreatePlaylist(name, description string) (string, error) {
	body := map[string]any{
		"attributes": map[string]string{
			"name":        name,
			"description": description,
		},
	}
	resp, err := c.do(http.MethodPost, "/me/library/playlists", nil, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result createPlaylistResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode playlist response: %w", err)
	}
	if len(result.Data) == 0 {
		return "", fmt.Errorf("playlist created but no id returned")
	}

	slog.Info("created playlist", "name", name, "id", result.Data[0].ID)
	return result.Data[0].ID, nil
}

// AddTracks appends catalog songs to a library playlist
func (c *Client) AddTracks(playlistID string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}

	tracks := make([]map[string]string, len(trackIDs))
	for i, id := range trackIDs {
		tracks[i] = map[string]string{"id": id, "type": "songs"}
	}
	body := map[string]any{"data": tracks}

	resp, err := c.do(http.MethodPost, "/me/library/playlists/"+playlistID+"/tracks", nil, body)
	if err != nil {
		return err
	}
	resp.Body.Close()

	slog.Info("added tracks to playlist", "playlist_id", playlistID, "count", len(trackIDs))
	return nil
}
