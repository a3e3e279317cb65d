// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charts

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	chartName        = "hot-100"
	chartDisplayName = "Billboard Hot 100"
	chartSource      = "mhollingshead/billboard-hot-100"
)

// rawEntry matches the mirror's per-date JSON
type rawEntry struct {
	Song         string `json:"song"`
	Artist       string `json:"artist"`
	ThisWeek     int    `json:"this_week"`
	LastWeek     *int   `json:"last_week"`
	PeakPosition *int   `json:"peak_position"`
	WeeksOnChart *int   `json:"weeks_on_chart"`
}

type rawChart struct {
	Date    string     `json:"date"`
	Entries []rawEntry `json:"data"`
}

// DownloadReport summarizes a download run
type DownloadReport struct {
	Downloaded int `json:"downloaded"`
	Existing   int `json:"existing"`
	Failed     int `json:"failed"`
}

// Downloader mirrors Billboard Hot 100 chart weeks into the local store,
// skipping weeks that were already fetched.
type Downloader struct {
	db      *sql.DB
	baseURL string
	client  *http.Client
	chartID int64
}

func NewDownloader(db *sql.DB, baseURL string) *Downloader {
	return &Downloader{
		db:      db,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// initChart ensures the hot-100 chart row exists and caches its id
func (d *Downloader) initChart() error {
	if d.chartID != 0 {
		return nil
	}

	err := d.db.QueryRow(`SELECT id FROM chart WHERE name = $1`, chartName).Scan(&d.chartID)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to look up chart: %w", err)
	}

	err = d.db.QueryRow(`
		INSERT INTO chart (name, display_name, source)
		VALUES ($1, $2, $3)
		RETURNING id
	`, chartName, chartDisplayName, chartSource).Scan(&d.chartID)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	return nil
}

// ValidDates fetches the mirror's list of all published chart dates
func (d *Downloader) ValidDates() ([]string, error) {
	var dates []string
	if err := d.getJSON(d.baseURL+"/valid_dates.json", &dates); err != nil {
		return nil, fmt.Errorf("failed to fetch valid dates: %w", err)
	}
	return dates, nil
}

// PendingDates returns chart dates not yet downloaded
func (d *Downloader) PendingDates() ([]string, error) {
	if err := d.initChart(); err != nil {
		return nil, err
	}

	all, err := d.ValidDates()
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`SELECT chart_date FROM chart_week WHERE chart_id = $1`, d.chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query downloaded dates: %w", err)
	}
	defer rows.Close()

	downloaded := make(map[string]bool)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		downloaded[date] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var pending []string
	for _, date := range all {
		if !downloaded[date] {
			pending = append(pending, date)
		}
	}

	slog.Info("hot 100 mirror state",
		"total", len(all),
		"downloaded", len(downloaded),
		"pending", len(pending),
	)
	return pending, nil
}

// DownloadDate fetches and stores a single chart week.
// Returns false if the week was already present.
func (d *Downloader) DownloadDate(date string) (bool, error) {
	if err := d.initChart(); err != nil {
		return false, err
	}

	var exists bool
	err := d.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM chart_week WHERE chart_id = $1 AND chart_date = $2)
	`, d.chartID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check chart week: %w", err)
	}
	if exists {
		return false, nil
	}

	var chart rawChart
	if err := d.getJSON(fmt.Sprintf("%s/date/%s.json", d.baseURL, date), &chart); err != nil {
		return false, fmt.Errorf("failed to fetch chart for %s: %w", date, err)
	}

	var weekID int64
	err = d.db.QueryRow(`
		INSERT INTO chart_week (chart_id, chart_date)
		VALUES ($1, $2)
		RETURNING id
	`, d.chartID, date).Scan(&weekID)
	if err != nil {
		return false, fmt.Errorf("failed to insert chart week: %w", err)
	}

	for _, e := range chart.Entries {
		_, err := d.db.Exec(`
			INSERT INTO entry (chart_week_id, position, song, artist, last_week, peak_position, weeks_on_chart)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, weekID, e.ThisWeek, e.Song, e.Artist, e.LastWeek, e.PeakPosition, e.WeeksOnChart)
		if err != nil {
			return false, fmt.Errorf("failed to insert entry: %w", err)
		}
	}

	slog.Info("downloaded chart week", "date", date, "entries", len(chart.Entries))
	return true, nil
}

// DownloadAll downloads every pending chart date. limit of 0 means no limit.
func (d *Downloader) DownloadAll(limit int) (DownloadReport, error) {
	pending, err := d.PendingDates()
	if err != nil {
		return DownloadReport{}, err
	}
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	var report DownloadReport
	for i, date := range pending {
		fetched, err := d.DownloadDate(date)
		if err != nil {
			slog.Error("chart download failed", "date", date, "error", err)
			report.Failed++
			continue
		}
		if fetched {
			report.Downloaded++
		} else {
			report.Existing++
		}
		if (i+1)%100 == 0 {
			slog.Info("chart download progress",
				"done", humanize.Comma(int64(i+1)),
				"total", humanize.Comma(int64(len(pending))),
			)
		}
	}

	slog.Info("chart download complete",
		"downloaded", report.Downloaded,
		"existing", report.Existing,
		"failed", report.Failed,
	)
	return report, nil
}

func (d *Downloader) getJSON(url string, v any) error {
	resp, err := d.client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
