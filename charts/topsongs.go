// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charts

import (
	"database/sql"
	"fmt"
	"slices"
	"strconv"
)

// SongScore aggregates one song's chart performance within a year
type SongScore struct {
	Title         string
	Artist        string
	Year          int
	WeeksAtOne    int
	WeeksInTopTen int
	PeakPosition  int
	TotalWeeks    int
	Score         float64
}

// ChartScore computes a ranking score from chart performance metrics
func ChartScore(weeksAtOne, weeksInTopTen, peakPosition, totalWeeks int) float64 {
	positionBonus := max(0, 11-peakPosition) * 10
	return float64(weeksAtOne*100 + weeksInTopTen*20 + positionBonus + totalWeeks*2)
}

// TopSongsForYear returns the top limit songs for a year, ranked by
// chart performance.
func TopSongsForYear(db *sql.DB, year, limit int) ([]SongScore, error) {
	rows, err := db.Query(`
		SELECT
			e.song,
			e.artist,
			COUNT(CASE WHEN e.position = 1 THEN 1 END) AS weeks_at_one,
			COUNT(CASE WHEN e.position <= 10 THEN 1 END) AS weeks_in_top_ten,
			MIN(e.position) AS peak_position,
			COUNT(*) AS total_weeks
		FROM entry e
		JOIN chart_week cw ON e.chart_week_id = cw.id
		WHERE substr(cw.chart_date, 1, 4) = $1
		GROUP BY e.song, e.artist
		ORDER BY
			weeks_at_one DESC,
			weeks_in_top_ten DESC,
			peak_position ASC,
			total_weeks DESC
	`, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query year %d: %w", year, err)
	}
	defer rows.Close()

	var results []SongScore
	for rows.Next() {
		s := SongScore{Year: year}
		if err := rows.Scan(&s.Title, &s.Artist, &s.WeeksAtOne, &s.WeeksInTopTen, &s.PeakPosition, &s.TotalWeeks); err != nil {
			return nil, err
		}
		s.Score = ChartScore(s.WeeksAtOne, s.WeeksInTopTen, s.PeakPosition, s.TotalWeeks)
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Keep the query's tie-break order for equal scores
	slices.SortStableFunc(results, func(a, b SongScore) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return 0
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// AvailableYears returns the years that have chart data, ascending
func AvailableYears(db *sql.DB) ([]int, error) {
	rows, err := db.Query(`
		SELECT DISTINCT substr(chart_date, 1, 4) AS year
		FROM chart_week
		ORDER BY year
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query available years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var yearStr string
		if err := rows.Scan(&yearStr); err != nil {
			return nil, err
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("bad chart_date year %q: %w", yearStr, err)
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

// TopSongsForDecade returns the top 10 songs for each year of a decade,
// each year's list reversed so a playlist builds toward the year's best.
func TopSongsForDecade(db *sql.DB, decadeStart int) ([]SongScore, error) {
	years, err := AvailableYears(db)
	if err != nil {
		return nil, err
	}

	var all []SongScore
	for _, year := range years {
		if year < decadeStart || year >= decadeStart+10 {
			continue
		}
		yearSongs, err := TopSongsForYear(db, year, 10)
		if err != nil {
			return nil, err
		}
		slices.Reverse(yearSongs)
		all = append(all, yearSongs...)
	}
	return all, nil
}

// DecadesWithData returns the decade start years that have chart data
func DecadesWithData(db *sql.DB) ([]int, error) {
	years, err := AvailableYears(db)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var decades []int
	for _, y := range years {
		d := (y / 10) * 10
		if !seen[d] {
			seen[d] = true
			decades = append(decades, d)
		}
	}
	slices.Sort(decades)
	return decades, nil
}
