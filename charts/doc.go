// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package charts mirrors Billboard Hot 100 chart data and aggregates it
into ranked song lists.

# Downloading

Downloader fetches chart weeks from a raw-JSON mirror and stores them
idempotently - weeks already present are skipped:

	d := charts.NewDownloader(db, cfg.ChartBaseURL)
	report, err := d.DownloadAll(0)

# Aggregation

TopSongsForYear ranks a year's songs by chart performance
(weeks at #1, weeks in the top ten, peak position, total weeks).
TopSongsForDecade concatenates each year's top 10 and is the input
the arena seeder consumes.
*/
package charts
