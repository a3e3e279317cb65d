package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/song-arena/arena"
	"github.com/danielhkuo/song-arena/charts"
	"github.com/danielhkuo/song-arena/cliparse"
	"github.com/danielhkuo/song-arena/db"
	"github.com/danielhkuo/song-arena/router"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the store
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Seed the song pool on first run, mirroring chart data first if
	// the local store has none
	stats, err := arena.Stats(dbConn)
	if err != nil {
		slog.Error("failed to read arena stats", "error", err)
		os.Exit(1)
	}
	if stats.TotalSongs == 0 {
		years, err := charts.AvailableYears(dbConn)
		if err != nil {
			slog.Error("failed to check chart data", "error", err)
			os.Exit(1)
		}
		if len(years) == 0 {
			slog.Info("No chart data found, downloading", "base_url", cfg.ChartBaseURL)
			downloader := charts.NewDownloader(dbConn, cfg.ChartBaseURL)
			report, err := downloader.DownloadAll(0)
			if err != nil {
				slog.Error("chart download failed", "error", err)
				os.Exit(1)
			}
			slog.Info("Chart mirror ready", "downloaded", report.Downloaded, "failed", report.Failed)
		}

		result, err := arena.Seed(dbConn)
		if err != nil {
			slog.Error("arena seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Arena seeded", "added", result.Added, "decades", result.Decades)
	} else {
		slog.Info("Arena ready", "songs", stats.TotalSongs, "matchups", stats.TotalMatchups)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
