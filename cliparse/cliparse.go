package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

const defaultChartBaseURL = "https://raw.githubusercontent.com/mhollingshead/billboard-hot-100/main"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	ChartBaseURL string

	// Apple Music credentials (optional; playlist export and the
	// MusicKit token endpoint are disabled without them)
	AppleTeamID         string
	AppleKeyID          string
	ApplePrivateKeyPath string
	MusicUserToken      string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("song-arena", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database path or URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ChartBaseURL, "chart-url", "", "Chart mirror base URL")

	// Credentials (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AppleTeamID, "apple-team-id", "", "Apple Music team ID (prefer env)")
	fs.StringVar(&cfg.AppleKeyID, "apple-key-id", "", "Apple Music key ID (prefer env)")
	fs.StringVar(&cfg.ApplePrivateKeyPath, "apple-key-path", "", "Apple Music private key path (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8780 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "billboard.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.ChartBaseURL == "" {
		cfg.ChartBaseURL = os.Getenv("CHART_BASE_URL")
		if cfg.ChartBaseURL == "" {
			cfg.ChartBaseURL = defaultChartBaseURL
		}
	}

	if cfg.AppleTeamID == "" {
		cfg.AppleTeamID = os.Getenv("APPLE_MUSIC_TEAM_ID")
	}
	if cfg.AppleKeyID == "" {
		cfg.AppleKeyID = os.Getenv("APPLE_MUSIC_KEY_ID")
	}
	if cfg.ApplePrivateKeyPath == "" {
		cfg.ApplePrivateKeyPath = os.Getenv("APPLE_MUSIC_PRIVATE_KEY")
	}
	cfg.MusicUserToken = os.Getenv("MUSIC_USER_TOKEN")

	return cfg, nil
}

// AppleMusicConfigured reports whether the developer-token credentials
// are all present.
func (c Config) AppleMusicConfigured() bool {
	return c.AppleTeamID != "" && c.AppleKeyID != "" && c.ApplePrivateKeyPath != ""
}
