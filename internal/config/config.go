// Package config loads service configuration from the environment with an
// optional YAML overlay for the tunable scoring surface (sharp books, agent
// weights, sport list).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/grandrichlife727-design/edgebet-backend/internal/consensus"
)

// Sport is one scannable sport: feed key plus display label and emoji.
type Sport struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Emoji string `yaml:"emoji"`
}

// Config holds the full service configuration.
type Config struct {
	Port string

	OddsAPIKey     string
	OddsAPIBaseURL string
	Regions        string
	Markets        string
	FetchTimeout   time.Duration
	RequestsPerSec float64

	InjuryFeedURL string

	RedisURL    string // optional; empty disables the scan cache
	CacheTTL    time.Duration
	DatabaseURL string // optional; empty selects the in-memory pick store

	ScanInterval time.Duration

	Sports     []Sport
	SharpBooks []string
	Weights    consensus.Weights
}

// overlay is the YAML file shape accepted via EDGEBET_CONFIG.
type overlay struct {
	Sports     []Sport            `yaml:"sports"`
	SharpBooks []string           `yaml:"sharp_books"`
	Weights    *consensus.Weights `yaml:"weights"`
}

// Load reads environment variables, applies defaults, and merges the YAML
// overlay when EDGEBET_CONFIG points at a file.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		OddsAPIKey:     os.Getenv("ODDS_API_KEY"),
		OddsAPIBaseURL: getEnv("ODDS_API_BASE_URL", "https://api.the-odds-api.com/v4"),
		Regions:        getEnv("ODDS_API_REGIONS", "us"),
		Markets:        getEnv("ODDS_API_MARKETS", "spreads,totals,h2h"),
		FetchTimeout:   getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		RequestsPerSec: getEnvFloat("FEED_REQUESTS_PER_SEC", 5),
		InjuryFeedURL:  os.Getenv("INJURY_FEED_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		CacheTTL:       getEnvDuration("CACHE_TTL", 2*time.Minute),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ScanInterval:   getEnvDuration("SCAN_INTERVAL", 0),
		Sports:         DefaultSports(),
		SharpBooks:     DefaultSharpBooks(),
		Weights:        consensus.DefaultWeights(),
	}

	if books := os.Getenv("SHARP_BOOKS"); books != "" {
		cfg.SharpBooks = splitCSV(books)
	}

	if path := os.Getenv("EDGEBET_CONFIG"); path != "" {
		if err := cfg.applyOverlay(path); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func (c *Config) applyOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if len(o.Sports) > 0 {
		c.Sports = o.Sports
	}
	if len(o.SharpBooks) > 0 {
		c.SharpBooks = o.SharpBooks
	}
	if o.Weights != nil {
		c.Weights = *o.Weights
	}

	return nil
}

// DefaultSports is the standard scan lineup.
func DefaultSports() []Sport {
	return []Sport{
		{Key: "basketball_nba", Label: "NBA", Emoji: "🏀"},
		{Key: "americanfootball_nfl", Label: "NFL", Emoji: "🏈"},
		{Key: "baseball_mlb", Label: "MLB", Emoji: "⚾"},
		{Key: "icehockey_nhl", Label: "NHL", Emoji: "🏒"},
	}
}

// DefaultSharpBooks lists the reference low-vig books, in order of
// reliability.
func DefaultSharpBooks() []string {
	return []string{"pinnacle", "circa", "bookmaker"}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
