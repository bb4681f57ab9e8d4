// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/recommend"
)

// Config is the full application configuration shared by the server, the
// interactive CLI and the preparation job.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Prepare   PrepareConfig   `koanf:"prepare"`
}

// CatalogConfig locates the movie catalog.
//
// Environment Variables:
//   - CATALOG_PATH: catalog file (default: data/movies.csv)
//   - CATALOG_READER: csv or duckdb (default: csv)
type CatalogConfig struct {
	Path   string `koanf:"path" validate:"required"`
	Reader string `koanf:"reader" validate:"catalogreader"`
}

// RecommendConfig tunes the recommendation engine.
//
// Environment Variables:
//   - RECOMMEND_MAX_FEATURES: TF-IDF vocabulary cap (default: 10000)
//   - RECOMMEND_DEFAULT_K: results when a request omits k (default: 5)
//   - RECOMMEND_MAX_K: largest k the API accepts (default: 100)
//   - RECOMMEND_CACHE_SIZE: API responses kept for repeated requests, 0 disables (default: 1024)
//   - RECOMMEND_CACHE_TTL: how long a cached response is reused (default: 10m)
type RecommendConfig struct {
	MaxFeatures int           `koanf:"max_features" validate:"gte=1"`
	DefaultK    int           `koanf:"default_k" validate:"gte=1"`
	MaxK        int           `koanf:"max_k" validate:"gtefield=DefaultK"`
	CacheSize   int           `koanf:"cache_size" validate:"gte=0"`
	CacheTTL    time.Duration `koanf:"cache_ttl" validate:"gte=0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Address returns host:port for net/http.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds HTTP rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config for the file and env layers.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// PrepareConfig drives the IMDb dataset preparation job.
type PrepareConfig struct {
	// RawDir holds title.basics.tsv.gz and title.ratings.tsv.gz.
	RawDir     string `koanf:"raw_dir" validate:"required"`
	OutputPath string `koanf:"output_path" validate:"required"`
	MinYear    int    `koanf:"min_year" validate:"gte=0"`
	MinVotes   int    `koanf:"min_votes" validate:"gte=0"`
	MaxMovies  int    `koanf:"max_movies" validate:"gte=1"`
}

// CatalogReader returns the parsed reader, defaulting to CSV.
func (c *Config) CatalogReader() catalog.Reader {
	reader, err := catalog.ParseReader(c.Catalog.Reader)
	if err != nil {
		return catalog.ReaderCSV
	}
	return reader
}

// EngineConfig converts the recommend section into the engine's config.
func (c *Config) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Features.MaxFeatures = c.Recommend.MaxFeatures
	cfg.Limits.DefaultK = c.Recommend.DefaultK
	cfg.Limits.MaxK = c.Recommend.MaxK
	return cfg
}

// LoggerConfig converts the logging section for logging.Init.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}

// Load reads defaults, then the optional YAML file, then the environment.
// See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
