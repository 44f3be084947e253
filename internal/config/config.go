// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/recommend"
	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), nil, detector, logger)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Export    ExportConfig    `koanf:"export"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig describes where the track catalog comes from and how it
// is kept fresh.
type CatalogConfig struct {
	// Location is a file path or an http(s) URL of the CSV catalog.
	// Default: spotify_songs.csv
	Location string `koanf:"location"`

	// RefreshInterval re-fetches the catalog periodically. Zero disables
	// periodic refresh; the catalog is then loaded once.
	// Default: 0
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// Watch reloads a file catalog when it changes on disk. Ignored for
	// remote catalogs.
	// Default: true
	Watch bool `koanf:"watch"`

	// HTTPTimeout bounds one remote fetch.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// HTTPMaxBytes rejects remote catalogs larger than this.
	HTTPMaxBytes int64 `koanf:"http_max_bytes"`

	// BreakerFailures consecutive fetch failures open the circuit breaker.
	BreakerFailures uint32 `koanf:"breaker_failures"`

	// BreakerOpenTimeout is how long an open breaker rejects fetches.
	BreakerOpenTimeout time.Duration `koanf:"breaker_open_timeout"`
}

// HTTPSourceConfig returns the remote fetch settings for catalog.NewSource.
func (c *CatalogConfig) HTTPSourceConfig() catalog.HTTPSourceConfig {
	return catalog.HTTPSourceConfig{
		Timeout:          c.HTTPTimeout,
		MaxBytes:         c.HTTPMaxBytes,
		FailureThreshold: c.BreakerFailures,
		OpenTimeout:      c.BreakerOpenTimeout,
	}
}

// RecommendConfig shapes generated playlists.
type RecommendConfig struct {
	MaxResults       int            `koanf:"max_results"`
	MaxPerArtist     int            `koanf:"max_per_artist"`
	CandidateWindow  int            `koanf:"candidate_window"`
	DetectionTimeout time.Duration  `koanf:"detection_timeout"`
	Seed             uint64         `koanf:"seed"`
	Detector         DetectorConfig `koanf:"detector"`
}

// EngineConfig converts to the engine's own configuration type.
func (c *RecommendConfig) EngineConfig() recommend.Config {
	return recommend.Config{
		MaxResults:       c.MaxResults,
		MaxPerArtist:     c.MaxPerArtist,
		CandidateWindow:  c.CandidateWindow,
		DetectionTimeout: c.DetectionTimeout,
		Seed:             c.Seed,
	}
}

// DetectorConfig configures language identification of track titles.
type DetectorConfig struct {
	// MinRelativeDistance in [0, 0.99]. Higher values leave more titles
	// undetermined.
	MinRelativeDistance float64 `koanf:"min_relative_distance"`

	// LowAccuracy mode uses far less memory at some cost in accuracy.
	LowAccuracy bool `koanf:"low_accuracy"`

	// Preload loads all language models at startup instead of lazily.
	Preload bool `koanf:"preload"`

	// CacheSize is the number of detected titles kept in memory.
	// Zero disables the cache.
	CacheSize int `koanf:"cache_size"`

	// CacheTTL expires cached detections.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// Candidates lists extra ISO 639-1 codes to tell apart. Empty means
	// every language the detector supports.
	Candidates []string `koanf:"candidates"`
}

// LinguaConfig converts to the detector's configuration type.
func (c *DetectorConfig) LinguaConfig() langdetect.LinguaConfig {
	return langdetect.LinguaConfig{
		MinimumRelativeDistance: c.MinRelativeDistance,
		LowAccuracy:             c.LowAccuracy,
		Preload:                 c.Preload,
		Candidates:              c.Candidates,
	}
}

// ExportConfig holds playlist export settings
type ExportConfig struct {
	// SpotlistrBase is the URL prefix the quoted track list is appended to.
	SpotlistrBase string `koanf:"spotlistr_base"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// ReloadInterval is the minimum spacing between manual catalog
	// reloads through the API.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration with the following precedence (highest wins):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
