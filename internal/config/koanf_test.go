// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/tracklist/internal/export"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()

	if cfg.Catalog.Location != DefaultCatalogLocation {
		t.Errorf("Catalog.Location = %q, want %q", cfg.Catalog.Location, DefaultCatalogLocation)
	}
	if !cfg.Catalog.Watch {
		t.Error("Catalog.Watch should be true by default")
	}
	if cfg.Catalog.RefreshInterval != 0 {
		t.Errorf("Catalog.RefreshInterval = %v, want 0", cfg.Catalog.RefreshInterval)
	}

	if cfg.Recommend.MaxResults != 30 {
		t.Errorf("Recommend.MaxResults = %d, want 30", cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.MaxPerArtist != 3 {
		t.Errorf("Recommend.MaxPerArtist = %d, want 3", cfg.Recommend.MaxPerArtist)
	}
	if cfg.Recommend.CandidateWindow != 5000 {
		t.Errorf("Recommend.CandidateWindow = %d, want 5000", cfg.Recommend.CandidateWindow)
	}
	if cfg.Recommend.DetectionTimeout != 10*time.Second {
		t.Errorf("Recommend.DetectionTimeout = %v, want 10s", cfg.Recommend.DetectionTimeout)
	}

	if cfg.Export.SpotlistrBase != export.DefaultSpotlistrBase {
		t.Errorf("Export.SpotlistrBase = %q", cfg.Export.SpotlistrBase)
	}

	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"CATALOG_PATH", "catalog.location"},
		{"CATALOG_URL", "catalog.location"},
		{"PLAYLIST_MAX_RESULTS", "recommend.max_results"},
		{"PLAYLIST_MAX_PER_ARTIST", "recommend.max_per_artist"},
		{"LANGDETECT_CACHE_TTL", "recommend.detector.cache_ttl"},
		{"HTTP_PORT", "server.port"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"log_level", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
		{"RANDOM_UNMAPPED_VAR", ""},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestEnvMappingsTargetKnownKeys(t *testing.T) {
	t.Parallel()

	known := map[string]bool{}
	collectKeys(reflect.TypeOf(Config{}), "", known)
	for env, path := range envMappings {
		if !known[path] {
			t.Errorf("%s maps to unknown key %q", strings.ToUpper(env), path)
		}
	}
}

// collectKeys walks koanf struct tags to list every leaf path.
func collectKeys(typ reflect.Type, prefix string, out map[string]bool) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("koanf")
		if tag == "" {
			continue
		}
		path := tag
		if prefix != "" {
			path = prefix + "." + tag
		}
		if f.Type.Kind() == reflect.Struct && f.Type != reflect.TypeOf(time.Duration(0)) {
			collectKeys(f.Type, path, out)
			continue
		}
		out[path] = true
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("env path exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, path)
		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("env path missing falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "nope.yaml"))
		t.Chdir(dir)
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("default path in working directory", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		wd := t.TempDir()
		if err := os.WriteFile(filepath.Join(wd, "config.yaml"), []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Chdir(wd)
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})
}

// isolate points config discovery at an empty directory so stray files or
// variables on the test host do not leak in.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	for env := range envMappings {
		t.Setenv(strings.ToUpper(env), "")
		os.Unsetenv(strings.ToUpper(env))
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolate(t)

	t.Setenv("CATALOG_PATH", "/data/tracks.csv")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PLAYLIST_MAX_PER_ARTIST", "2")
	t.Setenv("PLAYLIST_DETECTION_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LANGDETECT_LOW_ACCURACY", "true")
	t.Setenv("LANGDETECT_CANDIDATES", "zh,nl, sv")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Location != "/data/tracks.csv" {
		t.Errorf("Catalog.Location = %q", cfg.Catalog.Location)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.MaxPerArtist != 2 {
		t.Errorf("Recommend.MaxPerArtist = %d, want 2", cfg.Recommend.MaxPerArtist)
	}
	if cfg.Recommend.DetectionTimeout != 3*time.Second {
		t.Errorf("Recommend.DetectionTimeout = %v, want 3s", cfg.Recommend.DetectionTimeout)
	}
	if !cfg.Recommend.Detector.LowAccuracy {
		t.Error("Recommend.Detector.LowAccuracy should be true")
	}
	if got := cfg.Recommend.Detector.Candidates; !reflect.DeepEqual(got, []string{"zh", "nl", "sv"}) {
		t.Errorf("Recommend.Detector.Candidates = %q", got)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %q, want %q", cfg.Security.CORSOrigins, want)
	}

	// Defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.MaxResults != 30 {
		t.Errorf("Recommend.MaxResults = %d, want 30 (default)", cfg.Recommend.MaxResults)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "tracklist.yaml")
	content := `
catalog:
  location: https://example.com/tracks.csv
  refresh_interval: 15m
recommend:
  max_results: 20
  max_per_artist: 1
  detector:
    cache_size: 10
    cache_ttl: 5m
security:
  cors_origins:
    - https://app.example
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Catalog.Location != "https://example.com/tracks.csv" {
		t.Errorf("Catalog.Location = %q", cfg.Catalog.Location)
	}
	if cfg.Catalog.RefreshInterval != 15*time.Minute {
		t.Errorf("Catalog.RefreshInterval = %v, want 15m", cfg.Catalog.RefreshInterval)
	}
	if cfg.Recommend.MaxResults != 20 || cfg.Recommend.MaxPerArtist != 1 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.Detector.CacheSize != 10 || cfg.Recommend.Detector.CacheTTL != 5*time.Minute {
		t.Errorf("Recommend.Detector = %+v", cfg.Recommend.Detector)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://app.example"}) {
		t.Errorf("Security.CORSOrigins = %q", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want env value 7100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want file value warn", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"zero results", map[string]string{"PLAYLIST_MAX_RESULTS": "0"}, "PLAYLIST_MAX_RESULTS"},
		{"window below results", map[string]string{"PLAYLIST_CANDIDATE_WINDOW": "10"}, "PLAYLIST_CANDIDATE_WINDOW"},
		{"bad url", map[string]string{"CATALOG_URL": "https://"}, "CATALOG_URL"},
		{"bad environment", map[string]string{"ENVIRONMENT": "prod"}, "ENVIRONMENT"},
		{"rate limit window", map[string]string{"RATE_LIMIT_WINDOW": "2h"}, "RATE_LIMIT_WINDOW"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}
