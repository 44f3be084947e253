// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package config provides centralized configuration management for Tracklist.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, or config.yaml in the working directory, or
/etc/tracklist/config.yaml), then environment variables.

# Environment Variables

Catalog (CatalogConfig):
  - CATALOG_PATH / CATALOG_URL: CSV file path or http(s) URL (default: spotify_songs.csv)
  - CATALOG_REFRESH_INTERVAL: periodic re-fetch, 0 disables (default: 0)
  - CATALOG_WATCH: reload a file catalog when it changes (default: true)
  - CATALOG_HTTP_TIMEOUT, CATALOG_HTTP_MAX_BYTES: remote fetch limits
  - CATALOG_BREAKER_FAILURES, CATALOG_BREAKER_OPEN_TIMEOUT: circuit breaker

Playlists (RecommendConfig):
  - PLAYLIST_MAX_RESULTS (default: 30)
  - PLAYLIST_MAX_PER_ARTIST (default: 3)
  - PLAYLIST_CANDIDATE_WINDOW (default: 5000)
  - PLAYLIST_DETECTION_TIMEOUT (default: 10s)
  - PLAYLIST_SEED: fixed shuffle seed, 0 seeds from the clock
  - LANGDETECT_MIN_DISTANCE, LANGDETECT_LOW_ACCURACY, LANGDETECT_PRELOAD
  - LANGDETECT_CACHE_SIZE (default: 50000), LANGDETECT_CACHE_TTL (default: 1h)
  - LANGDETECT_CANDIDATES: comma-separated ISO 639-1 codes (default: all languages)
  - EXPORT_SPOTLISTR_BASE: export link prefix

Server and security:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8501), HTTP_TIMEOUT (default: 30s)
  - ENVIRONMENT: development, staging or production
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m), DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - CATALOG_RELOAD_EVERY: minimum spacing of API-triggered reloads (default: 10s)

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER

# Example config.yaml

	catalog:
	  location: /data/spotify_songs.csv
	  watch: true
	recommend:
	  max_results: 30
	  max_per_artist: 3
	server:
	  port: 8501
	logging:
	  level: debug
	  format: console
*/
package config
