// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto and
exposed by the API router at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Playlists:
  - playlist_generations_total{language, outcome}
  - playlist_generation_duration_seconds
  - playlist_size_tracks
  - language_detection_failures_total{reason}
  - language_detection_cache_hits_total / _misses_total

Catalog:
  - catalog_loads_total{result}
  - catalog_tracks
  - catalog_skipped_rows
  - catalog_last_load_timestamp_seconds
  - circuit_breaker_state{name}, circuit_breaker_state_transitions_total

# Example PromQL

Share of playlist requests that found nothing:

	sum(rate(playlist_generations_total{outcome="no_matches"}[5m]))
	  / sum(rate(playlist_generations_total[5m]))
*/
package metrics
