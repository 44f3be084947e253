// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Playlist Generation Metrics
	PlaylistGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_generations_total",
			Help: "Total number of playlist generations",
		},
		[]string{"language", "outcome"}, // outcome: "ok", "no_matches", "truncated", "error"
	)

	PlaylistGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playlist_generation_duration_seconds",
			Help:    "Time spent ranking and selecting tracks for one playlist",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	PlaylistSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playlist_size_tracks",
			Help:    "Number of tracks in generated playlists",
			Buckets: []float64{0, 1, 5, 10, 15, 20, 25, 30},
		},
	)

	// Language Detection Metrics
	LanguageDetectionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "language_detection_failures_total",
			Help: "Track titles whose language could not be determined",
		},
		[]string{"reason"}, // "undetermined", "error"
	)

	LanguageDetectionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "language_detection_cache_hits_total",
			Help: "Total number of memoized language detection results reused",
		},
	)

	LanguageDetectionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "language_detection_cache_misses_total",
			Help: "Total number of language detections that ran the detector",
		},
	)

	// Catalog Metrics
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog refresh attempts",
		},
		[]string{"result"}, // "loaded", "unchanged", "error"
	)

	CatalogTracks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_tracks",
			Help: "Number of distinct tracks in the current catalog",
		},
	)

	CatalogSkippedRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_skipped_rows",
			Help: "Rows rejected by the CSV reader during the last load",
		},
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_load_timestamp_seconds",
			Help: "Unix timestamp of the last successful catalog load",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPlaylist records the outcome of one playlist generation.
func RecordPlaylist(language, outcome string, tracks int, duration time.Duration) {
	PlaylistGenerations.WithLabelValues(language, outcome).Inc()
	PlaylistGenerationDuration.Observe(duration.Seconds())
	if outcome != "error" {
		PlaylistSize.Observe(float64(tracks))
	}
}

// RecordDetectionFailure counts a title excluded because detection failed.
func RecordDetectionFailure(reason string) {
	LanguageDetectionFailures.WithLabelValues(reason).Inc()
}

// RecordCatalogLoad records a catalog refresh. tracks and skipped are only
// applied when result is "loaded".
func RecordCatalogLoad(result string, tracks, skipped int) {
	CatalogLoads.WithLabelValues(result).Inc()
	if result == "loaded" {
		CatalogTracks.Set(float64(tracks))
		CatalogSkippedRows.Set(float64(skipped))
		CatalogLastLoad.Set(float64(time.Now().Unix()))
	}
}

// RecordCircuitBreakerTransition records a state change and the new state.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	var state float64
	switch to {
	case "half-open":
		state = 1
	case "open":
		state = 2
	}
	CircuitBreakerState.WithLabelValues(name).Set(state)
}
