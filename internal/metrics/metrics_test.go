// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSnapshot returns the sample count and sum of a histogram.
func histogramSnapshot(t *testing.T, h prometheus.Histogram) (uint64, float64) {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/playlists", "200"))
	RecordAPIRequest("POST", "/api/v1/playlists", "200", 20*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/playlists", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordPlaylist(t *testing.T) {
	tests := []struct {
		name     string
		language string
		outcome  string
		tracks   int
	}{
		{"full playlist", "en", "ok", 30},
		{"nothing matched", "any", "no_matches", 0},
		{"detection timed out", "ja", "truncated", 7},
		{"catalog missing", "any", "error", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := PlaylistGenerations.WithLabelValues(tt.language, tt.outcome)
			before := testutil.ToFloat64(c)
			RecordPlaylist(tt.language, tt.outcome, tt.tracks, 5*time.Millisecond)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("counter delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordPlaylist_Histograms(t *testing.T) {
	sizeCount, sizeSum := histogramSnapshot(t, PlaylistSize)
	durCount, _ := histogramSnapshot(t, PlaylistGenerationDuration)

	RecordPlaylist("fr", "ok", 12, 40*time.Millisecond)
	RecordPlaylist("any", "error", 0, time.Millisecond)

	count, sum := histogramSnapshot(t, PlaylistSize)
	if count-sizeCount != 1 || sum-sizeSum != 12 {
		t.Errorf("playlist size delta = (%d, %v), want (1, 12); errors are not sized", count-sizeCount, sum-sizeSum)
	}
	if count, _ := histogramSnapshot(t, PlaylistGenerationDuration); count-durCount != 2 {
		t.Errorf("duration samples delta = %d, want 2", count-durCount)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	RecordCatalogLoad("loaded", 1200, 4)
	if got := testutil.ToFloat64(CatalogTracks); got != 1200 {
		t.Errorf("catalog_tracks = %v, want 1200", got)
	}
	if got := testutil.ToFloat64(CatalogSkippedRows); got != 4 {
		t.Errorf("catalog_skipped_rows = %v, want 4", got)
	}

	RecordCatalogLoad("unchanged", 0, 0)
	if got := testutil.ToFloat64(CatalogTracks); got != 1200 {
		t.Errorf("unchanged refresh must not reset catalog_tracks, got %v", got)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	tests := []struct {
		to   string
		want float64
	}{
		{"open", 2},
		{"half-open", 1},
		{"closed", 0},
	}
	for _, tt := range tests {
		RecordCircuitBreakerTransition("catalog-http", "x", tt.to)
		if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("catalog-http")); got != tt.want {
			t.Errorf("state after %s = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestRecordDetectionFailure(t *testing.T) {
	c := LanguageDetectionFailures.WithLabelValues("undetermined")
	before := testutil.ToFloat64(c)
	RecordDetectionFailure("undetermined")
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("delta = %v, want 1", got)
	}
}
