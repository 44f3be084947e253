// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location string
		wantHTTP bool
		wantLoc  string
	}{
		{"dataset.csv", false, "dataset.csv"},
		{"file:///data/dataset.csv", false, "/data/dataset.csv"},
		{"http://example.com/d.csv", true, "http://example.com/d.csv"},
		{"HTTPS://example.com/d.csv", true, "HTTPS://example.com/d.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			t.Parallel()
			src := NewSource(tt.location, HTTPSourceConfig{})
			_, isHTTP := src.(*HTTPSource)
			if isHTTP != tt.wantHTTP {
				t.Errorf("HTTP source = %v, want %v", isHTTP, tt.wantHTTP)
			}
			if src.Location() != tt.wantLoc {
				t.Errorf("Location() = %q, want %q", src.Location(), tt.wantLoc)
			}
		})
	}
}

func TestFileSource_Fetch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(storeCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := NewFileSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != storeCSV {
		t.Errorf("Fetch() = %q", data)
	}

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.csv")).Fetch(context.Background())
	if !errors.Is(err, ErrMissingCatalog) {
		t.Errorf("missing file error = %v, want ErrMissingCatalog", err)
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dataset.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(storeCSV))
		case "/big.csv":
			_, _ = w.Write(make([]byte, 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/dataset.csv", HTTPSourceConfig{})
	data, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != storeCSV {
		t.Errorf("Fetch() = %q", data)
	}

	_, err = NewHTTPSource(srv.URL+"/missing.csv", HTTPSourceConfig{}).Fetch(context.Background())
	if !errors.Is(err, ErrMissingCatalog) {
		t.Errorf("404 error = %v, want ErrMissingCatalog", err)
	}

	_, err = NewHTTPSource(srv.URL+"/big.csv", HTTPSourceConfig{MaxBytes: 16}).Fetch(context.Background())
	if !errors.Is(err, ErrMissingCatalog) {
		t.Errorf("oversized error = %v, want ErrMissingCatalog", err)
	}
}

func TestHTTPSource_BreakerOpensOnOutage(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, HTTPSourceConfig{FailureThreshold: 2, OpenTimeout: time.Hour})
	for i := 0; i < 5; i++ {
		if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrMissingCatalog) {
			t.Fatalf("attempt %d error = %v, want ErrMissingCatalog", i, err)
		}
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2 before the breaker opened", got)
	}
}

func TestHTTPSource_NotFoundDoesNotTrip(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, HTTPSourceConfig{FailureThreshold: 1, OpenTimeout: time.Hour})
	for i := 0; i < 3; i++ {
		_, _ = src.Fetch(context.Background())
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hits = %d, want 3", got)
	}
}
