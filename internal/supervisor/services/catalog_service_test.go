// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tracklist/internal/catalog"
)

var _ suture.Service = (*CatalogService)(nil)

const catalogCSV = "track_id,track_name,artists,album_name,track_genre\n" +
	"1,The Sun,Alice,Morning,pop\n" +
	"2,La Luna,Bob,Night,latin\n"

const biggerCatalogCSV = catalogCSV + "3,The Rain,Carol,Weather,rock\n"

type countingWarmer struct {
	mu   sync.Mutex
	seen []*catalog.Catalog
}

func (w *countingWarmer) Warm(cat *catalog.Catalog) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seen = append(w.seen, cat)
}

func (w *countingWarmer) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.seen)
}

// memorySource counts fetches and serves whatever data it holds.
type memorySource struct {
	mu      sync.Mutex
	data    string
	fetches atomic.Int32
}

func (m *memorySource) Fetch(context.Context) ([]byte, error) {
	m.fetches.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == "" {
		return nil, catalog.ErrMissingCatalog
	}
	return []byte(m.data), nil
}

func (*memorySource) Location() string { return "memory" }

func startCatalogService(t *testing.T, svc *CatalogService) {
	t.Helper()
	svc.loaded = make(chan error, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Serve did not return")
		}
	})
}

// nextLoad waits for a refresh attempt and returns its error.
func nextLoad(t *testing.T, svc *CatalogService) error {
	t.Helper()
	select {
	case err := <-svc.loaded:
		return err
	case <-time.After(3 * time.Second):
		t.Fatal("no refresh attempt observed")
		return nil
	}
}

func TestCatalogService_StartupLoadWarmsEngine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spotify_songs.csv")
	if err := os.WriteFile(path, []byte(catalogCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	store := catalog.NewStore(catalog.NewFileSource(path), zerolog.Nop())
	warmer := &countingWarmer{}
	svc := NewCatalogService(store, warmer, CatalogServiceConfig{}, zerolog.Nop())
	startCatalogService(t, svc)

	if err := nextLoad(t, svc); err != nil {
		t.Fatalf("startup load: %v", err)
	}
	if store.Current().Len() != 2 {
		t.Errorf("tracks = %d, want 2", store.Current().Len())
	}
	if warmer.count() != 1 {
		t.Errorf("warm calls = %d, want 1", warmer.count())
	}
}

func TestCatalogService_PicksUpFileWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "spotify_songs.csv")
	store := catalog.NewStore(catalog.NewFileSource(path), zerolog.Nop())
	svc := NewCatalogService(store, nil, CatalogServiceConfig{Watch: true, Debounce: 20 * time.Millisecond}, zerolog.Nop())
	startCatalogService(t, svc)

	if err := nextLoad(t, svc); !errors.Is(err, catalog.ErrMissingCatalog) {
		t.Fatalf("startup load error = %v, want ErrMissingCatalog", err)
	}
	if store.Ready() {
		t.Fatal("store should not be ready without a file")
	}

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(catalogCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := nextLoad(t, svc); err != nil {
		t.Fatalf("load after create: %v", err)
	}
	if store.Current().Len() != 2 {
		t.Fatalf("tracks = %d, want 2", store.Current().Len())
	}

	if err := os.WriteFile(path, []byte(biggerCatalogCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(3 * time.Second)
	for store.Current().Len() != 3 && time.Now().Before(deadline) {
		nextLoad(t, svc)
	}
	if store.Current().Len() != 3 {
		t.Errorf("tracks = %d after rewrite, want 3", store.Current().Len())
	}
}

func TestCatalogService_IntervalRefresh(t *testing.T) {
	t.Parallel()

	src := &memorySource{data: catalogCSV}
	store := catalog.NewStore(src, zerolog.Nop())
	warmer := &countingWarmer{}
	svc := NewCatalogService(store, warmer, CatalogServiceConfig{RefreshInterval: 10 * time.Millisecond, Watch: true}, zerolog.Nop())
	startCatalogService(t, svc)

	for i := 0; i < 3; i++ {
		if err := nextLoad(t, svc); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
	}
	if src.fetches.Load() < 3 {
		t.Errorf("fetches = %d, want at least 3", src.fetches.Load())
	}

	// Unchanged content republishes the same catalog.
	warmer.mu.Lock()
	first, last := warmer.seen[0], warmer.seen[len(warmer.seen)-1]
	warmer.mu.Unlock()
	if first != last {
		t.Error("unchanged source produced a new catalog")
	}
}

func TestCatalogService_MissingDirectoryDisablesWatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent", "spotify_songs.csv")
	store := catalog.NewStore(catalog.NewFileSource(path), zerolog.Nop())
	svc := NewCatalogService(store, nil, CatalogServiceConfig{Watch: true}, zerolog.Nop())
	startCatalogService(t, svc)

	if err := nextLoad(t, svc); err == nil {
		t.Fatal("expected missing catalog error")
	}
	if svc.config.Debounce != DefaultWatchDebounce {
		t.Errorf("debounce = %v, want default", svc.config.Debounce)
	}
}
