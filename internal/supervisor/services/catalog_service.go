// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tracklist/internal/catalog"
)

// DefaultWatchDebounce coalesces the burst of events an editor or copy
// produces for a single save.
const DefaultWatchDebounce = 500 * time.Millisecond

// CatalogRefresher is the subset of *catalog.Store used by CatalogService.
type CatalogRefresher interface {
	Source() catalog.Source
	Refresh(ctx context.Context) (*catalog.Catalog, error)
}

// CatalogWarmer prepares per-catalog state, such as the TF-IDF index, before
// the first request needs it.
type CatalogWarmer interface {
	Warm(cat *catalog.Catalog)
}

// CatalogServiceConfig controls when the catalog is reloaded.
type CatalogServiceConfig struct {
	// RefreshInterval re-fetches the source periodically. Zero disables it.
	RefreshInterval time.Duration

	// Watch reloads a file catalog when it changes on disk.
	Watch bool

	// Debounce delays a watch-triggered reload. Default: 500ms
	Debounce time.Duration
}

// CatalogService loads the catalog at startup and keeps it fresh.
//
// A failed load is logged and leaves the previous catalog in place; the
// service keeps running so a catalog that appears later is picked up by the
// next tick or file event. Watcher failures are returned so the supervisor
// restarts the service.
type CatalogService struct {
	store  CatalogRefresher
	warmer CatalogWarmer
	config CatalogServiceConfig
	logger zerolog.Logger

	// loaded is signaled after every refresh attempt. Tests use it.
	loaded chan error
}

// NewCatalogService creates the service. warmer may be nil.
func NewCatalogService(store CatalogRefresher, warmer CatalogWarmer, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultWatchDebounce
	}
	return &CatalogService{
		store:  store,
		warmer: warmer,
		config: cfg,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.refresh(ctx, "startup")

	var tick <-chan time.Time
	if s.config.RefreshInterval > 0 {
		ticker := time.NewTicker(s.config.RefreshInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var (
		events  <-chan fsnotify.Event
		errs    <-chan error
		target  string
		pending <-chan time.Time
	)
	if fs, ok := s.store.Source().(*catalog.FileSource); ok && s.config.Watch {
		watcher, err := s.watch(fs.Path())
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("path", fs.Path()).Msg("Catalog file watch disabled")
		default:
			defer watcher.Close()
			events, errs = watcher.Events, watcher.Errors
			target = cleanPath(fs.Path())
		}
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-tick:
			s.refresh(ctx, "interval")

		case ev, ok := <-events:
			if !ok {
				return errors.New("catalog watcher closed")
			}
			if cleanPath(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			s.logger.Debug().Str("event", ev.Op.String()).Msg("Catalog file changed")
			if debounce == nil {
				debounce = time.NewTimer(s.config.Debounce)
			} else {
				debounce.Reset(s.config.Debounce)
			}
			pending = debounce.C

		case <-pending:
			pending = nil
			s.refresh(ctx, "file change")

		case err, ok := <-errs:
			if !ok {
				return errors.New("catalog watcher closed")
			}
			return fmt.Errorf("catalog watcher: %w", err)
		}
	}
}

// watch observes the parent directory so the file can be created later or
// replaced by rename.
func (s *CatalogService) watch(path string) (*fsnotify.Watcher, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}
	s.logger.Info().Str("dir", dir).Msg("Watching catalog directory")
	return watcher, nil
}

func (s *CatalogService) refresh(ctx context.Context, reason string) {
	cat, err := s.store.Refresh(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Str("reason", reason).Msg("Catalog refresh failed, keeping previous catalog")
		}
	} else if s.warmer != nil {
		s.warmer.Warm(cat)
	}
	if s.loaded != nil {
		select {
		case s.loaded <- err:
		default:
		}
	}
}

// String identifies the service in supervisor events.
func (s *CatalogService) String() string {
	return "catalog"
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
