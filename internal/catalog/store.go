// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/tracklist/internal/metrics"
)

// DefaultRefreshTimeout bounds a shared refresh once no caller is waiting
// on it any longer.
const DefaultRefreshTimeout = 2 * time.Minute

// Store holds the current catalog and refreshes it from a Source.
// Readers get a consistent snapshot through Current; a refresh swaps the
// pointer atomically and never mutates a published catalog.
type Store struct {
	source  Source
	logger  zerolog.Logger
	current atomic.Pointer[Catalog]
	group   singleflight.Group
	now     func() time.Time

	refreshTimeout time.Duration
}

// NewStore creates an empty store. Nothing is loaded until Refresh is called.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(source Source, logger zerolog.Logger) *Store {
	return &Store{
		source: source,
		logger: logger.With().Str("component", "catalog").Str("source", source.Location()).Logger(),
		now:    time.Now,

		refreshTimeout: DefaultRefreshTimeout,
	}
}

// Source returns the store's catalog source.
func (s *Store) Source() Source { return s.source }

// Current returns the loaded catalog, or nil before the first successful load.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Ready reports whether a catalog has been loaded.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Refresh fetches the source and publishes a new catalog when its content
// changed. Concurrent callers share a single fetch. On failure the previous
// catalog, if any, stays in place and the error is returned.
//
// The shared fetch is detached from the caller that started it: a caller
// whose ctx ends gets ctx.Err() while the fetch carries on for the others,
// bounded by the refresh timeout.
func (s *Store) Refresh(ctx context.Context) (*Catalog, error) {
	ch := s.group.DoChan("refresh", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
		defer cancel()
		return s.refresh(fetchCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Catalog), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) refresh(ctx context.Context) (*Catalog, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.RecordCatalogLoad("error", 0, 0)
		s.logger.Warn().Err(err).Msg("Catalog fetch failed")
		return nil, err
	}

	sum := sha256.Sum256(data)
	version := hex.EncodeToString(sum[:])

	if cur := s.current.Load(); cur != nil && cur.version == version {
		metrics.RecordCatalogLoad("unchanged", 0, 0)
		s.logger.Debug().Str("version", version[:12]).Msg("Catalog unchanged")
		return cur, nil
	}

	start := s.now()
	cat, err := Load(bytes.NewReader(data), version)
	if err != nil {
		metrics.RecordCatalogLoad("error", 0, 0)
		s.logger.Error().Err(err).Msg("Catalog parse failed")
		return nil, err
	}
	cat.loadedAt = s.now()
	cat.size = int64(len(data))
	s.current.Store(cat)

	metrics.RecordCatalogLoad("loaded", cat.Len(), cat.SkippedRows())
	s.logger.Info().
		Str("version", version[:12]).
		Int("tracks", cat.Len()).
		Int("duplicates", cat.DuplicateRows()).
		Int("skipped", cat.SkippedRows()).
		Dur("took", cat.loadedAt.Sub(start)).
		Msg("Catalog loaded")

	return cat, nil
}
