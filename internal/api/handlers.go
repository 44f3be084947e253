// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package api

import (
	"context"
	"time"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/playlist"
)

// PlaylistGenerator builds playlists. playlist.Service implements it.
type PlaylistGenerator interface {
	Generate(ctx context.Context, req playlist.Request) (*playlist.Playlist, error)
	MissingCatalogMessage() string
}

// CatalogStore holds the loaded catalog. catalog.Store implements it.
type CatalogStore interface {
	Current() *catalog.Catalog
	Refresh(ctx context.Context) (*catalog.Catalog, error)
	Ready() bool
	Source() catalog.Source
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_playlist.go: playlist generation and language options
//   - handlers_catalog.go: catalog status and reload
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	playlists PlaylistGenerator
	catalogs  CatalogStore
	startTime time.Time

	// reloadTimeout bounds a manual catalog reload.
	reloadTimeout time.Duration
}

// NewHandler creates a new API handler.
func NewHandler(playlists PlaylistGenerator, catalogs CatalogStore) *Handler {
	return &Handler{
		playlists:     playlists,
		catalogs:      catalogs,
		startTime:     time.Now(),
		reloadTimeout: 2 * time.Minute,
	}
}
