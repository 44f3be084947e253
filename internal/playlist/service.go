// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package playlist ties the catalog, the recommender and the export link
// together into the single operation the API exposes.
package playlist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/export"
	"github.com/tomtom215/tracklist/internal/logging"
	"github.com/tomtom215/tracklist/internal/metrics"
	"github.com/tomtom215/tracklist/internal/recommend"
)

// NoMatchesMessage is shown when a request selected nothing.
const NoMatchesMessage = "No matches found. Try again!"

// ErrNoMatches is returned when nothing passed the filters.
var ErrNoMatches = errors.New("no matching tracks")

// CatalogProvider supplies the current catalog.
type CatalogProvider interface {
	Current() *catalog.Catalog
	Refresh(ctx context.Context) (*catalog.Catalog, error)
	Source() catalog.Source
}

// Recommender selects tracks for a query.
type Recommender interface {
	Recommend(ctx context.Context, cat *catalog.Catalog, query string, lang recommend.Language) (*recommend.Result, error)
}

// Request holds the user's hints.
type Request struct {
	Artists  string
	Genres   string
	Mood     string
	Language recommend.Language
}

// Playlist is a generated playlist ready for display.
type Playlist struct {
	Tracks         []*catalog.Track
	Lines          []string
	ExportURL      string
	Query          string
	Language       recommend.Language
	CatalogVersion string
	Truncated      bool
}

// Service generates playlists.
type Service struct {
	catalogs    CatalogProvider
	recommender Recommender
	linker      *export.Linker
	logger      zerolog.Logger
}

// NewService creates a playlist service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(catalogs CatalogProvider, recommender Recommender, linker *export.Linker, logger zerolog.Logger) *Service {
	if linker == nil {
		linker = export.NewLinker("")
	}
	return &Service{
		catalogs:    catalogs,
		recommender: recommender,
		linker:      linker,
		logger:      logger.With().Str("component", "playlist").Logger(),
	}
}

// MissingCatalogMessage is the user-facing text for an absent catalog.
func (s *Service) MissingCatalogMessage() string {
	return fmt.Sprintf("Missing '%s'!", filepath.Base(s.catalogs.Source().Location()))
}

// Generate builds a playlist. It returns an error wrapping
// catalog.ErrMissingCatalog when no catalog can be loaded, and
// ErrNoMatches when the selection is empty.
func (s *Service) Generate(ctx context.Context, req Request) (*Playlist, error) {
	start := time.Now()
	lang := req.Language
	if lang == "" {
		lang = recommend.AnyLanguage
	}

	cat := s.catalogs.Current()
	if cat == nil {
		var err error
		if cat, err = s.catalogs.Refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Catalog unavailable")
			metrics.RecordPlaylist(string(lang), "error", 0, time.Since(start))
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	query := recommend.BuildQuery(req.Artists, req.Genres, req.Mood)
	res, err := s.recommender.Recommend(ctx, cat, query, lang)
	if err != nil {
		metrics.RecordPlaylist(string(lang), "error", 0, time.Since(start))
		return nil, fmt.Errorf("recommend: %w", err)
	}

	log := s.logger.With().Str("request_id", logging.RequestIDFromContext(ctx)).Logger()
	if len(res.Tracks) == 0 {
		metrics.RecordPlaylist(string(lang), "no_matches", 0, time.Since(start))
		log.Info().Str("language", string(lang)).Bool("truncated", res.Truncated).Msg("No matching tracks")
		return nil, ErrNoMatches
	}

	outcome := "ok"
	if res.Truncated {
		outcome = "truncated"
	}
	metrics.RecordPlaylist(string(lang), outcome, len(res.Tracks), time.Since(start))

	lines := export.Lines(res.Tracks)
	log.Info().
		Str("language", string(lang)).
		Int("tracks", len(lines)).
		Bool("truncated", res.Truncated).
		Dur("took", time.Since(start)).
		Msg("Playlist generated")

	return &Playlist{
		Tracks:         res.Tracks,
		Lines:          lines,
		ExportURL:      s.linker.URL(lines),
		Query:          query,
		Language:       lang,
		CatalogVersion: cat.Version(),
		Truncated:      res.Truncated,
	}, nil
}
