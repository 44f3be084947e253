// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/metrics"
	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
	"github.com/tomtom215/tracklist/internal/recommend/tfidf"
)

// Engine produces playlists from a catalog. It is safe for concurrent use.
type Engine struct {
	config   Config
	shuffler Shuffler
	detector langdetect.Detector
	logger   zerolog.Logger

	// indexes holds the TF-IDF index of the most recent catalogs, oldest
	// first in indexOrder. Catalogs are immutable, so pointer identity is a
	// sufficient key.
	indexMu    sync.Mutex
	indexes    map[*catalog.Catalog]*tfidf.Index
	indexOrder []*catalog.Catalog
	indexBuild singleflight.Group
}

// maxCachedIndexes keeps the previous catalog's index alive across a
// refresh so requests still holding it do not force rebuilds.
const maxCachedIndexes = 2

// NewEngine creates an engine. A nil shuffler is replaced by
// NewRandShuffler(cfg.Seed). detector may be nil, in which case only
// unfiltered requests succeed.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg Config, shuffler Shuffler, detector langdetect.Detector, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	if shuffler == nil {
		shuffler = NewRandShuffler(cfg.Seed)
	}
	return &Engine{
		config:   cfg,
		shuffler: shuffler,
		detector: detector,
		logger:   logger.With().Str("component", "recommend").Logger(),
		indexes:  make(map[*catalog.Catalog]*tfidf.Index, maxCachedIndexes),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.config }

// Recommend selects up to MaxResults tracks from cat for query. An empty
// catalog, or one where nothing passes the filters, yields an empty
// result rather than an error. Errors are returned only for a cancelled
// ctx or a language filter without a detector.
func (e *Engine) Recommend(ctx context.Context, cat *catalog.Catalog, query string, lang Language) (*Result, error) {
	filter := lang.IsFilter()
	if filter && e.detector == nil {
		return nil, ErrNoDetector
	}

	result := &Result{Tracks: []*catalog.Track{}}
	n := cat.Len()
	if n == 0 {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	scores := e.indexFor(cat).Scores(query)
	for _, s := range scores {
		if s > 0 {
			result.Stats.MatchedQueryTerms = true
			break
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	e.shuffler.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	window := min(e.config.CandidateWindow, n)
	result.Stats.Candidates = window

	selCtx := ctx
	if filter && e.config.DetectionTimeout > 0 {
		var cancel context.CancelFunc
		selCtx, cancel = context.WithTimeout(ctx, e.config.DetectionTimeout)
		defer cancel()
	}

	picks := make(map[string]int)
	for _, row := range order[:window] {
		if len(result.Tracks) >= e.config.MaxResults {
			break
		}
		track := cat.Track(row)
		if picks[track.Artists] >= e.config.MaxPerArtist {
			result.Stats.ArtistCapped++
			continue
		}

		if filter {
			if selCtx.Err() != nil {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				result.Truncated = true
				break
			}
			detected, err := e.detector.Detect(track.Name)
			if err != nil {
				result.Stats.DetectionFailures++
				reason := "error"
				if errors.Is(err, langdetect.ErrUndetermined) {
					reason = "undetermined"
				}
				metrics.RecordDetectionFailure(reason)
				continue
			}
			if detected != lang {
				result.Stats.LanguageRejected++
				continue
			}
		}

		result.Tracks = append(result.Tracks, track)
		picks[track.Artists]++
	}

	tracks := result.Tracks
	e.shuffler.Shuffle(len(tracks), func(i, j int) { tracks[i], tracks[j] = tracks[j], tracks[i] })

	e.logger.Debug().
		Str("language", string(lang)).
		Int("selected", len(tracks)).
		Int("window", window).
		Int("artist_capped", result.Stats.ArtistCapped).
		Int("language_rejected", result.Stats.LanguageRejected).
		Int("detection_failures", result.Stats.DetectionFailures).
		Bool("truncated", result.Truncated).
		Dur("took", time.Since(start)).
		Msg("Playlist selected")

	return result, nil
}

// indexFor returns the TF-IDF index of cat, building it on first use.
// Concurrent requests for the same new catalog share one build, and the
// build runs without holding indexMu.
func (e *Engine) indexFor(cat *catalog.Catalog) *tfidf.Index {
	if idx := e.cachedIndex(cat); idx != nil {
		return idx
	}

	v, _, _ := e.indexBuild.Do(fmt.Sprintf("%p", cat), func() (interface{}, error) {
		if idx := e.cachedIndex(cat); idx != nil {
			return idx, nil
		}
		idx := e.buildIndex(cat)
		e.storeIndex(cat, idx)
		return idx, nil
	})
	return v.(*tfidf.Index)
}

func (e *Engine) cachedIndex(cat *catalog.Catalog) *tfidf.Index {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()
	return e.indexes[cat]
}

func (e *Engine) storeIndex(cat *catalog.Catalog, idx *tfidf.Index) {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()

	e.indexes[cat] = idx
	e.indexOrder = append(e.indexOrder, cat)
	for len(e.indexOrder) > maxCachedIndexes {
		delete(e.indexes, e.indexOrder[0])
		e.indexOrder = e.indexOrder[1:]
	}
}

func (e *Engine) buildIndex(cat *catalog.Catalog) *tfidf.Index {
	start := time.Now()
	docs := make([]string, cat.Len())
	for i := range docs {
		docs[i] = cat.Track(i).Metadata
	}
	idx := tfidf.NewIndex(docs)

	e.logger.Info().
		Str("catalog_version", shortVersion(cat.Version())).
		Int("documents", idx.Len()).
		Int("vocabulary", idx.VocabularySize()).
		Dur("took", time.Since(start)).
		Msg("Built TF-IDF index")
	return idx
}

// Warm builds the index for cat ahead of the first request.
func (e *Engine) Warm(cat *catalog.Catalog) {
	if cat.Len() > 0 {
		e.indexFor(cat)
	}
}

func shortVersion(v string) string {
	if len(v) > 12 {
		return v[:12]
	}
	return v
}
