// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package recommend turns free-text hints into a short, varied playlist
// drawn from a catalog.
//
// # Pipeline
//
// For each request the Engine:
//
//  1. shuffles a request-local permutation of the catalog rows
//  2. scores every track's metadata against the query with TF-IDF cosine
//     similarity (package tfidf)
//  3. stable-sorts by score, so equal scores keep the shuffled order
//  4. walks the top CandidateWindow tracks, skipping artists that already
//     have MaxPerArtist picks and, when a language filter is set, titles
//     whose detected language differs or cannot be determined
//  5. stops at MaxResults and shuffles the selection
//
// The catalog is never modified. The TF-IDF index for a catalog is built
// on first use and reused until a different catalog is passed in.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), nil, detector, logger)
//	res, err := engine.Recommend(ctx, store.Current(),
//	    recommend.BuildQuery("Taylor Swift", "pop", "happy"), recommend.English)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Per-request state lives on the
// stack; the shared random source is mutex-protected.
package recommend
