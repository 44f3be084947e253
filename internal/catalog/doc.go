// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package catalog loads the static track table that playlists are drawn from.

A catalog is a CSV file with a header row. Columns are located by name:

	track_name   required
	artists      required, multiple artists separated by ';'
	track_genre  optional
	track_id     optional
	album_name   optional

Loading normalizes artist separators to ", ", drops later duplicates of the
same (track name, artists) pair and derives the Metadata text that the
recommender matches queries against. The resulting *Catalog is immutable
and may be shared across goroutines.

# Store

Store owns the current catalog handle. Refresh fetches the source, hashes
the bytes and only re-parses when the content changed, so it can be called
on a timer or from a file watcher without cost when nothing moved:

	store := catalog.NewStore(catalog.NewFileSource("dataset.csv"), logger)
	if _, err := store.Refresh(ctx); errors.Is(err, catalog.ErrMissingCatalog) {
	    // serve a "missing catalog" message instead of playlists
	}
	cat := store.Current()

# Sources

FileSource reads a local path. HTTPSource fetches a URL through a
gobreaker circuit breaker and maps HTTP 404 to ErrMissingCatalog.
NewSource picks one from the location's scheme.
*/
package catalog
