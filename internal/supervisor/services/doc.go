// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package services adapts tracklist components to suture's Serve pattern.

# Available Services

CatalogService:
  - Loads the catalog once at startup and warms the recommendation index
  - Re-fetches on CatalogServiceConfig.RefreshInterval when set
  - Watches the parent directory of a file catalog with fsnotify and reloads
    after a debounce when the file is written or recreated

HTTPServerService:
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with a fresh timeout context when the tree stops

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

A failed catalog refresh is not a crash. It is logged and the store keeps the
previous catalog. Only watcher failures make CatalogService return an error.
*/
package services
