// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Command server runs the Tracklist HTTP API.

Tracklist builds playlists from a static CSV track catalog. A request carries
free-text hints (artists, genres, mood) and an optional language; the server
ranks tracks by TF-IDF similarity, caps tracks per artist, filters by detected
title language and returns a shuffled playlist with a Spotlistr export link.

# Startup

 1. Configuration: koanf v2 layering defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Catalog store over a file or HTTP(S) source
 4. Language detector (lingua) behind an LRU cache
 5. Recommendation engine and playlist service
 6. Chi router with CORS, rate limiting and Prometheus metrics
 7. Supervisor tree: catalog service in the data layer, HTTP server in the
    api layer

The catalog is loaded by the catalog service after the tree starts. Until it
loads, /api/v1/health/ready reports not_ready and playlist requests get the
missing catalog message.

# Example

	export CATALOG_PATH=/data/spotify_songs.csv
	export HTTP_PORT=8501
	./server

# Signals

SIGINT and SIGTERM cancel the tree. The HTTP server drains in-flight requests
for up to 10 seconds.
*/
package main
