// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package cli implements the tracklist command line tool. It drives the same
// catalog store, engine and playlist service as the HTTP server, without the
// server.
package cli
