// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package main provides the Tracklist HTTP server
//
// @title Tracklist API
// @version 1.0
// @description Builds playlists from a static CSV track catalog. Tracks are ranked by TF-IDF
// @description similarity to free-text artist, genre and mood hints, capped per artist,
// @description optionally filtered by the detected language of the title and shuffled.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/tracklist/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Playlists
// @tag.description Playlist generation and the language selector
//
// @tag.name Catalog
// @tag.description Status and reload of the track catalog
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
