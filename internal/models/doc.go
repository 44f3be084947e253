// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package models defines the JSON shapes exchanged over the HTTP API.

  - APIResponse: Standard response wrapper with status, data and metadata
  - PlaylistRequest: Validated playlist hints (artists, genres, mood, language)
  - PlaylistResponse, TrackView: A generated playlist and its entries
  - LanguageOption: One language selector entry
  - CatalogStatus: Summary of the loaded catalog

The models carry no behaviour. Validation tags are evaluated by the
validation package.
*/
package models
