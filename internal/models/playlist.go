// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package models

import "time"

// PlaylistRequest is the body of POST /api/v1/playlists. Every hint is
// optional; an empty request yields a random playlist.
type PlaylistRequest struct {
	Artists  string `json:"artists" validate:"max=500"`
	Genres   string `json:"genres" validate:"max=500"`
	Mood     string `json:"mood" validate:"max=500"`
	Language string `json:"language" validate:"language"`
}

// TrackView is one playlist entry as shown to clients.
type TrackView struct {
	Name    string `json:"name"`
	Artists string `json:"artists"`
	Genre   string `json:"genre,omitempty"`
	Album   string `json:"album,omitempty"`
	TrackID string `json:"track_id,omitempty"`
	Display string `json:"display"`
}

// PlaylistResponse is a generated playlist.
type PlaylistResponse struct {
	Tracks         []TrackView `json:"tracks"`
	Lines          []string    `json:"lines"`
	ExportURL      string      `json:"export_url"`
	Language       string      `json:"language"`
	Query          string      `json:"query"`
	CatalogVersion string      `json:"catalog_version"`

	// Truncated is set when language detection ran out of time and the
	// playlist may be shorter than it could have been.
	Truncated bool `json:"truncated"`
}

// LanguageOption is one entry of the language selector.
type LanguageOption struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// CatalogStatus describes the loaded catalog.
type CatalogStatus struct {
	Location      string    `json:"location"`
	Loaded        bool      `json:"loaded"`
	Version       string    `json:"version,omitempty"`
	Tracks        int       `json:"tracks"`
	SkippedRows   int       `json:"skipped_rows"`
	DuplicateRows int       `json:"duplicate_rows"`
	Bytes         int64     `json:"bytes"`
	LoadedAt      time.Time `json:"loaded_at,omitempty"`
	Message       string    `json:"message,omitempty"`
}
