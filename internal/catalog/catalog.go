// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package catalog

import (
	"errors"
	"time"
)

var (
	// ErrMissingCatalog is returned when the catalog source cannot be found or read.
	ErrMissingCatalog = errors.New("missing catalog")

	// ErrInvalidCatalog is returned when the source is readable but is not a track table.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Track is one distinct song. Its identity is the (Name, Artists) pair.
type Track struct {
	// Name is the song title as it appears in the source.
	Name string `json:"track_name"`

	// Artists is the display form with artists joined by ", ".
	Artists string `json:"artists"`

	// ArtistList holds the individual artist names in source order.
	ArtistList []string `json:"artist_list"`

	// Genre may be empty.
	Genre string `json:"genre,omitempty"`

	// Metadata is Artists + " " + Genre. Used for matching, never displayed.
	Metadata string `json:"-"`

	TrackID string `json:"track_id,omitempty"`
	Album   string `json:"album,omitempty"`
}

// Display renders the track as "<name> - <artists>".
func (t *Track) Display() string {
	return t.Name + " - " + t.Artists
}

// Catalog is an immutable, deduplicated track table.
type Catalog struct {
	tracks   []Track
	version  string
	loadedAt time.Time
	skipped  int
	rows     int
	size     int64
}

// Len returns the number of distinct tracks.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tracks)
}

// Track returns the i-th track. The pointer must not be used to modify it.
func (c *Catalog) Track(i int) *Track {
	return &c.tracks[i]
}

// Version identifies the content the catalog was parsed from.
func (c *Catalog) Version() string { return c.version }

// LoadedAt is when the catalog was parsed.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// SkippedRows counts rows the CSV reader rejected.
func (c *Catalog) SkippedRows() int { return c.skipped }

// DuplicateRows counts well-formed rows dropped as duplicates.
func (c *Catalog) DuplicateRows() int { return c.rows - len(c.tracks) }

// SizeBytes is the size of the source content. Zero when unknown.
func (c *Catalog) SizeBytes() int64 { return c.size }

// Info is a summary of a catalog suitable for status endpoints.
type Info struct {
	Version       string    `json:"version"`
	Tracks        int       `json:"tracks"`
	SkippedRows   int       `json:"skipped_rows"`
	DuplicateRows int       `json:"duplicate_rows"`
	Bytes         int64     `json:"bytes"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// Info summarizes the catalog.
func (c *Catalog) Info() Info {
	return Info{
		Version:       c.version,
		Tracks:        len(c.tracks),
		SkippedRows:   c.skipped,
		DuplicateRows: c.DuplicateRows(),
		Bytes:         c.size,
		LoadedAt:      c.loadedAt,
	}
}
