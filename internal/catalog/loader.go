// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column names recognized in the header row.
const (
	ColumnTrackName = "track_name"
	ColumnArtists   = "artists"
	ColumnGenre     = "track_genre"
	ColumnTrackID   = "track_id"
	ColumnAlbum     = "album_name"
)

const (
	sourceArtistSeparator  = ";"
	displayArtistSeparator = ", "
)

// columns maps recognized column names to their header index, -1 when absent.
type columns struct {
	name, artists, genre, id, album int
}

func locateColumns(header []string) (columns, error) {
	cols := columns{name: -1, artists: -1, genre: -1, id: -1, album: -1}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		switch h {
		case ColumnTrackName:
			cols.name = i
		case ColumnArtists:
			cols.artists = i
		case ColumnGenre:
			cols.genre = i
		case ColumnTrackID:
			cols.id = i
		case ColumnAlbum:
			cols.album = i
		}
	}
	if cols.name < 0 || cols.artists < 0 {
		return cols, fmt.Errorf("%w: header must contain %q and %q columns", ErrInvalidCatalog, ColumnTrackName, ColumnArtists)
	}
	return cols, nil
}

// cell returns record[i], or "" for absent columns and short rows.
func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// NormalizeArtists rewrites the source's ';' separators into the ", "
// display form.
func NormalizeArtists(raw string) string {
	return strings.ReplaceAll(raw, sourceArtistSeparator, displayArtistSeparator)
}

func splitArtists(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, sourceArtistSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type trackKey struct {
	name, artists string
}

// Load parses a CSV track table. Rows the CSV reader rejects are skipped
// and counted; missing cells read as empty strings. The first occurrence
// of each (track name, normalized artists) pair is kept.
//
// Identical input always yields an identical track table.
func Load(r io.Reader, version string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrInvalidCatalog)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidCatalog, err)
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{version: version}
	seen := make(map[trackKey]struct{})

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			cat.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		cat.rows++

		raw := cell(record, cols.artists)
		t := Track{
			Name:       cell(record, cols.name),
			Artists:    NormalizeArtists(raw),
			ArtistList: splitArtists(raw),
			Genre:      cell(record, cols.genre),
			TrackID:    cell(record, cols.id),
			Album:      cell(record, cols.album),
		}

		key := trackKey{name: t.Name, artists: t.Artists}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		t.Metadata = t.Artists + " " + t.Genre
		cat.tracks = append(cat.tracks, t)
	}

	return cat, nil
}
