// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package export renders playlists for display and builds the link that
// hands a playlist over to Spotlistr for import into Spotify.
package export

import (
	"strings"
)

// DefaultSpotlistrBase is the Spotlistr text import endpoint.
const DefaultSpotlistrBase = "https://www.spotlistr.com/search/textbox?data="

// Displayable is anything that renders as one playlist line.
type Displayable interface {
	Display() string
}

// Lines renders each track as "<track_name> - <artists>".
func Lines[T Displayable](tracks []T) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Display()
	}
	return out
}

// Linker builds import links for a playlist.
type Linker struct {
	base string
}

// NewLinker creates a Linker for base, which must end where the encoded
// data is appended. An empty base selects DefaultSpotlistrBase.
func NewLinker(base string) *Linker {
	if base == "" {
		base = DefaultSpotlistrBase
	}
	return &Linker{base: base}
}

// URL joins lines with newlines and appends them, percent-encoded, to the
// base URL.
func (l *Linker) URL(lines []string) string {
	return l.base + Quote(strings.Join(lines, "\n"))
}

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether b is left as-is by Quote.
func isUnreserved(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case '_', '.', '-', '~', '/':
		return true
	}
	return false
}

// Quote percent-encodes every UTF-8 byte of s except ASCII letters, digits
// and "_.-~/". Spaces become %20.
func Quote(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}
