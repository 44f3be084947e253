// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package recommend

import "github.com/tomtom215/tracklist/internal/recommend/langdetect"

// Language is a language filter code.
type Language = langdetect.Language

// Supported filters.
const (
	AnyLanguage = langdetect.Any
	English     = langdetect.English
	Tamil       = langdetect.Tamil
	Spanish     = langdetect.Spanish
	French      = langdetect.French
	German      = langdetect.German
	Japanese    = langdetect.Japanese
	Korean      = langdetect.Korean
	Portuguese  = langdetect.Portuguese
	Italian     = langdetect.Italian
	Hindi       = langdetect.Hindi
	Arabic      = langdetect.Arabic
	Turkish     = langdetect.Turkish
)

// BuildQuery joins the user's hints into one query string. Empty hints
// still contribute their separating spaces.
func BuildQuery(artists, genres, mood string) string {
	return artists + " " + genres + " " + mood
}
