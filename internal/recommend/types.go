// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package recommend

import (
	"errors"

	"github.com/tomtom215/tracklist/internal/catalog"
)

// ErrNoDetector is returned when a language filter is requested from an
// engine built without a detector.
var ErrNoDetector = errors.New("language filter requested but no detector configured")

// Result is one generated playlist.
type Result struct {
	// Tracks point into the catalog the playlist was drawn from.
	Tracks []*catalog.Track

	// Truncated is set when the detection timeout cut selection short.
	Truncated bool

	// Stats describes the work done; useful for logs and debugging.
	Stats Stats
}

// Stats counts what happened during selection.
type Stats struct {
	// Candidates is the size of the ranked window that was walked.
	Candidates        int
	ArtistCapped      int
	LanguageRejected  int
	DetectionFailures int

	// MatchedQueryTerms is false when no track shared a term with the
	// query, in which case ranking fell back to the shuffled order.
	MatchedQueryTerms bool
}

// Display returns the tracks as "<name> - <artists>" strings.
func (r *Result) Display() []string {
	out := make([]string, len(r.Tracks))
	for i, t := range r.Tracks {
		out[i] = t.Display()
	}
	return out
}
