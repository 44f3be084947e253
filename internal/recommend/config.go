// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// MaxResults is the playlist length cap.
	// Default: 30.
	MaxResults int `json:"max_results"`

	// MaxPerArtist caps picks sharing the same artists string.
	// Default: 3.
	MaxPerArtist int `json:"max_per_artist"`

	// CandidateWindow is how many top-ranked tracks are considered.
	// Catalogs larger than the window can miss language matches ranked
	// below it, since a strict filter may reject most of the window.
	// Default: 5000.
	CandidateWindow int `json:"candidate_window"`

	// DetectionTimeout bounds the language-filtered selection loop. When it
	// elapses the partial selection is returned and marked truncated.
	// Zero disables the bound.
	// Default: 10s.
	DetectionTimeout time.Duration `json:"detection_timeout"`

	// Seed seeds the shuffler built by NewEngine when none is injected.
	// Zero seeds from the clock.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the standard playlist shape.
func DefaultConfig() Config {
	return Config{
		MaxResults:       30,
		MaxPerArtist:     3,
		CandidateWindow:  5000,
		DetectionTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocritic // small value type
func (c Config) Validate() error {
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.MaxPerArtist < 1 {
		return fmt.Errorf("max_per_artist must be positive, got %d", c.MaxPerArtist)
	}
	if c.CandidateWindow < 1 {
		return fmt.Errorf("candidate_window must be positive, got %d", c.CandidateWindow)
	}
	if c.DetectionTimeout < 0 {
		return fmt.Errorf("detection_timeout must be non-negative, got %v", c.DetectionTimeout)
	}
	return nil
}
