// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package langdetect identifies the language of short texts such as song
// titles. Detection on titles is noisy; callers treat both an error and a
// mismatching answer as "not in the requested language".
package langdetect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUndetermined is returned when no language can be chosen reliably.
var ErrUndetermined = errors.New("language undetermined")

// Detector guesses the language of a text.
type Detector interface {
	Detect(text string) (Language, error)
}

// LinguaConfig tunes the lingua-backed detector.
type LinguaConfig struct {
	// MinimumRelativeDistance in [0, 0.99]; higher values answer less often.
	MinimumRelativeDistance float64

	// LowAccuracy trades accuracy for a much smaller memory footprint.
	LowAccuracy bool

	// Preload loads all language models at construction instead of lazily.
	Preload bool

	// Candidates restricts detection to these ISO 639-1 codes. Empty means
	// every language lingua knows. The selectable languages are always
	// added, and a short list makes titles in other languages come back as
	// one of the listed ones.
	Candidates []string
}

// Lingua is a Detector backed by lingua-go.
//
// Answers for languages outside the selector are returned as their
// lowercase ISO 639-1 code, so they never equal a filter. Titles of one or
// two Latin-script words are often ambiguous: "Hello" scores higher as
// Italian than as English, for instance. Scripts used by a single language
// (Hangul, kana, Tamil, Greek, Thai) and Han-only text are decided by rule
// and are reliable even for one word.
type Lingua struct {
	detector lingua.LanguageDetector
}

// NewLingua builds a detector. Building with Preload is slow and should
// happen once at startup.
func NewLingua(cfg LinguaConfig) (*Lingua, error) {
	if cfg.MinimumRelativeDistance < 0 || cfg.MinimumRelativeDistance > 0.99 {
		return nil, fmt.Errorf("minimum relative distance must be in [0, 0.99], got %v", cfg.MinimumRelativeDistance)
	}

	candidates, err := candidateLanguages(cfg.Candidates)
	if err != nil {
		return nil, err
	}

	builder := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		WithMinimumRelativeDistance(cfg.MinimumRelativeDistance)
	if cfg.LowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}
	if cfg.Preload {
		builder = builder.WithPreloadedLanguageModels()
	}

	return &Lingua{detector: builder.Build()}, nil
}

// candidateLanguages resolves codes to lingua languages, always including
// the selectable ones.
func candidateLanguages(codes []string) ([]lingua.Language, error) {
	if len(codes) == 0 {
		return lingua.AllLanguages(), nil
	}

	seen := make(map[lingua.Language]bool)
	var out []lingua.Language
	add := func(code string) error {
		l := lingua.GetLanguageFromIsoCode639_1(lingua.GetIsoCode639_1FromValue(strings.TrimSpace(code)))
		if l == lingua.Unknown {
			return fmt.Errorf("unsupported detector language %q", code)
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
		return nil
	}

	for _, o := range options {
		if o.Code.IsFilter() {
			if err := add(string(o.Code)); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range codes {
		if err := add(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Detect implements Detector.
func (d *Lingua) Detect(text string) (Language, error) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok || lang == lingua.Unknown {
		return "", ErrUndetermined
	}
	code := lang.IsoCode639_1()
	if code == lingua.UnknownIsoCode639_1 {
		return "", ErrUndetermined
	}
	return Language(strings.ToLower(code.String())), nil
}
