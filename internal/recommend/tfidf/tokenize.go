// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package tfidf

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r belongs to a token: any letter, any number
// or an underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize lowercases s and returns its runs of two or more word runes,
// with English stopwords removed.
func Tokenize(s string) []string {
	s = strings.ToLower(s)

	var tokens []string
	start, runes := -1, 0
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			if tok := s[start:end]; !IsStopword(tok) {
				tokens = append(tokens, tok)
			}
		}
		start, runes = -1, 0
	}

	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(s))

	return tokens
}
