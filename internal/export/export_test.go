// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package export

import (
	"reflect"
	"testing"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abcXYZ019_.-~/", "abcXYZ019_.-~/"},
		{"Hello - Bob", "Hello%20-%20Bob"},
		{"a\nb", "a%0Ab"},
		{"A, B & C?", "A%2C%20B%20%26%20C%3F"},
		{"Beyoncé", "Beyonc%C3%A9"},
		{"100%", "100%25"},
		{"a+b=c", "a%2Bb%3Dc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinker_URL(t *testing.T) {
	t.Parallel()

	l := NewLinker("")
	got := l.URL([]string{"Hello - Bob", "Ciao - Alice, Carol"})
	want := "https://www.spotlistr.com/search/textbox?data=Hello%20-%20Bob%0ACiao%20-%20Alice%2C%20Carol"
	if got != want {
		t.Errorf("URL() = %q\nwant %q", got, want)
	}

	if got := NewLinker("https://example.test/?q=").URL(nil); got != "https://example.test/?q=" {
		t.Errorf("empty playlist URL = %q", got)
	}
}

type line string

func (l line) Display() string { return string(l) }

func TestLines(t *testing.T) {
	t.Parallel()

	got := Lines([]line{"a - b", "c - d"})
	if !reflect.DeepEqual(got, []string{"a - b", "c - d"}) {
		t.Errorf("Lines() = %v", got)
	}
	if got := Lines([]line{}); len(got) != 0 {
		t.Errorf("Lines(empty) = %v", got)
	}
}
