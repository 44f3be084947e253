// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package langdetect

// Language is an ISO 639-1 code, or Any for no filtering.
type Language string

const (
	Any        Language = "any"
	English    Language = "en"
	Tamil      Language = "ta"
	Spanish    Language = "es"
	French     Language = "fr"
	German     Language = "de"
	Japanese   Language = "ja"
	Korean     Language = "ko"
	Portuguese Language = "pt"
	Italian    Language = "it"
	Hindi      Language = "hi"
	Arabic     Language = "ar"
	Turkish    Language = "tr"
)

// Option is one entry of the language selector.
type Option struct {
	Label string   `json:"label"`
	Code  Language `json:"code"`
}

// options is the selector in display order. Any comes first. Detection can
// answer with codes outside this list; those never match a filter.
var options = []Option{
	{"Any Language", Any},
	{"English", English},
	{"Tamil", Tamil},
	{"Spanish", Spanish},
	{"French", French},
	{"German", German},
	{"Japanese", Japanese},
	{"Korean", Korean},
	{"Portuguese", Portuguese},
	{"Italian", Italian},
	{"Hindi", Hindi},
	{"Arabic", Arabic},
	{"Turkish", Turkish},
}

// Options returns the language selector entries in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Codes returns every accepted filter code, Any included.
func Codes() []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = string(o.Code)
	}
	return out
}

// Parse returns the Language for code. The empty string means Any.
func Parse(code string) (Language, bool) {
	if code == "" {
		return Any, true
	}
	for _, o := range options {
		if string(o.Code) == code {
			return o.Code, true
		}
	}
	return "", false
}

// IsFilter reports whether l restricts results to a specific language.
func (l Language) IsFilter() bool {
	return l != Any && l != ""
}
