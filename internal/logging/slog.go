// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package logging

import (
	"log/slog"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// NewSlogLogger returns an slog.Logger writing into the global zerolog
// stream. The supervisor's sutureslog hook logs through it.
func NewSlogLogger() *slog.Logger {
	return NewSlogLoggerWith(Logger())
}

// NewSlogLoggerWith returns an slog.Logger writing into logger and honoring
// its level.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogLoggerWith(logger zerolog.Logger) *slog.Logger {
	handler := slogzerolog.Option{
		Level:  slogLevel(logger.GetLevel()),
		Logger: &logger,
	}.NewZerologHandler()
	return slog.New(handler)
}

// slogLevel maps a zerolog threshold to the nearest slog one.
func slogLevel(level zerolog.Level) slog.Level {
	switch {
	case level <= zerolog.DebugLevel:
		return slog.LevelDebug
	case level == zerolog.InfoLevel:
		return slog.LevelInfo
	case level == zerolog.WarnLevel:
		return slog.LevelWarn
	case level == zerolog.Disabled:
		return slog.LevelError + 100
	default:
		return slog.LevelError
	}
}
