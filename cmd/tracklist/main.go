// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Command tracklist generates playlists from the terminal.
//
//	tracklist recommend --artists "Bad Bunny" --genres latin --language es
//	tracklist catalog -c /data/spotify_songs.csv
package main

import (
	"os"

	"github.com/tomtom215/tracklist/internal/cli"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(cli.Execute(Version))
}
