// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/export"
	"github.com/tomtom215/tracklist/internal/logging"
	"github.com/tomtom215/tracklist/internal/playlist"
	"github.com/tomtom215/tracklist/internal/recommend"
	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
)

type recommendFlags struct {
	artists  string
	genres   string
	mood     string
	language string
	seed     uint64
	json     bool
}

func (a *app) recommendCommand() *cobra.Command {
	var f recommendFlags
	cmd := &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"rec"},
		Short:   "Generate a playlist from the catalog",
		Long: `Generates a playlist from artist, genre and mood hints. Every hint is
optional; without hints the playlist is random. --language restricts
titles to one language (see "tracklist languages").`,
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRecommend(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.artists, "artists", "a", "", "artist hints")
	cmd.Flags().StringVarP(&f.genres, "genres", "g", "", "genre hints")
	cmd.Flags().StringVarP(&f.mood, "mood", "m", "", "mood hints")
	cmd.Flags().StringVarP(&f.language, "language", "l", string(langdetect.Any), "language code")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "shuffle seed; 0 picks a random one")
	cmd.Flags().BoolVar(&f.json, "json", false, "output the playlist as JSON")
	return cmd
}

func (a *app) runRecommend(cmd *cobra.Command, f recommendFlags) error {
	lang, ok := langdetect.Parse(strings.ToLower(strings.TrimSpace(f.language)))
	if !ok {
		return fmt.Errorf("unknown language %q, expected one of %s", f.language, strings.Join(langdetect.Codes(), ", "))
	}

	var detector langdetect.Detector
	if lang.IsFilter() {
		d, err := a.opts.NewDetector(a.cfg.Recommend.Detector)
		if err != nil {
			return fmt.Errorf("language detector: %w", err)
		}
		detector = d
	}

	engineCfg := a.cfg.Recommend.EngineConfig()
	if cmd.Flags().Changed("seed") {
		engineCfg.Seed = f.seed
	}
	engine, err := recommend.NewEngine(engineCfg, nil, detector, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}

	store := a.newStore()
	svc := playlist.NewService(store, engine, export.NewLinker(a.cfg.Export.SpotlistrBase), logging.WithComponent("playlist"))

	pl, err := svc.Generate(cmd.Context(), playlist.Request{
		Artists:  f.artists,
		Genres:   f.genres,
		Mood:     f.mood,
		Language: lang,
	})
	switch {
	case errors.Is(err, catalog.ErrMissingCatalog):
		return errors.New(svc.MissingCatalogMessage())
	case errors.Is(err, playlist.ErrNoMatches):
		fmt.Fprintln(cmd.OutOrStdout(), playlist.NoMatchesMessage)
		return nil
	case err != nil:
		return err
	}

	if f.json {
		return printPlaylistJSON(cmd, pl)
	}
	printPlaylist(cmd, pl)
	return nil
}

func printPlaylist(cmd *cobra.Command, pl *playlist.Playlist) {
	out := cmd.OutOrStdout()
	for i, line := range pl.Lines {
		fmt.Fprintf(out, "%2d. %s\n", i+1, line)
	}
	if pl.Truncated {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Language detection timed out; the playlist may be shorter than usual.")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Export to Spotify: %s\n", pl.ExportURL)
}

func printPlaylistJSON(cmd *cobra.Command, pl *playlist.Playlist) error {
	doc := struct {
		Tracks         []*catalog.Track `json:"tracks"`
		Lines          []string         `json:"lines"`
		ExportURL      string           `json:"export_url"`
		Language       string           `json:"language"`
		CatalogVersion string           `json:"catalog_version"`
		Truncated      bool             `json:"truncated"`
	}{pl.Tracks, pl.Lines, pl.ExportURL, string(pl.Language), pl.CatalogVersion, pl.Truncated}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal playlist: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
