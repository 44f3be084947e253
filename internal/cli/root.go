// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/config"
	"github.com/tomtom215/tracklist/internal/logging"
	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
)

// Options configures the command tree.
type Options struct {
	Version string

	// NewDetector builds the language detector used by filtered requests.
	// Defaults to lingua behind an LRU cache.
	NewDetector func(cfg config.DetectorConfig) (langdetect.Detector, error)
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	opts     Options
	cfg      *config.Config
	catalog  string
	logLevel string
}

// NewRootCommand builds the tracklist command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.NewDetector == nil {
		opts.NewDetector = linguaDetector
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "tracklist",
		Short: "Curated playlists from a static track catalog",
		Long: `Tracklist ranks the tracks of a CSV catalog against free-text hints,
keeps at most a few tracks per artist, optionally filters by title language
and prints a shuffled playlist with a Spotlistr export link.

Settings come from config.yaml and environment variables, like the server.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.catalog, "catalog", "c", "", "catalog CSV path or http(s) URL (default from config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error, disabled")

	root.AddCommand(
		a.recommendCommand(),
		a.catalogCommand(),
		languagesCommand(),
		versionCommand(opts.Version),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(Options{Version: version}).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// setup loads configuration and routes logs to stderr. Flags override
// configured values.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.catalog != "" {
		cfg.Catalog.Location = a.catalog
	}
	logging.Init(logging.Config{
		Level:     a.logLevel,
		Format:    "console",
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
	a.cfg = cfg
	return nil
}

func (a *app) newStore() *catalog.Store {
	return catalog.NewStore(
		catalog.NewSource(a.cfg.Catalog.Location, a.cfg.Catalog.HTTPSourceConfig()),
		logging.WithComponent("catalog"),
	)
}

func linguaDetector(cfg config.DetectorConfig) (langdetect.Detector, error) {
	lingua, err := langdetect.NewLingua(cfg.LinguaConfig())
	if err != nil {
		return nil, err
	}
	if cfg.CacheSize <= 0 {
		return lingua, nil
	}
	return langdetect.NewCachingDetector(lingua, cfg.CacheSize, cfg.CacheTTL), nil
}
