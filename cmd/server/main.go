// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/tomtom215/tracklist/docs" // Import generated swagger docs
	"github.com/tomtom215/tracklist/internal/api"
	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/config"
	"github.com/tomtom215/tracklist/internal/export"
	"github.com/tomtom215/tracklist/internal/logging"
	"github.com/tomtom215/tracklist/internal/metrics"
	"github.com/tomtom215/tracklist/internal/playlist"
	"github.com/tomtom215/tracklist/internal/recommend"
	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
	"github.com/tomtom215/tracklist/internal/supervisor"
	"github.com/tomtom215/tracklist/internal/supervisor/services"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})
	metrics.AppInfo.WithLabelValues(Version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", Version).
		Str("catalog", cfg.Catalog.Location).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Tracklist")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}
	watchLogLevel()

	store := catalog.NewStore(
		catalog.NewSource(cfg.Catalog.Location, cfg.Catalog.HTTPSourceConfig()),
		logging.WithComponent("catalog"),
	)

	engine, err := newEngine(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	playlists := playlist.NewService(store, engine, export.NewLinker(cfg.Export.SpotlistrBase), logging.WithComponent("playlist"))

	mw := api.NewChiMiddlewareFromSettings(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
		cfg.Security.ReloadInterval,
	)
	router := api.NewRouter(api.NewHandler(playlists, store), mw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + cfg.Recommend.DetectionTimeout,
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewCatalogService(store, engine, services.CatalogServiceConfig{
		RefreshInterval: cfg.Catalog.RefreshInterval,
		Watch:           cfg.Catalog.Watch,
	}, logging.WithComponent("supervisor")))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, services.DefaultShutdownTimeout, logging.WithComponent("supervisor")))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	logging.Info().Msg("Tracklist stopped")
}

// newEngine builds the recommendation engine with a cached lingua detector.
func newEngine(cfg *config.Config) (*recommend.Engine, error) {
	start := time.Now()
	lingua, err := langdetect.NewLingua(cfg.Recommend.Detector.LinguaConfig())
	if err != nil {
		return nil, err
	}
	logging.Info().
		Bool("preload", cfg.Recommend.Detector.Preload).
		Bool("low_accuracy", cfg.Recommend.Detector.LowAccuracy).
		Dur("took", time.Since(start)).
		Msg("Language detector ready")

	var detector langdetect.Detector = lingua
	if cfg.Recommend.Detector.CacheSize > 0 {
		detector = langdetect.NewCachingDetector(lingua, cfg.Recommend.Detector.CacheSize, cfg.Recommend.Detector.CacheTTL)
	}

	return recommend.NewEngine(
		cfg.Recommend.EngineConfig(),
		recommend.NewRandShuffler(cfg.Recommend.Seed),
		detector,
		logging.WithComponent("recommend"),
	)
}

// watchLogLevel re-reads the config file on change and applies a new log
// level. Other settings need a restart.
func watchLogLevel() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		level, err := zerolog.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return
		}
		zerolog.SetGlobalLevel(level)
		logging.Info().Str("level", level.String()).Msg("Log level updated from config file")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
