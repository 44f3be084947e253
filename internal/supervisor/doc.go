// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package supervisor runs the long-lived services of the server under suture v4.

The tree has two layers:

	RootSupervisor ("tracklist")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff. Because the catalog store keeps
the last good catalog, a failing refresh loop never takes the API down.

Supervisor events are logged through sutureslog; main passes a *slog.Logger
backed by the process zerolog logger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogService(store, engine, services.CatalogServiceConfig{Watch: true}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logger))
	return tree.Serve(ctx)
*/
package supervisor
