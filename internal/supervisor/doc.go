// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package supervisor provides process supervision for the serve command using
suture v4.

# Overview

The supervisor tree organizes services into three layers:

	RootSupervisor ("filmscout")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogReloadService (if server.reload_interval > 0)
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheCleanupService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Each layer counts
failures independently, so a catalog that keeps failing to load never
takes the HTTP server down with it.

# Usage Example

	logger := logging.NewSlogLogger("supervisor")
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddCatalogService(services.NewCatalogReloadService(engine, reloadCfg, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

# Logging

Supervisor events (service start, failure, backoff) are written through
sutureslog to a slog.Logger, which internal/logging bridges to zerolog.
*/
package supervisor
