// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/filmscout/internal/api"
	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/config"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/recommend"
	"github.com/tomtom215/filmscout/internal/supervisor"
	"github.com/tomtom215/filmscout/internal/supervisor/services"
)

func runServe(ctx context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("serve", e)
	base.register(fs)
	host := fs.String("host", "", "listen host, overrides server.host")
	port := fs.Int("port", 0, "listen port, overrides server.port")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := base.load()
	if err != nil {
		return err
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger := logging.WithComponent("serve")
	if cfg.ShouldWarnAboutCORS() {
		logger.Warn().Msg("CORS allows every origin in production; set CORS_ORIGINS")
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}

	tree, err := buildServeTree(cfg, engine)
	if err != nil {
		return err
	}

	if path := configFileFor(base.configPath); path != "" {
		stopWatch, err := config.WatchConfigFile(path, func() { applyLogLevel(path) })
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("config file watch unavailable")
		} else {
			defer func() { _ = stopWatch() }()
		}
	}

	logger.Info().
		Str("addr", cfg.Server.Addr()).
		Str("catalog", cfg.Catalog.Path).
		Dur("reload_interval", cfg.Server.ReloadInterval).
		Str("environment", cfg.Server.Environment).
		Msg("starting filmscout server")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}
	logger.Info().Msg("filmscout server stopped")
	return nil
}

// buildServeTree assembles the supervised services of the server: the HTTP
// API, the catalog reload poller and the response cache janitor.
func buildServeTree(cfg *config.Config, engine *recommend.Engine) (*supervisor.SupervisorTree, error) {
	handler := api.NewHandler(engine, cfg.Recommend.CacheTTL)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	treeCfg := supervisor.DefaultTreeConfig()
	if cfg.Server.ShutdownTimeout > 0 {
		treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	}
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		return nil, fmt.Errorf("supervisor tree: %w", err)
	}

	server := services.NewHTTPServer(cfg.Server, router.SetupChi())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if cfg.Server.ReloadInterval > 0 {
		tree.AddCatalogService(services.NewCatalogReloadService(engine, services.CatalogReloadConfig{
			Path:     cfg.Catalog.Path,
			Format:   catalog.Format(cfg.Catalog.Format),
			Interval: cfg.Server.ReloadInterval,
			OnReload: func(int64) { handler.ClearCache() },
		}, logging.Logger()))
	}

	tree.AddMaintenanceService(services.NewCacheCleanupService(handler.Cache(), cfg.Recommend.CacheTTL))
	return tree, nil
}

// configFileFor returns the config file serve reads, or "" for none.
func configFileFor(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return config.FoundConfigFile()
}

// applyLogLevel re-reads path and applies its logging level. Other settings
// take effect on restart.
func applyLogLevel(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("ignoring invalid config change")
		return
	}
	logging.SetLevelString(cfg.Logging.Level)
	logging.Info().Str("level", cfg.Logging.Level).Msg("log level updated from config file")
}
