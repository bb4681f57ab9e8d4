// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package main

import (
	"github.com/tomtom215/moodflix/internal/api"
	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/supervisor"
	"github.com/tomtom215/moodflix/internal/supervisor/services"
)

// addCatalogService registers the catalog loader, which builds the engine
// in the background and installs it into the handler.
func addCatalogService(tree *supervisor.SupervisorTree, cfg *config.Config, handler *api.Handler) {
	logger := logging.WithComponent("recommend")

	engineCfg := cfg.EngineConfig()
	logger.Info().
		Int("max_features", engineCfg.Features.MaxFeatures).
		Int("default_k", engineCfg.Limits.DefaultK).
		Int("max_k", engineCfg.Limits.MaxK).
		Msg("Initializing recommendation engine")

	loader := services.FileLoader(cfg.Catalog.Path, cfg.CatalogReader(), engineCfg, logger)
	tree.AddCatalogService(services.NewCatalogService(loader, handler, logger))
}

// addCacheJanitor sweeps expired responses out of the handler's cache. The
// sweep runs at the cache TTL so an entry outlives its TTL by at most one
// interval.
func addCacheJanitor(tree *supervisor.SupervisorTree, cfg *config.Config, handler *api.Handler) {
	if cfg.Recommend.CacheSize <= 0 {
		return
	}
	logger := logging.WithComponent("api")
	tree.AddAPIService(services.NewCacheJanitorService(handler, cfg.Recommend.CacheTTL, logger))
}
