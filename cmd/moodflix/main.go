// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Command moodflix is the interactive recommender. It loads the catalog,
// asks for mood, available time, platform, genre and result count, and
// prints the recommendations.
//
// Configuration is shared with the server (config.yaml, CONFIG_PATH and
// environment variables). Logs go to stderr at warn level unless LOG_LEVEL
// is set.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/cli"
	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/recommend"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = os.Stderr
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		logCfg.Level = "warn"
	}
	logging.Init(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := recommend.NewEngineFromFile(ctx, cfg.Catalog.Path, cfg.CatalogReader(), cfg.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogLoad) {
			cli.PrintMissingCatalog(os.Stdout, cfg.Catalog.Path, cfg.Prepare.RawDir)
			logging.Debug().Err(err).Msg("Catalog load failed")
			return 1
		}
		logging.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to build recommendation engine")
		return 1
	}

	if err := cli.Run(ctx, engine, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, cli.ErrInputClosed) || errors.Is(err, context.Canceled) {
			return 130
		}
		logging.Error().Err(err).Msg("Session failed")
		return 1
	}
	return 0
}
