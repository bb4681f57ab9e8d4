// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Command prepare builds the movie catalog from the IMDb dumps
// title.basics.tsv.gz and title.ratings.tsv.gz found in prepare.raw_dir
// (PREPARE_RAW_DIR, default data/raw) and writes it to prepare.output_path
// (PREPARE_OUTPUT_PATH, default data/movies.csv).
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/prepare"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := cfg.LoggerConfig()
	if _, ok := os.LookupEnv("LOG_FORMAT"); !ok {
		logCfg.Format = "console"
	}
	logging.Init(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := prepare.Run(ctx, cfg.Prepare, logging.Logger())
	if err != nil {
		if errors.Is(err, prepare.ErrRawFilesMissing) {
			logging.Error().Str("raw_dir", cfg.Prepare.RawDir).Msg(err.Error())
		} else {
			logging.Error().Err(err).Msg("Catalog preparation failed")
		}
		stop()
		os.Exit(1)
	}

	logging.Info().
		Str("output", res.OutputPath).
		Int("movies", res.Movies).
		Msg("Catalog ready")
}
