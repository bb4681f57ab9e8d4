// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package logging provides the process-wide zerolog logger.
//
// JSON output is the default; console output is intended for local runs.
// LOG_LEVEL, LOG_FORMAT and LOG_CALLER seed DefaultConfig, and the config
// package overrides them through Init once the full configuration loads.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Int("items", n).Msg("Catalog loaded")
//
// Request-scoped logging reads the request ID placed in the context by the
// HTTP middleware:
//
//	logging.Ctx(ctx).Warn().Msg("Genre filter fell back")
//
// SlogHandler bridges zerolog to log/slog for the supervisor tree.
package logging
