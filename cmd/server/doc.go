// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package main is the MoodFlix HTTP server.

It serves mood-based movie recommendations over a JSON API. The process runs
under a suture v4 supervisor tree:

	moodflix
	├── catalog-layer
	│   └── catalog-loader   builds the engine from the catalog file
	└── api-layer
	    ├── cache-janitor    sweeps expired cached responses
	    └── http-server

The API starts answering immediately. Until the catalog has loaded, data
endpoints and /health/ready return 503; a failed load is retried with backoff.

# Configuration

Settings come from built-in defaults, then config.yaml (or CONFIG_PATH), then
environment variables:

	CATALOG_PATH=data/movies.csv
	CATALOG_READER=csv          # or duckdb
	HTTP_HOST=0.0.0.0
	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json             # or console
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	CORS_ORIGINS=https://example.com

# Endpoints

	GET  /api/v1/recommendations?mood=triste&duration=<60&platform=Netflix&k=5
	POST /api/v1/recommendations
	GET  /api/v1/moods
	GET  /api/v1/durations
	GET  /api/v1/catalog/stats
	GET  /health/live
	GET  /health/ready
	GET  /metrics

# Signal Handling

SIGINT and SIGTERM cancel the tree; the HTTP server drains in-flight requests
for up to server.shutdown_timeout.
*/
package main
