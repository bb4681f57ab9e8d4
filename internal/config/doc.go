// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package config loads MoodFlix configuration with koanf.

# Sources

Values are layered, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, else the first of config.yaml, config.yml,
    /etc/moodflix/config.yaml, /etc/moodflix/config.yml
 3. Environment variables listed in envMappings

# Example config.yaml

	catalog:
	  path: data/movies.csv
	  reader: duckdb
	recommend:
	  default_k: 5
	  max_k: 50
	server:
	  port: 8080
	security:
	  cors_origins: [https://moodflix.example]
	logging:
	  level: debug
	  format: console
	prepare:
	  raw_dir: data/raw
	  min_votes: 5000

# Environment Variables

	CATALOG_PATH, CATALOG_READER
	RECOMMEND_MAX_FEATURES, RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K
	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	PREPARE_RAW_DIR, PREPARE_OUTPUT_PATH, PREPARE_MIN_YEAR, PREPARE_MIN_VOTES, PREPARE_MAX_MOVIES

CORS_ORIGINS is comma-separated. Durations use Go syntax ("30s", "1m").

# Validation

Load validates struct tags through the validation package and then checks
rate limit bounds. A failed load returns an error naming the field.
*/
package config
