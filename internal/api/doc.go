// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package api exposes the recommendation engine over HTTP with chi.

# Endpoints

	GET  /api/v1/recommendations   query: mood, duration, platform, genre, k
	POST /api/v1/recommendations   JSON body with the same fields
	GET  /api/v1/moods             mood table and default genres
	GET  /api/v1/durations         duration choices and their runtime bands
	GET  /api/v1/catalog/stats     catalog and engine statistics
	GET  /health/live              liveness
	GET  /health/ready             503 until the catalog is loaded
	GET  /metrics                  Prometheus exposition

# Response Format

Every endpoint except /metrics returns the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1}
	}

Errors set success to false and fill error with a machine-readable code
(BAD_REQUEST, VALIDATION_ERROR, SERVICE_UNAVAILABLE, ...), a message and,
for validation failures, field details.

# Middleware

Global: request ID, real IP, access log, panic recovery, CORS. The /api/v1
group adds per-IP rate limiting (go-chi/httprate), Prometheus request
metrics and gzip compression.
*/
package api
