// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package middleware holds the chi-compatible HTTP middleware shared by the
// API router: request ID propagation, Prometheus request metrics and the
// structured access log.
//
// Order matters. RequestID must run first so the access log and handlers
// see the ID:
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.AccessLog)
//	r.Use(middleware.PrometheusMetrics)
package middleware
