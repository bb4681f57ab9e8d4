// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package cache provides a generic LRU cache with TTL expiry, used by the
// API to reuse recommendation results for repeated requests against the
// same engine.
//
//	c := cache.NewLRU[*recommend.Response](1024, 10*time.Minute)
//	key := cache.GenerateKey("recommend", req)
//	if resp, ok := c.Get(key); ok {
//	    return resp
//	}
package cache
