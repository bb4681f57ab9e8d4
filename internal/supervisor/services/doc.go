// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package services adapts server components to suture.Service.

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with graceful Shutdown. CatalogService loads the catalog,
builds the recommendation engine and hands it to an EngineSink such as
*api.Handler. CacheJanitorService sweeps expired entries out of the
handler's response cache on a ticker.

Return values drive the supervisor:

	nil        stopped cleanly, not restarted
	error      failed, restarted with backoff
	ctx.Err()  shutdown requested
*/
package services
