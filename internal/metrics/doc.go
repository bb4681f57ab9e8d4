// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package metrics provides Prometheus instrumentation for MoodFlix.

All collectors are registered with the default registry through promauto
and exposed by the HTTP server at /metrics.

# Recommendation Metrics

  - moodflix_recommend_requests_total{outcome}: requests by "ok" or "empty"
  - moodflix_recommend_duration_seconds: end-to-end latency of Engine.Recommend
  - moodflix_recommend_candidates: candidates left after filtering
  - moodflix_recommend_fallbacks_total{stage}: filter stages that reverted

# Catalog Metrics

  - moodflix_catalog_items: items in the loaded catalog
  - moodflix_catalog_vocabulary_size: fitted TF-IDF vocabulary size
  - moodflix_catalog_build_duration_seconds: feature space fit time
  - moodflix_catalog_load_errors_total{reason}: failed loads

# API Metrics

  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

# Example Queries

	# p95 recommendation latency
	histogram_quantile(0.95, rate(moodflix_recommend_duration_seconds_bucket[5m]))

	# share of requests needing a duration fallback
	rate(moodflix_recommend_fallbacks_total{stage="duration"}[5m])
	  / rate(moodflix_recommend_requests_total[5m])

Record* helpers are safe for concurrent use.
*/
package metrics
