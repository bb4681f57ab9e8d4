// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for RecommendRequests.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
)

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "empty"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodflix_recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodflix_recommend_candidates",
			Help:    "Number of candidates surviving the filter pipeline",
			Buckets: []float64{0, 1, 10, 100, 1000, 5000, 10000, 25000, 50000},
		},
	)

	RecommendFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_recommend_fallbacks_total",
			Help: "Total number of filter stages that reverted to their input",
		},
		[]string{"stage"}, // "duration", "genre", "mood"
	)

	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_recommend_cache_lookups_total",
			Help: "Total number of response cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	RecommendCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodflix_recommend_cache_entries",
			Help: "Number of responses held in the recommendation cache",
		},
	)

	RecommendCacheExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodflix_recommend_cache_expired_total",
			Help: "Total number of cached responses removed after their TTL elapsed",
		},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodflix_catalog_items",
			Help: "Number of items in the loaded catalog",
		},
	)

	CatalogVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodflix_catalog_vocabulary_size",
			Help: "Number of terms in the fitted TF-IDF vocabulary",
		},
	)

	CatalogBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodflix_catalog_build_duration_seconds",
			Help: "Time spent fitting the feature space for the current catalog",
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
		[]string{"reason"}, // "load", "invalid", "other"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}, // in-memory ranking is fast
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordRecommendation records one completed recommendation request.
func RecordRecommendation(duration time.Duration, candidates, returned int, fallbacks []string) {
	outcome := OutcomeOK
	if returned == 0 {
		outcome = OutcomeEmpty
	}
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	RecommendCandidates.Observe(float64(candidates))
	for _, stage := range fallbacks {
		RecommendFallbacks.WithLabelValues(stage).Inc()
	}
}

// RecordCatalogBuild records the size of a freshly built engine.
func RecordCatalogBuild(items, vocabulary int, duration time.Duration) {
	CatalogItems.Set(float64(items))
	CatalogVocabularySize.Set(float64(vocabulary))
	CatalogBuildDuration.Set(duration.Seconds())
}

// RecordCatalogLoadError records a failed catalog load.
func RecordCatalogLoadError(reason string) {
	CatalogLoadErrors.WithLabelValues(reason).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}

// RecordCacheLookup records a response cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RecommendCacheLookups.WithLabelValues(result).Inc()
}

// RecordCacheCleanup records a periodic sweep of the response cache.
func RecordCacheCleanup(removed, remaining int) {
	RecommendCacheExpired.Add(float64(removed))
	RecommendCacheEntries.Set(float64(remaining))
}
