// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/moodflix/internal/cache"
	"github.com/tomtom215/moodflix/internal/recommend"
)

// HandlerConfig bounds request handling.
type HandlerConfig struct {
	// MaxK is the largest result count a caller may request.
	MaxK int

	// RequestTimeout caps a single recommendation call. Zero disables it.
	RequestTimeout time.Duration

	// CacheSize is the number of responses kept for repeated requests.
	// Zero disables the response cache.
	CacheSize int

	// CacheTTL bounds how long a cached response is reused.
	CacheTTL time.Duration
}

// Handler serves the API. The engine is installed once the catalog has
// loaded; until then data endpoints answer 503 and readiness fails.
type Handler struct {
	engine    atomic.Pointer[recommend.Engine]
	cache     *cache.LRU[*recommend.Response]
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a handler with no engine installed.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.MaxK <= 0 {
		cfg.MaxK = recommend.DefaultConfig().Limits.MaxK
	}
	h := &Handler{config: cfg, startTime: time.Now()}
	if cfg.CacheSize > 0 {
		h.cache = cache.NewLRU[*recommend.Response](cfg.CacheSize, cfg.CacheTTL)
	}
	return h
}

// SetEngine installs or replaces the engine. Cached responses belong to the
// previous engine and are dropped.
func (h *Handler) SetEngine(engine *recommend.Engine) {
	h.engine.Store(engine)
	if h.cache != nil {
		h.cache.Purge()
	}
}

// Engine returns the installed engine or nil.
func (h *Handler) Engine() *recommend.Engine {
	return h.engine.Load()
}

// CleanupCache drops expired cached responses and returns how many were
// removed. It is a no-op when the cache is disabled.
func (h *Handler) CleanupCache() int {
	if h.cache == nil {
		return 0
	}
	return h.cache.CleanupExpired()
}

// CacheStats returns the response cache counters. ok is false when the
// cache is disabled.
func (h *Handler) CacheStats() (stats cache.Stats, ok bool) {
	if h.cache == nil {
		return cache.Stats{}, false
	}
	return h.cache.Stats(), true
}

// requireEngine writes 503 and returns nil when no engine is installed.
func (h *Handler) requireEngine(rw *ResponseWriter) *recommend.Engine {
	engine := h.engine.Load()
	if engine == nil {
		rw.ServiceUnavailable("Catalog is still loading")
	}
	return engine
}

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady succeeds once the catalog is loaded and the engine is built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	engine := h.engine.Load()
	if engine == nil {
		rw.ServiceUnavailable("Catalog not loaded")
		return
	}
	rw.Success(map[string]interface{}{
		"ready": true,
		"items": engine.Catalog().Len(),
	})
}

// NotFound answers unknown routes with the JSON envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).NotFound("Route not found: " + r.URL.Path)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).MethodNotAllowed()
}
