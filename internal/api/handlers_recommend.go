// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/recommend"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
)

// CacheHeader reports whether a recommendation came from the response cache.
const CacheHeader = "X-Cache"

// GetRecommendations handles GET /api/v1/recommendations.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseQueryRequest(r)
	if err != nil {
		rw.ValidationError(err.Error(), map[string]interface{}{"field": "k", "value": r.URL.Query().Get("k")})
		return
	}
	h.recommend(rw, r, req)
}

// PostRecommendations handles POST /api/v1/recommendations.
func (h *Handler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := decodeBodyRequest(w, r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	h.recommend(rw, r, req)
}

func (h *Handler) recommend(rw *ResponseWriter, r *http.Request, req RecommendationRequest) {
	if apiErr := req.validate(h.config.MaxK); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	engine := h.requireEngine(rw)
	if engine == nil {
		return
	}

	ctx := r.Context()
	if h.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.RequestTimeout)
		defer cancel()
	}

	requestID := logging.RequestIDFromContext(r.Context())
	key := req.cacheKey(engine)
	if resp, ok := h.cachedResponse(key, requestID); ok {
		rw.w.Header().Set(CacheHeader, "HIT")
		rw.Success(resp)
		return
	}

	resp, err := engine.Recommend(ctx, req.engineRequest(requestID))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			rw.Error(http.StatusServiceUnavailable, ErrCodeRequestTimeout, "Recommendation timed out")
			return
		}
		if errors.Is(err, context.Canceled) {
			logging.Ctx(r.Context()).Debug().Msg("Client went away before recommendation completed")
			return
		}
		rw.InternalError("Failed to generate recommendations", err)
		return
	}

	if h.cache != nil {
		h.cache.Add(key, resp)
		rw.w.Header().Set(CacheHeader, "MISS")
	}
	rw.Success(resp)
}

// cachedResponse returns a copy of a cached response stamped with the
// current request ID. The item slices are shared; responses are never
// mutated after they are built.
func (h *Handler) cachedResponse(key, requestID string) (*recommend.Response, bool) {
	if h.cache == nil {
		return nil, false
	}
	cached, ok := h.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil, false
	}
	resp := *cached
	resp.Metadata.RequestID = requestID
	resp.Metadata.Timestamp = time.Now().UTC()
	return &resp, true
}

// Moods handles GET /api/v1/moods.
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"moods":          rules.Moods(),
		"default_genres": rules.DefaultGenres(),
	})
}

// Durations handles GET /api/v1/durations.
func (h *Handler) Durations(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"durations": rules.DurationChoices(),
		"default":   rules.Unrestricted,
	})
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	engine := h.requireEngine(rw)
	if engine == nil {
		return
	}
	rw.Success(engine.Stats())
}
