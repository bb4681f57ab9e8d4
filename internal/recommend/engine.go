// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/recommend/features"
	"github.com/tomtom215/moodflix/internal/recommend/filter"
	"github.com/tomtom215/moodflix/internal/recommend/ranking"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
)

// Engine recommends catalog items for a mood, runtime band and platform.
//
// The catalog and its feature space are fitted once in NewEngine and never
// modified afterwards, so an Engine is safe for concurrent use without
// locking. Separate Engine values never share fitted state.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog *catalog.Catalog
	space   *features.Space

	builtAt       time.Time
	buildDuration time.Duration

	// Metrics
	requestCount  atomic.Int64
	emptyCount    atomic.Int64
	fallbackCount atomic.Int64
}

// NewEngine fits the feature space over cat and returns a ready engine.
//
// A nil cfg uses DefaultConfig. Returns an error wrapping
// catalog.ErrInvalidCatalog when cat is nil or was loaded without a
// runtime column.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", catalog.ErrInvalidCatalog)
	}
	if len(cat.Columns) > 0 && !cat.HasColumn(catalog.ColumnRuntime) {
		return nil, fmt.Errorf("%w: missing required column %q", catalog.ErrInvalidCatalog, catalog.ColumnRuntime)
	}

	start := time.Now()
	space, err := features.Build(cat.Texts(), cat.Runtimes(), cfg.Features.MaxFeatures)
	if err != nil {
		return nil, fmt.Errorf("build feature space: %w", err)
	}
	elapsed := time.Since(start)

	e := &Engine{
		config:        cfg.Clone(),
		logger:        logger.With().Str("component", "recommend").Logger(),
		catalog:       cat,
		space:         space,
		builtAt:       time.Now(),
		buildDuration: elapsed,
	}

	lo, hi := space.RuntimeRange()
	e.logger.Info().
		Int("items", cat.Len()).
		Int("vocabulary", space.VocabularySize()).
		Float64("runtime_min", lo).
		Float64("runtime_max", hi).
		Int64("build_ms", elapsed.Milliseconds()).
		Msg("feature space built")

	metrics.RecordCatalogBuild(cat.Len(), space.VocabularySize(), elapsed)

	return e, nil
}

// NewEngineFromFile loads the catalog at path and builds an engine over it.
//
// Returns an error wrapping catalog.ErrCatalogLoad when the file is missing
// and catalog.ErrInvalidCatalog when the runtime column is absent.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngineFromFile(ctx context.Context, path string, reader catalog.Reader, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	cat, err := catalog.Load(ctx, path, reader)
	if err != nil {
		metrics.RecordCatalogLoadError(loadErrorReason(err))
		return nil, err
	}
	return NewEngine(cat, cfg, logger)
}

func loadErrorReason(err error) string {
	switch {
	case errors.Is(err, catalog.ErrInvalidCatalog):
		return "invalid"
	case errors.Is(err, catalog.ErrCatalogLoad):
		return "load"
	default:
		return "other"
	}
}

// Recommend returns the best matching items for req.
//
// Filter stages that would remove every candidate fall back to their input,
// unknown moods and durations resolve to defaults, and an empty result is a
// valid response. The only error is a done context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	moodGenres := rules.MoodToGenres(req.Mood)
	band := rules.DurationRange(req.Duration)
	desired := filter.Normalize(req.DesiredGenre)

	result := filter.Run(e.catalog.Items, filter.Criteria{
		Platform:     req.Platform,
		Band:         band,
		DesiredGenre: desired,
		MoodGenres:   moodGenres,
	})
	e.logFallbacks(logger, result)

	meta := ResponseMetadata{
		RequestID:     req.RequestID,
		MoodGenres:    moodGenres,
		DesiredGenre:  desired,
		Band:          band,
		TargetRuntime: band.Midpoint(),
		Fallbacks:     result.Fallbacks(),
		Stages:        result.Stages,
	}

	var resp *Response
	if len(result.Candidates) == 0 {
		logger.Debug().Msg("no candidates available")
		e.emptyCount.Add(1)
		resp = e.emptyResponse(meta, start)
	} else {
		query := e.queryVector(moodGenres, desired, band)
		ranked := ranking.Rank(query, result.Candidates, e.space, req.K)
		resp = e.buildResponse(ranked, len(result.Candidates), meta, start)
	}

	metrics.RecordRecommendation(time.Since(start), resp.TotalCandidates, len(resp.Items), stageNames(meta.Fallbacks))

	logger.Debug().
		Int("candidates", resp.TotalCandidates).
		Int("returned", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.K <= 0 {
		req.K = e.config.Limits.DefaultK
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("mood", req.Mood).
		Str("duration", req.Duration).
		Str("platform", req.Platform).
		Int("k", req.K).
		Logger()
}

// logFallbacks reports every stage that reverted to its input.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) logFallbacks(logger zerolog.Logger, result filter.Result) {
	for _, s := range result.Stages {
		if !s.Fallback {
			continue
		}
		e.fallbackCount.Add(1)
		logger.Info().
			Str("stage", string(s.Stage)).
			Int("candidates", s.Before).
			Msg("filter removed every candidate, keeping previous set")
	}
}

// buildResponse attaches catalog records to the ranked positions.
//
//nolint:gocritic // hugeParam: meta passed by value for immutability
func (e *Engine) buildResponse(ranked []ranking.Scored, candidates int, meta ResponseMetadata, start time.Time) *Response {
	items := make([]ScoredItem, len(ranked))
	for i, r := range ranked {
		items[i] = ScoredItem{
			Item:  e.catalog.Items[r.Index],
			Score: r.Score,
		}
	}

	meta.LatencyMS = time.Since(start).Milliseconds()
	meta.Timestamp = time.Now()

	return &Response{
		Items:           items,
		Columns:         Columns(),
		TotalCandidates: candidates,
		Metadata:        meta,
	}
}

// emptyResponse returns an empty response for cases with no candidates.
//
//nolint:gocritic // hugeParam: meta passed by value for immutability
func (e *Engine) emptyResponse(meta ResponseMetadata, start time.Time) *Response {
	return e.buildResponse([]ranking.Scored{}, 0, meta, start)
}

// Stats returns catalog and activity statistics.
func (e *Engine) Stats() Stats {
	lo, hi := e.space.RuntimeRange()
	return Stats{
		Items:            e.catalog.Len(),
		VocabularySize:   e.space.VocabularySize(),
		Dimensions:       e.space.Dim(),
		RuntimeMin:       lo,
		RuntimeMax:       hi,
		RuntimeMedian:    e.catalog.RuntimeMedian,
		RuntimeBackfills: e.catalog.Backfilled,
		Source:           e.catalog.Source,
		Requests:         e.requestCount.Load(),
		EmptyResults:     e.emptyCount.Load(),
		FallbackCount:    e.fallbackCount.Load(),
		BuiltAt:          e.builtAt,
		BuildMS:          e.buildDuration.Milliseconds(),
	}
}

// Catalog returns the catalog the engine was built from. Callers must not
// modify it.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

func stageNames(stages []filter.Stage) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = string(s)
	}
	return names
}
