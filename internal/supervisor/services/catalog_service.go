// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/recommend"
)

// EngineSink receives the engine once the catalog has loaded.
// *api.Handler satisfies it.
type EngineSink interface {
	SetEngine(engine *recommend.Engine)
}

// EngineLoader builds an engine. recommend.NewEngineFromFile bound to the
// configured catalog is the production loader.
type EngineLoader func(ctx context.Context) (*recommend.Engine, error)

// FileLoader returns an EngineLoader reading the catalog at path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func FileLoader(path string, reader catalog.Reader, cfg *recommend.Config, logger zerolog.Logger) EngineLoader {
	return func(ctx context.Context) (*recommend.Engine, error) {
		return recommend.NewEngineFromFile(ctx, path, reader, cfg, logger)
	}
}

// CatalogService loads the catalog, installs the engine into its sink and
// then idles until shutdown. A failed load is returned to the supervisor,
// which restarts the service with backoff; the API keeps answering 503
// meanwhile.
type CatalogService struct {
	load   EngineLoader
	sink   EngineSink
	logger zerolog.Logger
	loaded atomic.Bool
	name   string
}

// NewCatalogService creates the catalog loading service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(load EngineLoader, sink EngineSink, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		load:   load,
		sink:   sink,
		logger: logger.With().Str("service", "catalog-loader").Logger(),
		name:   "catalog-loader",
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	// A restart after a successful load keeps the installed engine.
	if !s.loaded.Load() {
		start := time.Now()
		engine, err := s.load(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error().Err(err).Msg("Catalog load failed")
			return fmt.Errorf("catalog load: %w", err)
		}

		s.sink.SetEngine(engine)
		s.loaded.Store(true)

		stats := engine.Stats()
		s.logger.Info().
			Int("items", stats.Items).
			Int("vocabulary", stats.VocabularySize).
			Dur("duration", time.Since(start)).
			Msg("Catalog loaded, engine ready")
	}

	<-ctx.Done()
	return ctx.Err()
}

// Loaded reports whether an engine has been installed.
func (s *CatalogService) Loaded() bool {
	return s.loaded.Load()
}

func (s *CatalogService) String() string {
	return s.name
}
