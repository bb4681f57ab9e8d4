// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/cache"
	"github.com/tomtom215/moodflix/internal/metrics"
)

// DefaultCleanupInterval is used when NewCacheJanitorService is given a
// non-positive interval.
const DefaultCleanupInterval = time.Minute

// CacheCleaner owns an expiring cache. *api.Handler satisfies it.
type CacheCleaner interface {
	CleanupCache() int
	CacheStats() (cache.Stats, bool)
}

// CacheJanitorService sweeps expired entries out of the response cache on a
// fixed interval. Without it, expired responses leave the cache only when
// they are looked up again or pushed out by newer entries.
//
// Each sweep updates the cache gauges and logs the running hit rate at
// debug level:
//
//	janitor := services.NewCacheJanitorService(handler, time.Minute, logger)
//	tree.AddAPIService(janitor)
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates the sweeper.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	removed := s.cleaner.CleanupCache()
	stats, ok := s.cleaner.CacheStats()
	if !ok {
		return
	}
	metrics.RecordCacheCleanup(removed, stats.Size)

	s.logger.Debug().
		Int("removed", removed).
		Int("size", stats.Size).
		Int("capacity", stats.Capacity).
		Float64("hit_rate_pct", stats.HitRate()).
		Msg("Response cache swept")
}

func (s *CacheJanitorService) String() string {
	return s.name
}
