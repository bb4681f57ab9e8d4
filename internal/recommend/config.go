// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/moodflix/internal/recommend/features"
)

// ErrInvalidConfig indicates a rejected engine configuration.
var ErrInvalidConfig = errors.New("invalid recommend config")

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Features controls how the feature space is fitted.
	Features FeaturesConfig `json:"features"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// FeaturesConfig contains feature space parameters.
type FeaturesConfig struct {
	// MaxFeatures caps the TF-IDF vocabulary, keeping the terms with the
	// highest document frequency.
	// Default: 10000.
	MaxFeatures int `json:"max_features"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of recommendations returned when a request
	// does not ask for a positive count.
	// Default: 5.
	DefaultK int `json:"default_k"`

	// MaxK is the largest count accepted by the API layer. The engine
	// itself honors any positive K.
	// Default: 100.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Features: FeaturesConfig{
			MaxFeatures: features.DefaultMaxFeatures,
		},
		Limits: LimitsConfig{
			DefaultK: 5,
			MaxK:     100,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Features.MaxFeatures < 1 {
		return fmt.Errorf("%w: features.max_features must be positive, got %d", ErrInvalidConfig, c.Features.MaxFeatures)
	}
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("%w: limits.default_k must be positive, got %d", ErrInvalidConfig, c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("%w: limits.max_k (%d) must be >= limits.default_k (%d)",
			ErrInvalidConfig, c.Limits.MaxK, c.Limits.DefaultK)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// nested structs hold only value types
	clone := *c
	return &clone
}
