// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"time"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/recommend/filter"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
)

// ScoreColumn is the column appended to the catalog schema in results.
const ScoreColumn = "score"

// Request contains parameters for a recommendation request.
type Request struct {
	// Mood is a free-form mood label matched against the mood table.
	// Unknown moods use the default genres.
	Mood string `json:"mood"`

	// Duration is a duration choice label ("<60", "60-90", "90-120",
	// ">120"). Anything else means no runtime preference.
	Duration string `json:"duration"`

	// Platform is matched as a substring of each item's platform list.
	// Empty, "any" or "qualsiasi" disables platform filtering.
	Platform string `json:"platform"`

	// K is the number of results. Values <= 0 use Limits.DefaultK.
	K int `json:"k"`

	// DesiredGenre is an optional genre the results should carry.
	DesiredGenre string `json:"genre,omitempty"`

	// RequestID correlates logs. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredItem is a catalog item with its similarity to the request.
type ScoredItem struct {
	catalog.Item

	// Score is the cosine similarity in [0, 1].
	Score float64 `json:"score"`
}

// Response contains recommendation results and metadata.
type Response struct {
	// Items are the recommendations, best first. Never nil.
	Items []ScoredItem `json:"items"`

	// Columns is the result schema: every catalog column plus "score".
	// It is the same whether or not Items is empty.
	Columns []string `json:"columns"`

	// TotalCandidates is the number of items that survived filtering.
	TotalCandidates int `json:"total_candidates"`

	// Metadata describes how the request was resolved.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a request was resolved.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`

	// MoodGenres are the genres the mood resolved to.
	MoodGenres []string `json:"mood_genres"`

	// DesiredGenre is the normalized desired genre, empty when none.
	DesiredGenre string `json:"desired_genre,omitempty"`

	// Band is the resolved runtime range.
	Band rules.Band `json:"band"`

	// TargetRuntime is the runtime the query vector aims for.
	TargetRuntime float64 `json:"target_runtime"`

	// Fallbacks lists filter stages that reverted to their input.
	Fallbacks []filter.Stage `json:"fallbacks"`

	// Stages reports candidate counts per filter stage.
	Stages []filter.StageResult `json:"stages"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarizes the loaded catalog and engine activity.
type Stats struct {
	Items            int     `json:"items"`
	VocabularySize   int     `json:"vocabulary_size"`
	Dimensions       int     `json:"dimensions"`
	RuntimeMin       float64 `json:"runtime_min"`
	RuntimeMax       float64 `json:"runtime_max"`
	RuntimeMedian    int     `json:"runtime_median"`
	RuntimeBackfills int     `json:"runtime_backfilled"`
	Source           string  `json:"source"`

	Requests      int64     `json:"requests"`
	EmptyResults  int64     `json:"empty_results"`
	FallbackCount int64     `json:"fallbacks"`
	BuiltAt       time.Time `json:"built_at"`
	BuildMS       int64     `json:"build_ms"`
}

// Columns returns the result schema for a catalog.
func Columns() []string {
	cols := make([]string, 0, len(catalog.Schema)+1)
	cols = append(cols, catalog.Schema...)
	return append(cols, ScoreColumn)
}
