// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package filter narrows the catalog to the candidates a request may see.
//
// Stages run in a fixed order: platform, duration, desired genre, mood
// genres. Every stage after platform falls back to its input when it would
// remove every candidate, so a request is only left empty when no item is
// offered on the requested platform.
//
// Stages operate on catalog positions and never modify the items.
package filter

import (
	"strings"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
)

// Stage names a filter step.
type Stage string

// Filter stages in execution order.
const (
	StagePlatform Stage = "platform"
	StageDuration Stage = "duration"
	StageGenre    Stage = "genre"
	StageMood     Stage = "mood"
)

// Criteria are the resolved constraints of one request.
type Criteria struct {
	// Platform is matched as a case-insensitive substring of the item's
	// platform list. Blank, "any" and "qualsiasi" disable the stage.
	Platform string

	// Band is the inclusive runtime range.
	Band rules.Band

	// DesiredGenre is an optional genre token. Blank disables the stage.
	DesiredGenre string

	// MoodGenres are the genres implied by the mood.
	MoodGenres []string
}

// StageResult records how one stage changed the candidate count.
type StageResult struct {
	Stage    Stage `json:"stage"`
	Before   int   `json:"before"`
	After    int   `json:"after"`
	Fallback bool  `json:"fallback,omitempty"`
	Skipped  bool  `json:"skipped,omitempty"`
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Candidates are surviving catalog positions in catalog order.
	Candidates []int

	// Stages has one entry per stage in execution order.
	Stages []StageResult
}

// Fallbacks returns the stages that reverted to their input.
func (r Result) Fallbacks() []Stage {
	var out []Stage
	for _, s := range r.Stages {
		if s.Fallback {
			out = append(out, s.Stage)
		}
	}
	return out
}

// Run applies every stage to the full catalog.
//
//nolint:gocritic // hugeParam: criteria passed by value for immutability
func Run(items []catalog.Item, criteria Criteria) Result {
	all := make([]int, len(items))
	for i := range all {
		all[i] = i
	}

	res := Result{Stages: make([]StageResult, 0, 4)}

	// platform: no fallback
	candidates := all
	platformResult := StageResult{Stage: StagePlatform, Before: len(all)}
	if IsAnyPlatform(criteria.Platform) {
		platformResult.Skipped = true
	} else {
		candidates = ByPlatform(items, all, criteria.Platform)
	}
	platformResult.After = len(candidates)
	res.Stages = append(res.Stages, platformResult)

	candidates = res.apply(StageDuration, candidates, false, func(in []int) []int {
		return ByDuration(items, in, criteria.Band)
	})

	desired := Normalize(criteria.DesiredGenre)
	candidates = res.apply(StageGenre, candidates, desired == "", func(in []int) []int {
		return ByGenres(items, in, NewLabelSet(desired))
	})

	moodSet := NewLabelSet(criteria.MoodGenres...)
	candidates = res.apply(StageMood, candidates, len(moodSet) == 0, func(in []int) []int {
		return ByGenres(items, in, moodSet)
	})

	res.Candidates = candidates
	return res
}

// apply runs a fallback stage and records its result. An empty input
// skips the stage since there is nothing left to narrow.
func (r *Result) apply(stage Stage, in []int, skip bool, fn func([]int) []int) []int {
	sr := StageResult{Stage: stage, Before: len(in)}
	out := in
	switch {
	case skip || len(in) == 0:
		sr.Skipped = true
	default:
		out, sr.Fallback = withFallback(in, fn(in))
	}
	sr.After = len(out)
	r.Stages = append(r.Stages, sr)
	return out
}

// withFallback returns filtered, or in when filtered is empty.
func withFallback(in, filtered []int) ([]int, bool) {
	if len(filtered) == 0 {
		return in, true
	}
	return filtered, false
}

// ByPlatform keeps candidates whose platform list contains platform as a
// case-insensitive substring. No fallback.
func ByPlatform(items []catalog.Item, candidates []int, platform string) []int {
	needle := strings.TrimSpace(platform)
	return keep(candidates, func(i int) bool {
		return ContainsFold(items[i].Platforms, needle)
	})
}

// ByDuration keeps candidates whose runtime lies inside band.
func ByDuration(items []catalog.Item, candidates []int, band rules.Band) []int {
	return keep(candidates, func(i int) bool {
		return band.Contains(items[i].Runtime)
	})
}

// ByGenres keeps candidates with at least one genre token in genres.
func ByGenres(items []catalog.Item, candidates []int, genres LabelSet) []int {
	return keep(candidates, func(i int) bool {
		return genres.Intersects(items[i].Genres)
	})
}

func keep(candidates []int, pred func(int) bool) []int {
	out := make([]int, 0, len(candidates))
	for _, i := range candidates {
		if pred(i) {
			out = append(out, i)
		}
	}
	return out
}
