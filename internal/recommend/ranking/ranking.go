// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package ranking scores candidates against a query vector and returns the
// best matches.
package ranking

import (
	"sort"

	"github.com/tomtom215/moodflix/internal/recommend/features"
)

// VectorSource provides feature vectors by catalog position.
type VectorSource interface {
	Vector(i int) features.SparseVector
}

// Scored is a candidate with its similarity to the query.
type Scored struct {
	// Index is the catalog position.
	Index int

	// Score is the cosine similarity in [0, 1].
	Score float64
}

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
// Zero-norm vectors have similarity 0.
func Cosine(a, b features.SparseVector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	sim := a.Dot(b) / (na * nb)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	default:
		return sim
	}
}

// Rank scores every candidate against query and returns the top n by
// descending score. Equal scores keep candidate order, so callers passing
// candidates in catalog order get ties broken by catalog position.
// n <= 0 or n larger than the candidate count returns every candidate.
func Rank(query features.SparseVector, candidates []int, vectors VectorSource, n int) []Scored {
	scored := make([]Scored, len(candidates))
	for k, idx := range candidates {
		scored[k] = Scored{Index: idx, Score: Cosine(query, vectors.Vector(idx))}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n > 0 && n < len(scored) {
		scored = scored[:n]
	}
	return scored
}
