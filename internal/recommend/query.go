// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"strings"

	"github.com/tomtom215/moodflix/internal/recommend/features"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
)

// QueryText builds the pseudo-document for a request: the mood genres
// followed by the desired genre, joined by spaces.
func QueryText(moodGenres []string, desiredGenre string) string {
	tokens := make([]string, 0, len(moodGenres)+1)
	tokens = append(tokens, moodGenres...)
	if desiredGenre != "" {
		tokens = append(tokens, desiredGenre)
	}
	return strings.Join(tokens, " ")
}

// queryVector projects the request profile into the engine's fitted space.
// The band midpoint is the target runtime; the space clamps its scaled
// value so open-ended bands stay within [0, 1].
func (e *Engine) queryVector(moodGenres []string, desiredGenre string, band rules.Band) features.SparseVector {
	return e.space.Project(QueryText(moodGenres, desiredGenre), band.Midpoint())
}
