// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package prepare

import (
	"crypto/sha256"
	"fmt"
)

// Platforms are the synthetic availability labels.
var Platforms = []string{"Netflix", "Prime", "Disney+", "HBO Max"}

// AssignPlatforms derives one or two platforms from an IMDb ID. Reading the
// digest as a big-endian integer h, the platforms are Platforms[h mod 4] and
// Platforms[(h div 4) mod 4]; a single label is returned when they coincide.
func AssignPlatforms(id string) string {
	sum := sha256.Sum256([]byte(id))
	// With four platforms only the low nibble of h matters.
	low := sum[len(sum)-1]
	p1 := Platforms[low&0x3]
	p2 := Platforms[(low>>2)&0x3]
	if p1 == p2 {
		return p1
	}
	return p1 + "," + p2
}

// Description builds the synthetic plot line for a movie.
func Description(title string, year int, genres string, rating float64) string {
	return fmt.Sprintf("%s (%d) — %s movie, IMDb rating %.1f.", title, year, genres, rating)
}
