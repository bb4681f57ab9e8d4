// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package rules holds the fixed lookup tables that translate user choices
// into filter criteria: mood labels to preferred genres and duration labels
// to runtime bands. Every function is pure and total.
package rules

import "strings"

// Mood is one group of synonymous mood labels and the genres it prefers.
type Mood struct {
	// Key is the canonical label shown in menus.
	Key string `json:"key"`

	// Description is a short human readable summary.
	Description string `json:"description"`

	// Labels are every accepted spelling, lower-case, Key included.
	Labels []string `json:"labels"`

	// Genres are the preferred genre labels, in query order.
	Genres []string `json:"genres"`
}

var moodTable = []Mood{
	{
		Key:         "triste",
		Description: "Low energy, needs cheering up",
		Labels:      []string{"triste", "down", "low", "bassa energia", "sad", "low energy"},
		Genres:      []string{"Comedy", "Family", "Animation", "Romance"},
	},
	{
		Key:         "felice",
		Description: "High energy, up for excitement",
		Labels:      []string{"felice", "happy", "alta energia", "carico", "high energy", "energetic"},
		Genres:      []string{"Action", "Adventure", "Sci-Fi", "Thriller"},
	},
	{
		Key:         "riflessivo",
		Description: "Thoughtful or neutral",
		Labels:      []string{"riflessivo", "pensieroso", "neutro", "reflective", "thoughtful", "neutral"},
		Genres:      []string{"Drama", "Biography", "Documentary"},
	},
	{
		Key:         "stressato",
		Description: "Stressed, wants something gentle",
		Labels:      []string{"stressato", "ansioso", "stress", "stressed", "anxious"},
		Genres:      []string{"Animation", "Family", "Documentary"},
	},
}

// defaultGenres apply to any mood outside the table.
var defaultGenres = []string{"Drama", "Comedy"}

// moodIndex maps every accepted label to its position in moodTable.
var moodIndex = func() map[string]int {
	idx := make(map[string]int)
	for i, m := range moodTable {
		for _, label := range m.Labels {
			idx[label] = i
		}
	}
	return idx
}()

// LookupMood finds the table entry for a mood label, ignoring case and
// surrounding whitespace.
func LookupMood(mood string) (Mood, bool) {
	i, ok := moodIndex[strings.ToLower(strings.TrimSpace(mood))]
	if !ok {
		return Mood{}, false
	}
	return cloneMood(moodTable[i]), true
}

// MoodToGenres returns the preferred genres for mood. Unknown moods,
// including the empty string, yield DefaultGenres. The result is never
// empty and is owned by the caller.
func MoodToGenres(mood string) []string {
	if m, ok := LookupMood(mood); ok {
		return m.Genres
	}
	return DefaultGenres()
}

// DefaultGenres returns the genres used for unrecognized moods.
func DefaultGenres() []string {
	return append([]string(nil), defaultGenres...)
}

// Moods returns a copy of the mood table in menu order.
func Moods() []Mood {
	out := make([]Mood, len(moodTable))
	for i, m := range moodTable {
		out[i] = cloneMood(m)
	}
	return out
}

func cloneMood(m Mood) Mood {
	m.Labels = append([]string(nil), m.Labels...)
	m.Genres = append([]string(nil), m.Genres...)
	return m
}
