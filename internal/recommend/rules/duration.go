// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package rules

import "strings"

// Unbounded is the sentinel upper limit of open-ended bands, in minutes.
const Unbounded = 10000

// Duration choice labels.
const (
	DurationUnder60 = "<60"
	Duration60To90  = "60-90"
	Duration90To120 = "90-120"
	DurationOver120 = ">120"
)

// Band is an inclusive runtime range in minutes.
type Band struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Unrestricted is the band applied to unrecognized duration choices.
var Unrestricted = Band{Min: 0, Max: Unbounded}

// Contains reports whether Min <= runtime <= Max.
func (b Band) Contains(runtime int) bool {
	return runtime >= b.Min && runtime <= b.Max
}

// Midpoint is the target runtime used for the query vector.
func (b Band) Midpoint() float64 {
	return float64(b.Min+b.Max) / 2
}

// OpenEnded reports whether the band has no real upper limit.
func (b Band) OpenEnded() bool {
	return b.Max >= Unbounded
}

// DurationChoice describes one selectable duration band.
type DurationChoice struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Band        Band   `json:"band"`
}

var durationTable = []DurationChoice{
	{Label: DurationUnder60, Description: "Under an hour", Band: Band{Min: 0, Max: 60}},
	{Label: Duration60To90, Description: "60 to 90 minutes", Band: Band{Min: 60, Max: 90}},
	{Label: Duration90To120, Description: "90 minutes to 2 hours", Band: Band{Min: 90, Max: 120}},
	{Label: DurationOver120, Description: "Over 2 hours", Band: Band{Min: 120, Max: Unbounded}},
}

// DurationRange maps a duration choice to its band. Spaces are ignored and
// matching is case-insensitive, so "60 - 90" selects the 60-90 band.
// Anything else yields Unrestricted.
func DurationRange(choice string) Band {
	normalized := strings.ToLower(strings.ReplaceAll(choice, " ", ""))
	for _, c := range durationTable {
		if c.Label == normalized {
			return c.Band
		}
	}
	return Unrestricted
}

// DurationChoices returns the selectable bands in menu order.
func DurationChoices() []DurationChoice {
	return append([]DurationChoice(nil), durationTable...)
}
