// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package filter

import "strings"

// anyPlatform lists the platform values that disable platform filtering.
var anyPlatform = map[string]struct{}{
	"":          {},
	"any":       {},
	"qualsiasi": {},
}

// Normalize trims and lower-cases a label.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// SplitLabels splits a comma-separated label list into normalized tokens.
// Empty tokens are dropped.
func SplitLabels(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = Normalize(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LabelSet is a set of normalized labels.
type LabelSet map[string]struct{}

// NewLabelSet normalizes labels into a set. Blank labels are ignored.
func NewLabelSet(labels ...string) LabelSet {
	set := make(LabelSet, len(labels))
	for _, l := range labels {
		if l = Normalize(l); l != "" {
			set[l] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the normalized label is in the set.
func (s LabelSet) Contains(label string) bool {
	_, ok := s[Normalize(label)]
	return ok
}

// Intersects reports whether any token of the comma-separated list is in
// the set. Matching is exact per token, never by substring.
func (s LabelSet) Intersects(list string) bool {
	if len(s) == 0 {
		return false
	}
	for _, tok := range SplitLabels(list) {
		if _, ok := s[tok]; ok {
			return true
		}
	}
	return false
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// IsAnyPlatform reports whether platform disables platform filtering.
func IsAnyPlatform(platform string) bool {
	_, ok := anyPlatform[Normalize(platform)]
	return ok
}
