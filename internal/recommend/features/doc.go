// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package features builds the vector space that catalog items and queries
// are compared in.
//
// The text part is a TF-IDF model fitted once over every item's combined
// genres and description:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), L2-normalized per document
//
// Tokens are lower-cased runs of two or more letters, digits or underscores
// with English stop words removed. The vocabulary is capped at
// DefaultMaxFeatures terms by document frequency.
//
// The numeric part is the runtime mapped onto [0, 1] with a min-max scaler
// fitted over the same catalog. Queries are projected with the same fitted
// models; nothing is refitted after Build.
package features
