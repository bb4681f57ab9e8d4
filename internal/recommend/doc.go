// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package recommend implements the mood-based, content-driven movie
// recommendation engine.
//
// # Architecture
//
// An Engine owns an immutable catalog and a feature space fitted over it.
// Each Recommend call runs the same steps:
//
//  1. Resolve the mood to preferred genres and the duration choice to a
//     runtime band (package rules).
//  2. Narrow the catalog by platform, runtime band, desired genre and mood
//     genres, falling back per stage when a filter would empty the set
//     (package filter).
//  3. Build a query vector from the genres and the band midpoint in the
//     fitted feature space (package features).
//  4. Score surviving candidates by cosine similarity and keep the top K
//     (package ranking).
//
// # Usage
//
//	engine, err := recommend.NewEngineFromFile(ctx, "data/movies.csv",
//	    catalog.ReaderCSV, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Mood:     "triste",
//	    Duration: "<60",
//	    Platform: "Netflix",
//	    K:        5,
//	})
//
// # Results
//
// Response.Items is never nil. An empty slice means no catalog item is
// offered on the requested platform; Response.Columns still lists the full
// schema plus "score" so consumers see a fixed column set.
//
// # Thread Safety
//
// Fitting happens once in NewEngine. Recommend reads shared state only and
// allocates its candidate set and query vector per call, so the engine is
// safe for concurrent use without locking.
package recommend
