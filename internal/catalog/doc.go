// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package catalog loads the movie catalog that backs the recommendation engine.
//
// # Input Format
//
// The catalog is a tabular file with a header row and the columns:
//
//	movie_id, title, year, genres, runtime, rating, num_votes, platforms, description
//
// genres and platforms are comma-separated label lists. Only runtime is
// required; every other column is optional and defaults to an empty string
// (text columns) or nil (numeric columns).
//
// # Readers
//
// Two readers produce identical catalogs:
//
//   - ReaderCSV: streaming encoding/csv reader (default)
//   - ReaderDuckDB: DuckDB read_csv_auto / read_parquet, useful for large or
//     columnar exports
//
// # Runtime Back-fill
//
// Rows with an empty or unparsable runtime are back-filled with the median
// of the parsed runtimes, rounded to the nearest minute. After Load returns,
// every item has a runtime.
//
// # Errors
//
// Load wraps ErrCatalogLoad when the file is missing or unreadable and
// ErrInvalidCatalog when the runtime column is absent. Test with errors.Is.
//
// # Thread Safety
//
// A loaded Catalog is never mutated and may be shared between goroutines.
package catalog
