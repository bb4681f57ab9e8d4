// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package catalog

import (
	"errors"
	"strings"
)

// Column names of the catalog input file.
const (
	ColumnID          = "movie_id"
	ColumnTitle       = "title"
	ColumnYear        = "year"
	ColumnGenres      = "genres"
	ColumnRuntime     = "runtime"
	ColumnRating      = "rating"
	ColumnNumVotes    = "num_votes"
	ColumnPlatforms   = "platforms"
	ColumnDescription = "description"
)

// GeneratedIDPrefix marks IDs assigned to rows without a movie_id. The
// suffix is the 0-based row index. Generated IDs never take part in
// duplicate detection, so they cannot shadow a real movie_id.
const GeneratedIDPrefix = "row:"

// Schema lists every catalog column in file order.
// Result records always carry these fields regardless of which columns the
// source file actually contained.
var Schema = []string{
	ColumnID,
	ColumnTitle,
	ColumnYear,
	ColumnGenres,
	ColumnRuntime,
	ColumnRating,
	ColumnNumVotes,
	ColumnPlatforms,
	ColumnDescription,
}

var (
	// ErrCatalogLoad indicates the catalog file is missing or unreadable.
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrInvalidCatalog indicates a required column is missing.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Item is one movie of the catalog.
type Item struct {
	// ID is the unique movie identifier (IMDb tconst for prepared catalogs).
	ID string `json:"movie_id"`

	// Title is the primary title.
	Title string `json:"title"`

	// Year is the release year, nil when unknown.
	Year *int `json:"year"`

	// Genres is a comma-separated list of genre labels, possibly empty.
	Genres string `json:"genres"`

	// Runtime is the duration in minutes. Always set after load.
	Runtime int `json:"runtime"`

	// Rating is the average audience rating (0-10), nil when unknown.
	Rating *float64 `json:"rating"`

	// NumVotes is the number of ratings, nil when unknown.
	NumVotes *int64 `json:"num_votes"`

	// Platforms is a comma-separated list of availability labels, possibly empty.
	Platforms string `json:"platforms"`

	// Description is free text, possibly empty.
	Description string `json:"description"`
}

// TextFeatures returns the text the feature space is fitted on: the genre
// list with commas replaced by spaces, followed by the description.
// It is derived on demand and never stored.
func (i *Item) TextFeatures() string {
	return strings.ReplaceAll(i.Genres, ",", " ") + " " + i.Description
}

// Catalog is the immutable, in-memory movie table.
type Catalog struct {
	// Items holds the movies in file order. Indices into Items are the
	// catalog positions used throughout the engine.
	Items []Item

	// Columns lists the normalized column names present in the source file.
	Columns []string

	// Source is the path the catalog was loaded from.
	Source string

	// RuntimeMedian is the median used to back-fill missing runtimes.
	RuntimeMedian int

	// Backfilled is the number of rows whose runtime was back-filled.
	Backfilled int
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.Items)
}

// HasColumn reports whether the source file contained the named column.
func (c *Catalog) HasColumn(name string) bool {
	for _, col := range c.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Texts returns the combined text features of every item, in catalog order.
func (c *Catalog) Texts() []string {
	texts := make([]string, len(c.Items))
	for i := range c.Items {
		texts[i] = c.Items[i].TextFeatures()
	}
	return texts
}

// Runtimes returns every item's runtime, in catalog order.
func (c *Catalog) Runtimes() []float64 {
	runtimes := make([]float64, len(c.Items))
	for i := range c.Items {
		runtimes[i] = float64(c.Items[i].Runtime)
	}
	return runtimes
}
