// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package catalog

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/moodflix/internal/logging"
)

// Reader selects the backend used to parse the catalog file.
type Reader string

const (
	// ReaderCSV parses the file with encoding/csv.
	ReaderCSV Reader = "csv"

	// ReaderDuckDB parses the file through an in-memory DuckDB connection.
	// Supports CSV (including gzip) and Parquet.
	ReaderDuckDB Reader = "duckdb"
)

// ParseReader converts a configuration string to a Reader.
// The empty string selects ReaderCSV.
func ParseReader(s string) (Reader, error) {
	switch Reader(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReaderCSV:
		return ReaderCSV, nil
	case ReaderDuckDB:
		return ReaderDuckDB, nil
	default:
		return "", fmt.Errorf("unknown catalog reader %q (valid: csv, duckdb)", s)
	}
}

// table is the raw, untyped content of a catalog file as produced by a reader.
type table struct {
	header []string
	rows   [][]string
}

// Load reads the catalog at path with the selected reader.
//
// Returns an error wrapping ErrCatalogLoad when the file is missing or
// cannot be parsed, and ErrInvalidCatalog when the runtime column is absent.
func Load(ctx context.Context, path string, reader Reader) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCatalogLoad, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrCatalogLoad, path)
	}

	var raw *table
	switch reader {
	case "", ReaderCSV:
		raw, err = readCSV(ctx, path)
	case ReaderDuckDB:
		raw, err = readDuckDB(ctx, path)
	default:
		return nil, fmt.Errorf("%w: unknown reader %q", ErrCatalogLoad, reader)
	}
	if err != nil {
		return nil, err
	}

	cat, err := build(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.Source = path

	logging.Info().
		Str("path", path).
		Str("reader", string(reader)).
		Int("items", cat.Len()).
		Strs("columns", cat.Columns).
		Int("runtime_backfilled", cat.Backfilled).
		Msg("Catalog loaded")

	return cat, nil
}

// build converts raw rows into typed items and back-fills missing runtimes.
func build(raw *table) (*Catalog, error) {
	columns := make([]string, len(raw.header))
	index := make(map[string]int, len(raw.header))
	for i, name := range raw.header {
		name = normalizeColumn(name)
		columns[i] = name
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	if _, ok := index[ColumnRuntime]; !ok {
		return nil, fmt.Errorf("%w: missing required column %q", ErrInvalidCatalog, ColumnRuntime)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	items := make([]Item, 0, len(raw.rows))
	missingRuntime := make([]bool, 0, len(raw.rows))
	parsed := make([]float64, 0, len(raw.rows))
	seen := make(map[string]struct{}, len(raw.rows))

	for rowIdx, row := range raw.rows {
		id := field(row, ColumnID)
		if id == "" {
			id = GeneratedIDPrefix + strconv.Itoa(rowIdx)
		} else {
			if _, dup := seen[id]; dup {
				logging.Warn().
					Str("movie_id", id).
					Int("row", rowIdx).
					Msg("Duplicate movie_id in catalog, keeping first occurrence")
				continue
			}
			seen[id] = struct{}{}
		}

		item := Item{
			ID:          id,
			Title:       field(row, ColumnTitle),
			Genres:      field(row, ColumnGenres),
			Platforms:   field(row, ColumnPlatforms),
			Description: field(row, ColumnDescription),
		}

		if v, ok := parseNumber(field(row, ColumnYear)); ok {
			year := int(v)
			item.Year = &year
		}
		if v, ok := parseNumber(field(row, ColumnRating)); ok {
			item.Rating = &v
		}
		if v, ok := parseNumber(field(row, ColumnNumVotes)); ok {
			votes := int64(v)
			item.NumVotes = &votes
		}

		runtime, ok := parseNumber(field(row, ColumnRuntime))
		if ok {
			item.Runtime = int(math.Round(runtime))
			parsed = append(parsed, runtime)
		}
		missingRuntime = append(missingRuntime, !ok)
		items = append(items, item)
	}

	median := medianRounded(parsed)
	backfilled := 0
	for i, missing := range missingRuntime {
		if missing {
			items[i].Runtime = median
			backfilled++
		}
	}

	return &Catalog{
		Items:         items,
		Columns:       columns,
		RuntimeMedian: median,
		Backfilled:    backfilled,
	}, nil
}

// normalizeColumn lower-cases a header name and strips a UTF-8 BOM.
func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

// parseNumber parses integer or float text. Empty, NaN and infinite values
// are reported as absent.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// medianRounded returns the median of values rounded to the nearest integer,
// or 0 for an empty slice.
func medianRounded(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return int(math.Round(sorted[mid]))
	}
	return int(math.Round((sorted[mid-1] + sorted[mid]) / 2))
}
