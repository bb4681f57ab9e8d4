// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package catalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 4096

func readCSV(ctx context.Context, path string) (*table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrCatalogLoad, path, err)
	}
	defer func() { _ = f.Close() }()

	return parseCSV(ctx, f)
}

// parseCSV reads a header row followed by data rows. Ragged rows are
// accepted; missing trailing fields read as empty.
func parseCSV(ctx context.Context, r io.Reader) (*table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrCatalogLoad, err)
	}

	t := &table{header: header}
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)
		}
		t.rows = append(t.rows, record)
	}

	return t, nil
}
