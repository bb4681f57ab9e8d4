// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver
)

// readDuckDB loads the file through an in-memory DuckDB database. Every
// column is read as text so both readers hand build the same input.
func readDuckDB(ctx context.Context, path string) (*table, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("%w: open duckdb: %w", ErrCatalogLoad, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, scanQuery(path))
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrCatalogLoad, path, err)
	}
	defer func() { _ = rows.Close() }()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns: %w", ErrCatalogLoad, err)
	}

	t := &table{header: header}
	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scan row %d: %w", ErrCatalogLoad, len(t.rows), err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		t.rows = append(t.rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %w", ErrCatalogLoad, err)
	}

	return t, nil
}

// scanQuery builds the table-function query for path. File paths cannot be
// bound as parameters to table functions, so the path is embedded as an
// escaped string literal.
func scanQuery(path string) string {
	literal := quoteLiteral(path)
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return fmt.Sprintf("SELECT * FROM read_parquet(%s)", literal)
	}
	return fmt.Sprintf("SELECT * FROM read_csv_auto(%s, header = true, all_varchar = true)", literal)
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
