// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package prepare

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tomtom215/moodflix/internal/catalog"
)

// WriteCSV writes movies in the catalog layout, synthesizing platforms and
// descriptions.
func WriteCSV(w io.Writer, movies []Movie) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(catalog.Schema); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(catalog.Schema))
	for _, m := range movies {
		record[0] = m.ID
		record[1] = m.Title
		record[2] = strconv.Itoa(m.Year)
		record[3] = m.Genres
		record[4] = strconv.Itoa(m.Runtime)
		record[5] = strconv.FormatFloat(m.Rating, 'f', -1, 64)
		record[6] = strconv.FormatInt(m.NumVotes, 10)
		record[7] = AssignPlatforms(m.ID)
		record[8] = Description(m.Title, m.Year, m.Genres, m.Rating)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", m.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeCatalogFile writes to a temporary file next to path and renames it
// into place, so readers never see a partial catalog.
func writeCatalogFile(path string, movies []Movie) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".movies-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	bw := bufio.NewWriter(tmp)
	if err := WriteCSV(bw, movies); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
