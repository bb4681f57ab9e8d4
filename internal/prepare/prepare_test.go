// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package prepare

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/config"
)

const basicsTSV = "tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres\n" +
	"tt0000001\tmovie\tAlpha\tAlpha\t0\t1999\t\\N\t95\tComedy,Family\n" +
	"tt0000002\tshort\tShort One\tShort One\t0\t2000\t\\N\t12\tComedy\n" +
	"tt0000003\tmovie\tOld Times\tOld Times\t0\t1960\t\\N\t100\tDrama\n" +
	"tt0000004\tmovie\tNo Runtime\tNo Runtime\t0\t2005\t\\N\t\\N\tAction\n" +
	"tt0000005\tmovie\tFew Votes\tFew Votes\t0\t2001\t\\N\t90\tHorror\n" +
	"tt0000006\tmovie\tThe \"Beta\" Cut\tBeta\t0\t2010\t\\N\t120\tDrama\n" +
	"tt0000007\tmovie\tUnrated\tUnrated\t0\t2012\t\\N\t101\tThriller\n" +
	"tt0000008\tmovie\tNo Genres\tNo Genres\t0\t2015\t\\N\t100\t\\N\n"

const ratingsTSV = "tconst\taverageRating\tnumVotes\n" +
	"tt0000001\t7.5\t12000\n" +
	"tt0000002\t6.0\t90000\n" +
	"tt0000003\t8.0\t70000\n" +
	"tt0000004\t6.5\t30000\n" +
	"tt0000005\t5.1\t100\n" +
	"tt0000006\t8.1\t50000\n" +
	"tt0000008\t7.0\t40000\n"

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func testConfig(t *testing.T) config.PrepareConfig {
	t.Helper()
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw")
	if err := os.MkdirAll(raw, 0o750); err != nil {
		t.Fatal(err)
	}
	writeGzip(t, filepath.Join(raw, BasicsFile), basicsTSV)
	writeGzip(t, filepath.Join(raw, RatingsFile), ratingsTSV)

	return config.PrepareConfig{
		RawDir:     raw,
		OutputPath: filepath.Join(dir, "out", "movies.csv"),
		MinYear:    1970,
		MinVotes:   5000,
		MaxMovies:  50000,
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	res, err := Run(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Movies != 2 {
		t.Fatalf("Movies = %d, want 2", res.Movies)
	}

	cat, err := catalog.Load(context.Background(), cfg.OutputPath, catalog.ReaderCSV)
	if err != nil {
		t.Fatalf("load prepared catalog: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("catalog Len() = %d, want 2", cat.Len())
	}

	beta, alpha := cat.Items[0], cat.Items[1]
	if beta.ID != "tt0000006" || alpha.ID != "tt0000001" {
		t.Fatalf("order = [%s %s], want most voted first", beta.ID, alpha.ID)
	}
	if beta.Title != `The "Beta" Cut` {
		t.Errorf("Title = %q, want bare quotes preserved", beta.Title)
	}
	if beta.Runtime != 120 || beta.Year == nil || *beta.Year != 2010 {
		t.Errorf("beta = %+v", beta)
	}
	if beta.NumVotes == nil || *beta.NumVotes != 50000 {
		t.Errorf("NumVotes = %v, want 50000", beta.NumVotes)
	}
	if beta.Platforms != AssignPlatforms("tt0000006") {
		t.Errorf("Platforms = %q, want %q", beta.Platforms, AssignPlatforms("tt0000006"))
	}
	if want := "Alpha (1999) — Comedy,Family movie, IMDb rating 7.5."; alpha.Description != want {
		t.Errorf("Description = %q, want %q", alpha.Description, want)
	}

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(cfg.OutputPath), ".movies-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestRun_Limits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.PrepareConfig)
		wantIDs []string
	}{
		{"max movies keeps most voted", func(c *config.PrepareConfig) { c.MaxMovies = 1 }, []string{"tt0000006"}},
		{"lower vote floor", func(c *config.PrepareConfig) { c.MinVotes = 0 }, []string{"tt0000006", "tt0000001", "tt0000005"}},
		{"earlier years", func(c *config.PrepareConfig) { c.MinYear = 1900 }, []string{"tt0000003", "tt0000006", "tt0000001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(t)
			tt.mutate(&cfg)
			if _, err := Run(context.Background(), cfg, zerolog.Nop()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			cat, err := catalog.Load(context.Background(), cfg.OutputPath, catalog.ReaderCSV)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			var got []string
			for _, it := range cat.Items {
				got = append(got, it.ID)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantIDs, ",") {
				t.Errorf("ids = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestRun_MissingRawFiles(t *testing.T) {
	t.Parallel()

	cfg := config.PrepareConfig{
		RawDir:     t.TempDir(),
		OutputPath: filepath.Join(t.TempDir(), "movies.csv"),
		MinYear:    1970,
		MinVotes:   5000,
		MaxMovies:  10,
	}
	_, err := Run(context.Background(), cfg, zerolog.Nop())
	if !errors.Is(err, ErrRawFilesMissing) {
		t.Fatalf("Run() error = %v, want ErrRawFilesMissing", err)
	}
	for _, name := range []string{BasicsFile, RatingsFile} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
	if _, statErr := os.Stat(cfg.OutputPath); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output written despite failure")
	}
}
