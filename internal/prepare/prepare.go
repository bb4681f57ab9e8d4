// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package prepare

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/config"
)

// Raw dump file names expected in the raw directory.
const (
	BasicsFile  = "title.basics.tsv.gz"
	RatingsFile = "title.ratings.tsv.gz"
)

// ErrRawFilesMissing is returned when a dump file is not in the raw directory.
var ErrRawFilesMissing = errors.New("IMDb dump files missing")

// Movie is one prepared catalog row before platform and description
// synthesis.
type Movie struct {
	ID       string
	Title    string
	Year     int
	Genres   string
	Runtime  int
	Rating   float64
	NumVotes int64
}

// Result summarizes a preparation run.
type Result struct {
	OutputPath string
	Movies     int
	Duration   time.Duration
}

// Run reads the dumps from cfg.RawDir, selects movies and writes the
// catalog to cfg.OutputPath.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Run(ctx context.Context, cfg config.PrepareConfig, logger zerolog.Logger) (*Result, error) {
	start := time.Now()
	logger = logger.With().Str("component", "prepare").Logger()

	basics := filepath.Join(cfg.RawDir, BasicsFile)
	ratings := filepath.Join(cfg.RawDir, RatingsFile)
	if err := checkRawFiles(basics, ratings); err != nil {
		return nil, err
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info().
		Str("basics", basics).
		Str("ratings", ratings).
		Int("min_year", cfg.MinYear).
		Int("min_votes", cfg.MinVotes).
		Int("max_movies", cfg.MaxMovies).
		Msg("Selecting movies from IMDb dumps")

	movies, err := SelectMovies(ctx, db, basics, ratings, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("movies", len(movies)).Msg("Movies selected")

	if err := writeCatalogFile(cfg.OutputPath, movies); err != nil {
		return nil, err
	}

	res := &Result{OutputPath: cfg.OutputPath, Movies: len(movies), Duration: time.Since(start)}
	logger.Info().
		Str("output", res.OutputPath).
		Int("movies", res.Movies).
		Dur("duration", res.Duration).
		Msg("Catalog written")
	return res, nil
}

func checkRawFiles(paths ...string) error {
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", p, err)
			}
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (download %s and %s from https://datasets.imdbws.com/)",
			ErrRawFilesMissing, strings.Join(missing, ", "), BasicsFile, RatingsFile)
	}
	return nil
}

// SelectMovies runs the selection query. Ties in vote count are broken by
// IMDb ID so the output is deterministic.
func SelectMovies(ctx context.Context, db *sql.DB, basicsPath, ratingsPath string, cfg config.PrepareConfig) ([]Movie, error) {
	rows, err := db.QueryContext(ctx, selectQuery(basicsPath, ratingsPath, cfg.MaxMovies), cfg.MinYear, cfg.MinVotes)
	if err != nil {
		return nil, fmt.Errorf("query IMDb dumps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Genres, &m.Runtime, &m.Rating, &m.NumVotes); err != nil {
			return nil, fmt.Errorf("scan movie %d: %w", len(movies), err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

// selectQuery embeds the file paths because table functions do not accept
// bound parameters; min_year and min_votes are bound as $1 and $2.
func selectQuery(basicsPath, ratingsPath string, limit int) string {
	return fmt.Sprintf(`
WITH basics AS (
	SELECT
		tconst,
		primaryTitle,
		TRY_CAST(startYear AS INTEGER) AS year,
		genres,
		TRY_CAST(runtimeMinutes AS INTEGER) AS runtime
	FROM %s
	WHERE titleType = 'movie'
),
ratings AS (
	SELECT
		tconst,
		TRY_CAST(averageRating AS DOUBLE) AS rating,
		TRY_CAST(numVotes AS BIGINT) AS votes
	FROM %s
)
SELECT b.tconst, b.primaryTitle, b.year, b.genres, b.runtime, r.rating, r.votes
FROM basics b
JOIN ratings r USING (tconst)
WHERE b.primaryTitle IS NOT NULL
	AND b.genres IS NOT NULL
	AND b.year IS NOT NULL
	AND b.runtime IS NOT NULL
	AND b.year >= $1
	AND r.rating IS NOT NULL
	AND r.votes IS NOT NULL
	AND r.votes >= $2
ORDER BY r.votes DESC, b.tconst
LIMIT %d`, readTSV(basicsPath), readTSV(ratingsPath), limit)
}

// readTSV reads an IMDb dump: tab separated, gzip detected from the
// extension, \N as NULL and no quoting (titles contain bare quotes).
func readTSV(path string) string {
	return fmt.Sprintf(
		`read_csv(%s, delim = '\t', header = true, nullstr = '\N', quote = '', escape = '', all_varchar = true)`,
		quoteLiteral(path),
	)
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
