// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package prepare builds the movie catalog from the public IMDb dumps.

It reads title.basics.tsv.gz and title.ratings.tsv.gz with an in-memory
DuckDB database and keeps feature films that have a title, year, runtime and
genres, were released in or after prepare.min_year, and have a rating with
at least prepare.min_votes votes. The prepare.max_movies most voted titles
are written to prepare.output_path in the catalog CSV layout:

	movie_id,title,year,genres,runtime,rating,num_votes,platforms,description

IMDb carries neither streaming availability nor plots, so platforms and
descriptions are synthesized:

  - platforms come from the SHA-256 of the IMDb ID, which keeps them
    stable across runs (see AssignPlatforms)
  - descriptions summarize title, year, genres and rating

The dumps are available from https://datasets.imdbws.com/.
*/
package prepare
