// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/moodflix/internal/recommend"
)

// maxDescriptionRunes is where descriptions are cut in the report.
const maxDescriptionRunes = 160

// emptyResultHint is printed when no item survives filtering.
const emptyResultHint = "No movies found with these filters. Try a different duration, platform or genre."

// RenderReport writes the results of resp to w.
func RenderReport(w io.Writer, resp *recommend.Response) {
	st := NewStyles(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Banner.Render("RESULTS"))
	fmt.Fprintln(w)

	if resp == nil || len(resp.Items) == 0 {
		fmt.Fprintln(w, st.Muted.Render(emptyResultHint))
		return
	}

	for i := range resp.Items {
		renderItem(w, st, &resp.Items[i])
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, st.Heading.Render("Enjoy the show!"))
}

func renderItem(w io.Writer, st Styles, item *recommend.ScoredItem) {
	title := item.Title
	if item.Year != nil {
		title = fmt.Sprintf("%s (%d)", title, *item.Year)
	}
	fmt.Fprintln(w, "- "+st.Title.Render(title))

	field := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", st.Label.Render(label+":"), value)
	}

	if item.Rating != nil {
		rating := fmt.Sprintf("%.1f", *item.Rating)
		if item.NumVotes != nil {
			rating = fmt.Sprintf("%s (%d votes)", rating, *item.NumVotes)
		}
		field("IMDb rating", rating)
	}
	field("Genres", item.Genres)
	field("Runtime", fmt.Sprintf("%d min", item.Runtime))
	field("Platforms", item.Platforms)
	field("Score", st.Score.Render(fmt.Sprintf("%.3f", item.Score)))

	if desc := strings.TrimSpace(item.Description); desc != "" {
		field("Description", truncate(desc, maxDescriptionRunes))
	}
}

// truncate cuts s to n runes and appends "..." when it was longer.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// PrintMissingCatalog explains how to produce the catalog file.
func PrintMissingCatalog(w io.Writer, catalogPath, rawDir string) {
	st := NewStyles(w)
	fmt.Fprintln(w, st.Error.Render(fmt.Sprintf("Cannot find the catalog at %s.", catalogPath)))
	fmt.Fprintln(w, "  1) Download from https://datasets.imdbws.com/")
	fmt.Fprintln(w, "       - title.basics.tsv.gz")
	fmt.Fprintln(w, "       - title.ratings.tsv.gz")
	fmt.Fprintf(w, "  2) Put them in %s/\n", strings.TrimRight(rawDir, "/"))
	fmt.Fprintln(w, "  3) Run: go run ./cmd/prepare")
}
