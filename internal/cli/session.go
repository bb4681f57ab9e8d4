// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/tomtom215/moodflix/internal/recommend"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
)

// AnyPlatform is the menu entry that disables platform filtering.
const AnyPlatform = "Any"

// DefaultCount is the result count used when the user just presses Enter.
const DefaultCount = 5

// MoodOptions are the moods offered in the menu, in display order.
var MoodOptions = []string{"felice", "triste", "stressato", "riflessivo", "neutro"}

// PlatformOptions are the platforms offered in the menu.
var PlatformOptions = []string{AnyPlatform, "Netflix", "Prime", "Disney+", "HBO Max"}

// DurationOptions returns the duration labels in menu order.
func DurationOptions() []string {
	choices := rules.DurationChoices()
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Label
	}
	return out
}

// Recommender produces recommendations. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// Selection is what the user picked in one session.
type Selection struct {
	Mood     string
	Duration string
	Platform string
	Genre    string
	Count    int
}

// Request converts the selection to an engine request.
func (s Selection) Request() recommend.Request {
	platform := s.Platform
	if platform == AnyPlatform {
		platform = "any"
	}
	return recommend.Request{
		Mood:         s.Mood,
		Duration:     s.Duration,
		Platform:     platform,
		K:            s.Count,
		DesiredGenre: s.Genre,
	}
}

// Ask walks the user through every menu.
func (p *Prompter) Ask() (Selection, error) {
	var sel Selection
	var err error

	if sel.Mood, err = p.Choose("How do you feel today?", MoodOptions); err != nil {
		return sel, err
	}
	p.echo("Mood: %s", sel.Mood)

	if sel.Duration, err = p.Choose("How much time do you have?", DurationOptions()); err != nil {
		return sel, err
	}
	p.echo("Duration: %s minutes", sel.Duration)

	if sel.Platform, err = p.Choose("Which platform should we search?", PlatformOptions); err != nil {
		return sel, err
	}
	p.echo("Platform: %s", sel.Platform)

	sel.Genre, err = p.Text(
		"Any genre in particular (e.g. Action, Comedy, Drama, Horror, Sci-Fi, Romance, Animation, Thriller, Documentary)?",
		"Type a genre or press Enter for no preference:",
	)
	if err != nil {
		return sel, err
	}
	if sel.Genre == "" {
		p.echo("No genre preference.")
	} else {
		p.echo("Genre: %s", sel.Genre)
	}

	if sel.Count, err = p.PositiveInt("How many movies should we suggest?", DefaultCount); err != nil {
		return sel, err
	}
	return sel, nil
}

func (p *Prompter) echo(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.styles.Notice.Render(fmt.Sprintf(format, args...)))
	fmt.Fprintln(p.out)
}

// Run executes one interactive session: banner, menus, recommendation and
// report.
func Run(ctx context.Context, rec Recommender, in io.Reader, out io.Writer) error {
	p := NewPrompter(in, out)

	fmt.Fprintln(out, p.styles.Banner.Render("MoodFlix Recommender"))
	fmt.Fprintln(out, p.styles.Notice.Render("powered by IMDb"))
	fmt.Fprintln(out)

	sel, err := p.Ask()
	if err != nil {
		return err
	}

	resp, err := rec.Recommend(ctx, sel.Request())
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	RenderReport(out, resp)
	return nil
}
