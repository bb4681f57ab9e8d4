// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors used by the terminal UI.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorError     = lipgloss.Color("196") // Red
)

// Styles holds the styles for one output. Each is bound to a renderer so
// color is dropped automatically when the output is not a terminal.
type Styles struct {
	Banner  lipgloss.Style
	Heading lipgloss.Style
	Option  lipgloss.Style
	Prompt  lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style

	Title lipgloss.Style
	Label lipgloss.Style
	Score lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds the styles for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(colorPrimary).
			Padding(0, 2),
		Heading: r.NewStyle().
			Bold(true).
			Foreground(colorHighlight),
		Option: r.NewStyle().
			PaddingLeft(2),
		Prompt: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		Notice: r.NewStyle().
			Foreground(colorSecondary),
		Error: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorHighlight),
		Label: r.NewStyle().
			Foreground(colorSecondary).
			PaddingLeft(2),
		Score: r.NewStyle().
			Foreground(colorSuccess),
		Muted: r.NewStyle().
			Foreground(colorSecondary).
			Italic(true),
	}
}
