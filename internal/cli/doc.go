// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package cli implements the interactive terminal front end: numbered menus
// for mood, duration and platform, free-text genre and result count, and a
// lipgloss-styled report of the recommendations.
//
// Input and output are plain io.Reader/io.Writer so sessions can be scripted:
//
//	err := cli.Run(ctx, engine, strings.NewReader("2\n1\n2\n\n3\n"), os.Stdout)
package cli
