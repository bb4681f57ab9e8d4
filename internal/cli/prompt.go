// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

// NewPrompter creates a prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  NewStyles(out),
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, p.styles.Prompt.Render(prompt)+" ")
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Choose shows a numbered menu and returns the selected option. Anything
// other than a listed number re-prompts.
func (p *Prompter) Choose(question string, options []string) (string, error) {
	fmt.Fprintln(p.out, p.styles.Heading.Render(question))
	for i, opt := range options {
		fmt.Fprintln(p.out, p.styles.Option.Render(fmt.Sprintf("%d) %s", i+1, opt)))
	}

	for {
		answer, err := p.readLine("Select an option:")
		if err != nil {
			return "", err
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintln(p.out, p.styles.Error.Render("Invalid choice, try again."))
	}
}

// Text asks a free-text question; an empty answer is allowed.
func (p *Prompter) Text(question, prompt string) (string, error) {
	fmt.Fprintln(p.out, p.styles.Heading.Render(question))
	return p.readLine(prompt)
}

// PositiveInt asks for an integer >= 1; an empty answer returns def.
func (p *Prompter) PositiveInt(prompt string, def int) (int, error) {
	for {
		answer, err := p.readLine(fmt.Sprintf("%s [default %d]:", prompt, def))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, p.styles.Error.Render("Please enter a positive integer."))
	}
}
