// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_CALLER", "")

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Caller {
		t.Error("Caller = true, want false")
	}
	if !cfg.Timestamp {
		t.Error("Timestamp = false, want true")
	}
}

func TestDefaultConfig_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_CALLER", "true")

	cfg := DefaultConfig()

	if cfg.Level != "debug" || cfg.Format != "console" || !cfg.Caller {
		t.Errorf("DefaultConfig() = %+v, want env overrides applied", cfg)
	}
}

func TestInit(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("dropped")
	Warn().Str("stage", "genre").Msg("kept")

	output := buf.String()
	if strings.Contains(output, "dropped") {
		t.Errorf("info entry written at warn level: %s", output)
	}
	if !strings.Contains(output, `"stage":"genre"`) {
		t.Errorf("warn entry missing field: %s", output)
	}
	if got := Logger().GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", got)
	}
}

func TestInit_Console(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	Info().Msg("catalog ready")

	output := buf.String()
	if !strings.Contains(output, "catalog ready") {
		t.Errorf("console output missing message: %s", output)
	}
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Errorf("console output looks like JSON: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{" DEBUG ", zerolog.DebugLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "DEBUG", "info", "warn", "error"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "verbose", "inf"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true, want false", level)
		}
	}
}

func TestErr(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf).Level(zerolog.ErrorLevel))

	Warn().Msg("suppressed")
	Err(errTest).Msg("reported")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("warn entry written at error level: %s", output)
	}
	if !strings.Contains(output, `"error":"boom"`) {
		t.Errorf("error entry missing error field: %s", output)
	}
}

func TestWithComponent(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	logger := WithComponent("catalog")
	logger.Info().Msg("loaded")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("output missing component: %s", buf.String())
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")
