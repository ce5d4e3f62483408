// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Level Tests
// =============================================================================

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLevel_toSlogLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{Level(99), slog.LevelInfo}, // Unknown defaults to Info
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.toSlogLevel())
		})
	}
}

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		debug   bool
		want    Level
	}{
		{"quiet", false, false, LevelWarn},
		{"verbose", true, false, LevelInfo},
		{"debug", false, true, LevelDebug},
		{"debug wins", true, true, LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromFlags(tt.verbose, tt.debug))
		})
	}
}

// =============================================================================
// Plain Handler Tests
// =============================================================================

func TestPlain_WritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf, Plain: true})

	logger.Debug("strike", "prime", 3, "marked", 4)

	assert.Equal(t, "strike prime=3 marked=4\n", buf.String())
}

func TestPlain_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, Plain: true})

	logger.Debug("hidden")
	logger.Info("Sieving...")

	assert.Equal(t, "Sieving...\n", buf.String())
}

func TestPlain_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf, Plain: true})

	logger.slog.With("stage", "sieve").Info("progress", "prime", 7)

	grouped := New(Config{Level: LevelDebug, Output: &buf, Plain: true})
	grouped.slog.WithGroup("sieve").Info("g", "n", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "progress stage=sieve prime=7", lines[0])
	assert.Equal(t, "g sieve.n=1", lines[1])
}

func TestPlain_OmitsService(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, Plain: true, Service: "primesieve"})

	logger.Info("Complete!")

	assert.Equal(t, "Complete!\n", buf.String())
}

// =============================================================================
// Structured Handler Tests
// =============================================================================

func TestJSON_IncludesServiceAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, JSON: true, Service: "primesieve"})

	logger.Info("sieving", "prime", 5, "bound", 31)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "sieving", entry["msg"])
	assert.Equal(t, "primesieve", entry["service"])
	assert.EqualValues(t, 31, entry["bound"])
}

func TestText_DefaultHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, Service: "primesieve"})

	logger.Debug("dropped")
	logger.Info("Sieving...", "bound", 31)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg=Sieving...`)
	assert.Contains(t, out, "service=primesieve")
	assert.Contains(t, out, "bound=31")
}

// =============================================================================
// Logger Method Tests
// =============================================================================

func TestLogger_Enabled(t *testing.T) {
	logger := New(Config{Level: LevelInfo, Output: &bytes.Buffer{}, Plain: true})

	assert.False(t, logger.Enabled(LevelDebug))
	assert.True(t, logger.Enabled(LevelInfo))
	assert.True(t, logger.Enabled(LevelError))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(LevelWarn))
	assert.NotPanics(t, func() {
		logger.Info("nothing")
	})
}
