// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Printer Tests
// =============================================================================

func TestPrinter_PlainWhenColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	assert.Equal(t, "29", p.Bold("29"))
	assert.Equal(t, "Metric", p.Heading("Metric"))
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Error("Number of primes to seek must be at least 5. Exiting.")

	assert.Equal(t, "\n**Error: Number of primes to seek must be at least 5. Exiting.\n", buf.String())
}

func TestPrinter_KeepsTabs(t *testing.T) {
	tests := []struct {
		name  string
		color bool
	}{
		{"plain", false},
		{"styled", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrinter(&bytes.Buffer{}, tt.color)

			assert.Contains(t, p.Heading("Metric\tOperations"), "Metric\tOperations")
			assert.Contains(t, p.Bold("0\t2"), "0\t2")
			assert.NotContains(t, p.Heading("Metric\tOperations"), "Metric    Operations")
		})
	}
}

func TestPrinter_PrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Printf("%d\t%d\n", 0, 2)
	p.Println("done")

	assert.Equal(t, "0\t2\ndone\n", buf.String())
}

// =============================================================================
// IsTerminal Tests
// =============================================================================

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestIsTerminal_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Skipf("pipe unavailable: %v", err)
	}
	defer r.Close()
	defer w.Close()

	assert.False(t, IsTerminal(w))
}
