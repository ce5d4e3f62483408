// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package metrics

import "math"

// Row is one finalized phase in a Report.
type Row struct {
	Phase    Phase    `json:"-" yaml:"-"`
	Name     string   `json:"phase" yaml:"phase"`
	Count    int      `json:"operations" yaml:"operations"`
	Fraction float64  `json:"fraction" yaml:"fraction"`
	LogN     *float64 `json:"log_n,omitempty" yaml:"log_n,omitempty"`
}

// Report is the read-only summary produced by Counters.Finalize.
type Report struct {
	// N is the prime count the logarithms are normalized against.
	N    int   `json:"n" yaml:"n"`
	Rows []Row `json:"rows" yaml:"rows"`
}

// Row returns the row for phase.
func (r Report) Row(phase Phase) Row {
	for _, row := range r.Rows {
		if row.Phase == phase {
			return row
		}
	}
	return Row{Phase: phase, Name: phase.String()}
}

// Total returns the grand total operation count.
func (r Report) Total() int {
	return r.Row(PhaseTotal).Count
}

// Finalize computes per-phase fractions of the total and log base n of
// each count.
//
// # Description
//
// Fraction is count / Total (0 when Total is 0). LogN is ln(count) / ln(n)
// and is nil for a zero count, where the logarithm is undefined.
//
// # Inputs
//
//   - n: the number of primes requested; must be > 1 for LogN to be defined.
//
// # Outputs
//
//   - Report: one row per phase in Phases order.
func (c *Counters) Finalize(n int) Report {
	total := c.Count(PhaseTotal)
	logBase := math.Log(float64(n))

	rows := make([]Row, 0, len(Phases))
	for _, phase := range Phases {
		count := c.Count(phase)
		row := Row{
			Phase: phase,
			Name:  phase.String(),
			Count: count,
		}
		if total > 0 {
			row.Fraction = float64(count) / float64(total)
		}
		if count > 0 && logBase > 0 {
			v := math.Log(float64(count)) / logBase
			row.LogN = &v
		}
		rows = append(rows, row)
	}
	return Report{N: n, Rows: rows}
}
