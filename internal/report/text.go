// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package report renders pipeline results: the prime listing, the N-th prime
// line, the metrics table and the structured (json, yaml, prom) outputs.
//
// Rendering never feeds back into the computation. The only count it
// produces is PhasePrinting, one per listing entry.
package report

import (
	"fmt"

	"github.com/AleutianAI/primesieve/internal/metrics"
	"github.com/AleutianAI/primesieve/pkg/ux"
)

// Listing walks every prime, counting each under PhasePrinting, and writes
// "index\tvalue" lines when show is true.
//
// # Inputs
//
//   - p: destination printer.
//   - primes: the extracted primes.
//   - rec: receives the Printing count; nil discards it.
//   - show: whether the listing is written.
func Listing(p *ux.Printer, primes []int, rec metrics.Recorder, show bool) {
	if rec == nil {
		rec = metrics.Discard
	}
	if show {
		p.Printf("\nFirst %d primes:\n", len(primes))
	}
	for i, prime := range primes {
		if show {
			p.Printf("%d\t%d\n", i, prime)
		}
	}
	rec.Add(metrics.PhasePrinting, len(primes))
}

// NthPrime writes the headline result line.
func NthPrime(p *ux.Printer, n, prime int) {
	p.Printf("\nThe %s prime is %s! Wow!\n",
		p.Bold(Ordinal(n)),
		p.Bold(fmt.Sprintf("%d", prime)))
}

// MetricsTable writes one row per phase: name, operations, fraction of the
// total and log base N of the operation count.
func MetricsTable(p *ux.Printer, r metrics.Report) {
	p.Printf("\n%s\n", p.Heading(fmt.Sprintf("%12s\t%12s%12s%12s", "Metric", "Operations", "Fraction", "log_n(Ops)")))
	for _, row := range r.Rows {
		p.Printf("%12s\t%12d\t%7.5f   %7s\n", row.Name, row.Count, row.Fraction, formatLog(row.LogN))
	}
}

func formatLog(v *float64) string {
	if v == nil {
		return "-inf"
	}
	return fmt.Sprintf("%7.5f", *v)
}

// Ordinal renders n with its English ordinal suffix (1st, 2nd, 11th, 23rd).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
