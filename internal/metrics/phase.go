// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package metrics counts operations per pipeline phase.
//
// Stages report work through the Recorder interface. Counters keeps the
// counts in memory and finalizes them into a Report; Discard drops them;
// PromRecorder mirrors them into a prometheus registry.
package metrics

// Phase names an operation counter.
//
// Leaf phases are incremented by the pipeline stages. TotSieve, TotPrimes
// and Total are derived from the leaves and cannot be added to directly.
type Phase int

const (
	// PhaseInit counts candidate-array initialization steps (debug dump).
	PhaseInit Phase = iota

	// PhaseSieve counts composite markings.
	PhaseSieve

	// PhaseNoSieve counts outer sieve iterations skipped because the
	// candidate was already marked.
	PhaseNoSieve

	// PhaseTotSieve is PhaseSieve + PhaseNoSieve.
	PhaseTotSieve

	// PhasePrimes counts candidates accepted as prime during extraction.
	PhasePrimes

	// PhaseNoPrimes counts candidates rejected during extraction.
	PhaseNoPrimes

	// PhaseTotPrimes is PhasePrimes + PhaseNoPrimes.
	PhaseTotPrimes

	// PhasePrinting counts prime listing entries.
	PhasePrinting

	// PhaseTotal is PhaseInit + PhaseTotSieve + PhaseTotPrimes + PhasePrinting.
	PhaseTotal
)

// Phases lists every phase in report order.
var Phases = []Phase{
	PhaseInit,
	PhaseSieve,
	PhaseNoSieve,
	PhaseTotSieve,
	PhasePrimes,
	PhaseNoPrimes,
	PhaseTotPrimes,
	PhasePrinting,
	PhaseTotal,
}

var phaseNames = map[Phase]string{
	PhaseInit:      "Init",
	PhaseSieve:     "Sieve",
	PhaseNoSieve:   "No Sieve",
	PhaseTotSieve:  "Tot Sieve",
	PhasePrimes:    "Primes",
	PhaseNoPrimes:  "No Primes",
	PhaseTotPrimes: "Tot Primes",
	PhasePrinting:  "Printing",
	PhaseTotal:     "Total",
}

var phaseLabels = map[Phase]string{
	PhaseInit:      "init",
	PhaseSieve:     "sieve",
	PhaseNoSieve:   "no_sieve",
	PhaseTotSieve:  "tot_sieve",
	PhasePrimes:    "primes",
	PhaseNoPrimes:  "no_primes",
	PhaseTotPrimes: "tot_primes",
	PhasePrinting:  "printing",
	PhaseTotal:     "total",
}

// String returns the display name used in the metrics table.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Label returns the snake_case name used for prometheus labels and
// structured output keys.
func (p Phase) Label() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return "unknown"
}

// Derived reports whether the phase is a sum of other phases.
func (p Phase) Derived() bool {
	switch p {
	case PhaseTotSieve, PhaseTotPrimes, PhaseTotal:
		return true
	default:
		return false
	}
}

// Valid reports whether p is one of the declared phases.
func (p Phase) Valid() bool {
	return p >= PhaseInit && p <= PhaseTotal
}
