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

// Recorder receives operation counts from the pipeline stages.
//
// Implementations must be purely additive: no stage may depend on what a
// Recorder does with the counts.
type Recorder interface {
	// Add increments phase by n. Adds to derived phases are ignored.
	Add(phase Phase, n int)
}

// =============================================================================
// Counters
// =============================================================================

// Counters is the in-memory Recorder backing the metrics table.
//
// The zero value is not usable; create one with NewCounters.
type Counters struct {
	counts map[Phase]int
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{counts: make(map[Phase]int, len(Phases))}
}

// Add increments a leaf phase. Derived and unknown phases are ignored.
func (c *Counters) Add(phase Phase, n int) {
	if phase.Derived() || !phase.Valid() {
		return
	}
	c.counts[phase] += n
}

// Count returns the count for phase, computing derived phases from leaves.
//
// # Outputs
//
//   - int: TotSieve = Sieve + NoSieve, TotPrimes = Primes + NoPrimes,
//     Total = Init + TotSieve + TotPrimes + Printing; leaves as recorded.
func (c *Counters) Count(phase Phase) int {
	switch phase {
	case PhaseTotSieve:
		return c.counts[PhaseSieve] + c.counts[PhaseNoSieve]
	case PhaseTotPrimes:
		return c.counts[PhasePrimes] + c.counts[PhaseNoPrimes]
	case PhaseTotal:
		return c.counts[PhaseInit] +
			c.Count(PhaseTotSieve) +
			c.Count(PhaseTotPrimes) +
			c.counts[PhasePrinting]
	default:
		return c.counts[phase]
	}
}

// Reset zeroes every counter.
func (c *Counters) Reset() {
	clear(c.counts)
}

// =============================================================================
// Discard / Multi
// =============================================================================

type discard struct{}

func (discard) Add(Phase, int) {}

// Discard is a Recorder that drops every count.
var Discard Recorder = discard{}

type multi []Recorder

func (m multi) Add(phase Phase, n int) {
	for _, r := range m {
		r.Add(phase, n)
	}
}

// Multi returns a Recorder that forwards every Add to each of recorders.
// Nil recorders are skipped.
func Multi(recorders ...Recorder) Recorder {
	out := make(multi, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
