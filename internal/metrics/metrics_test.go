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

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Phase Tests
// =============================================================================

func TestPhase_Names(t *testing.T) {
	want := []string{"Init", "Sieve", "No Sieve", "Tot Sieve", "Primes", "No Primes", "Tot Primes", "Printing", "Total"}
	require.Len(t, Phases, len(want))
	for i, phase := range Phases {
		assert.Equal(t, want[i], phase.String())
		assert.NotEqual(t, "unknown", phase.Label())
		assert.True(t, phase.Valid())
	}
	assert.Equal(t, "Unknown", Phase(42).String())
	assert.False(t, Phase(42).Valid())
}

func TestPhase_Derived(t *testing.T) {
	derived := map[Phase]bool{PhaseTotSieve: true, PhaseTotPrimes: true, PhaseTotal: true}
	for _, phase := range Phases {
		assert.Equal(t, derived[phase], phase.Derived(), phase.String())
	}
}

// =============================================================================
// Counters Tests
// =============================================================================

func TestCounters_SumIdentities(t *testing.T) {
	c := NewCounters()
	c.Add(PhaseInit, 3)
	c.Add(PhaseSieve, 40)
	c.Add(PhaseNoSieve, 2)
	c.Add(PhasePrimes, 10)
	c.Add(PhaseNoPrimes, 18)
	c.Add(PhasePrinting, 10)

	assert.Equal(t, c.Count(PhaseSieve)+c.Count(PhaseNoSieve), c.Count(PhaseTotSieve))
	assert.Equal(t, c.Count(PhasePrimes)+c.Count(PhaseNoPrimes), c.Count(PhaseTotPrimes))
	assert.Equal(t,
		c.Count(PhaseInit)+c.Count(PhaseTotSieve)+c.Count(PhaseTotPrimes)+c.Count(PhasePrinting),
		c.Count(PhaseTotal))
	assert.Equal(t, 83, c.Count(PhaseTotal))
}

func TestCounters_IgnoresDerivedAndUnknown(t *testing.T) {
	c := NewCounters()
	c.Add(PhaseTotal, 100)
	c.Add(PhaseTotSieve, 5)
	c.Add(Phase(-3), 7)

	assert.Zero(t, c.Count(PhaseTotal))
	assert.Zero(t, c.Count(PhaseTotSieve))
}

func TestCounters_Reset(t *testing.T) {
	c := NewCounters()
	c.Add(PhaseSieve, 9)
	c.Reset()
	assert.Zero(t, c.Count(PhaseTotal))
}

func TestMulti_FansOut(t *testing.T) {
	a, b := NewCounters(), NewCounters()
	r := Multi(a, nil, b)
	r.Add(PhasePrimes, 2)

	assert.Equal(t, 2, a.Count(PhasePrimes))
	assert.Equal(t, 2, b.Count(PhasePrimes))
	assert.Same(t, a, Multi(nil, a))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Add(PhaseSieve, 1) })
}

// =============================================================================
// Finalize Tests
// =============================================================================

func TestFinalize_FractionsAndLogs(t *testing.T) {
	c := NewCounters()
	c.Add(PhaseSieve, 100)
	c.Add(PhasePrimes, 10)
	c.Add(PhasePrinting, 10)

	report := c.Finalize(10)

	require.Len(t, report.Rows, len(Phases))
	assert.Equal(t, 10, report.N)
	assert.Equal(t, 120, report.Total())

	sieve := report.Row(PhaseSieve)
	assert.InDelta(t, 100.0/120.0, sieve.Fraction, 1e-12)
	require.NotNil(t, sieve.LogN)
	assert.InDelta(t, 2.0, *sieve.LogN, 1e-12)

	total := report.Row(PhaseTotal)
	assert.InDelta(t, 1.0, total.Fraction, 1e-12)

	// Zero counts have no logarithm.
	assert.Nil(t, report.Row(PhaseInit).LogN)
	assert.Nil(t, report.Row(PhaseNoSieve).LogN)
}

func TestFinalize_FractionsOfLeavesSumToOne(t *testing.T) {
	c := NewCounters()
	c.Add(PhaseInit, 31)
	c.Add(PhaseSieve, 27)
	c.Add(PhaseNoSieve, 1)
	c.Add(PhasePrimes, 10)
	c.Add(PhaseNoPrimes, 18)
	c.Add(PhasePrinting, 10)

	report := c.Finalize(10)
	sum := 0.0
	for _, row := range report.Rows {
		if !row.Phase.Derived() {
			sum += row.Fraction
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestFinalize_Empty(t *testing.T) {
	report := NewCounters().Finalize(10)
	for _, row := range report.Rows {
		assert.Zero(t, row.Count)
		assert.Zero(t, row.Fraction)
		assert.Nil(t, row.LogN)
	}
}

func TestFinalize_LogMatchesChangeOfBase(t *testing.T) {
	c := NewCounters()
	c.Add(PhaseSieve, 541)
	report := c.Finalize(100)
	require.NotNil(t, report.Row(PhaseSieve).LogN)
	assert.InDelta(t, math.Log(541)/math.Log(100), *report.Row(PhaseSieve).LogN, 1e-12)
}

// =============================================================================
// PromRecorder Tests
// =============================================================================

func TestPromRecorder_Add(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	rec.Add(PhaseSieve, 5)
	rec.Add(PhaseSieve, 2)
	rec.Add(PhaseTotal, 100) // ignored
	rec.Add(PhasePrimes, 0)

	assert.Equal(t, 7.0, testutil.ToFloat64(rec.Counter(PhaseSieve)))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Counter(PhasePrimes)))

	// Six leaf series are pre-created; derived phases are never exported.
	assert.Equal(t, 6, testutil.CollectAndCount(rec.ops))
}

func TestPromRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromRecorder(reg)
	require.NoError(t, err)

	_, err = NewPromRecorder(reg)
	assert.Error(t, err)
}
