// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sieve

import "github.com/AleutianAI/primesieve/internal/metrics"

// Extract collects the first n unmarked candidates from index 2 upward.
//
// # Description
//
// Each unmarked candidate is appended and counted under PhasePrimes; each
// marked one is counted under PhaseNoPrimes. The scan stops once n primes
// are collected or the array is exhausted.
//
// # Inputs
//
//   - c: sieved candidates.
//   - n: number of primes wanted.
//   - rec: receives extraction counts; nil discards them.
//
// # Outputs
//
//   - []int: the first n primes in ascending order.
//   - error: *BoundError if c held fewer than n primes. The partial
//     sequence is still returned for diagnostics.
func Extract(c Candidates, n int, rec metrics.Recorder) ([]int, error) {
	if rec == nil {
		rec = metrics.Discard
	}
	primes := make([]int, 0, max(n, 0))

	found, rejected := 0, 0
	for i := 2; i < len(c) && found < n; i++ {
		if c[i] {
			rejected++
			continue
		}
		primes = append(primes, i)
		found++
	}
	rec.Add(metrics.PhasePrimes, found)
	rec.Add(metrics.PhaseNoPrimes, rejected)

	if len(primes) < n {
		return primes, &BoundError{Bound: len(c), Wanted: n, Found: len(primes)}
	}
	return primes, nil
}
