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

import (
	"fmt"
	"math"
)

// MinCount is the smallest prime count accepted. Below it n·ln(n·ln n)
// takes the log of values near 1 and degenerates.
const MinCount = 5

// minRange holds 0..11 so p₅ = 11 is reachable. The estimate is only an
// upper bound on the n-th prime from n = 6 on; for n = 5 it gives 10.
const minRange = 12

// EstimateBound returns floor(n × ln(n × ln n)).
//
// # Description
//
// By the prime number theorem the n-th prime is close to n·ln n; the extra
// log factor gives the slack needed for the candidate range to contain n
// primes.
//
// # Inputs
//
//   - n: number of primes wanted, at least MinCount.
//
// # Outputs
//
//   - int: the estimated bound.
//   - error: ErrCountTooSmall if n < MinCount.
func EstimateBound(n int) (int, error) {
	if n < MinCount {
		return 0, fmt.Errorf("estimate bound for %d: %w", n, ErrCountTooSmall)
	}
	fn := float64(n)
	return int(math.Floor(fn * math.Log(fn*math.Log(fn)))), nil
}

// CandidateRange returns the size of the candidate array to sieve for n
// primes: EstimateBound(n), raised to hold p₅ for the smallest n.
func CandidateRange(n int) (int, error) {
	bound, err := EstimateBound(n)
	if err != nil {
		return 0, err
	}
	return max(bound, minRange), nil
}
