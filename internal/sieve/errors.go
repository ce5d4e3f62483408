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
	"errors"
	"fmt"
)

var (
	// ErrCountTooSmall is returned when fewer than MinCount primes are requested.
	ErrCountTooSmall = fmt.Errorf("number of primes to seek must be at least %d", MinCount)

	// ErrBoundInsufficient is returned when the candidate range held fewer
	// primes than requested.
	ErrBoundInsufficient = errors.New("candidate bound insufficient")
)

// BoundError reports an extraction that ran out of candidates.
//
// # Example
//
//	var boundErr *BoundError
//	if errors.As(err, &boundErr) {
//	    fmt.Println(boundErr.Found, "of", boundErr.Wanted)
//	}
type BoundError struct {
	// Bound is the size of the candidate array that was scanned.
	Bound int

	// Wanted is the number of primes requested.
	Wanted int

	// Found is the number of primes the array actually held.
	Found int
}

// Error returns a formatted error message.
func (e *BoundError) Error() string {
	return fmt.Sprintf("%s: bound %d yielded %d of %d primes",
		ErrBoundInsufficient, e.Bound, e.Found, e.Wanted)
}

// Unwrap returns ErrBoundInsufficient so errors.Is works on the chain.
func (e *BoundError) Unwrap() error {
	return ErrBoundInsufficient
}
