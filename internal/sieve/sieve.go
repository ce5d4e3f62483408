// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package sieve implements the bounded Sieve of Eratosthenes: bound
// estimation, composite marking and prime extraction.
package sieve

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/AleutianAI/primesieve/internal/metrics"
	"github.com/AleutianAI/primesieve/pkg/logging"
)

// Candidates holds composite flags for the integers 0..len-1.
//
// Flag i is true iff i was struck as a multiple of a smaller prime.
// Indices 0 and 1 are never examined and carry no meaning.
type Candidates []bool

// Len returns the candidate range size.
func (c Candidates) Len() int {
	return len(c)
}

// IsComposite reports whether i has been marked composite.
func (c Candidates) IsComposite(i int) bool {
	return c[i]
}

// Options carries the side channels the sieve reports through.
//
// A zero Options is valid: counts are discarded and nothing is traced.
type Options struct {
	// Recorder receives Sieve and NoSieve counts.
	Recorder metrics.Recorder

	// Logger receives debug traces and verbose progress lines.
	Logger *logging.Logger

	// ProgressEvery emits a verbose progress line for every
	// ProgressEvery-th sieving prime. Values < 1 disable progress lines.
	ProgressEvery int
}

func (o Options) recorder() metrics.Recorder {
	if o.Recorder == nil {
		return metrics.Discard
	}
	return o.Recorder
}

func (o Options) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

// Sieve allocates bound composite flags and strikes every composite.
//
// # Description
//
// For each i from 2 while i×i < bound: if i is unmarked, every i×j with
// j ≥ 2 and i×j < bound is marked and counted under PhaseSieve; if i is
// already marked the iteration is counted under PhaseNoSieve. Re-marking an
// already-composite multiple still counts as a marking.
//
// # Inputs
//
//   - bound: candidate range size; negative values are treated as 0.
//   - opts: recorder, logger and progress interval.
//
// # Outputs
//
//   - Candidates: the sieved flags, len == bound.
func Sieve(bound int, opts Options) Candidates {
	if bound < 0 {
		bound = 0
	}
	rec := opts.recorder()
	log := opts.logger()
	debug := log.Enabled(logging.LevelDebug)
	progress := opts.ProgressEvery > 0 && log.Enabled(logging.LevelInfo)
	every := rate.Sometimes{Every: max(opts.ProgressEvery, 1)}

	flags := make(Candidates, bound)

	var struck []int
	for i := 2; i*i < bound; i++ {
		if debug {
			log.Debug(fmt.Sprintf("%d:%d", i, boolToInt(flags[i])))
		}

		if flags[i] {
			rec.Add(metrics.PhaseNoSieve, 1)
			continue
		}

		if progress {
			every.Do(func() {
				log.Info("sieving", "prime", i, "bound", bound)
			})
		}

		marks := 0
		struck = struck[:0]
		for mult := 2 * i; mult < bound; mult += i {
			flags[mult] = true
			marks++
			if debug {
				struck = append(struck, mult)
			}
		}
		rec.Add(metrics.PhaseSieve, marks)

		if debug {
			log.Debug(fmt.Sprintf("pcandi[%d]:", i), "multiples", struck)
		}
	}
	return flags
}

// Dump writes every flag at debug level and counts each under PhaseInit.
//
// Does nothing when the logger is not at debug level.
func Dump(c Candidates, opts Options) {
	log := opts.logger()
	if !log.Enabled(logging.LevelDebug) {
		return
	}
	rec := opts.recorder()
	for i, composite := range c {
		log.Debug(fmt.Sprintf("pcandi[%d] = %d", i, boolToInt(composite)))
	}
	rec.Add(metrics.PhaseInit, len(c))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
