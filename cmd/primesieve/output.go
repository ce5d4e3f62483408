// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"errors"
	"fmt"

	"github.com/AleutianAI/primesieve/internal/config"
	"github.com/AleutianAI/primesieve/internal/sieve"
)

// Exit codes for the CLI.
const (
	CLIExitSuccess = 0 // Primes computed and printed
	CLIExitUsage   = 1 // Invalid arguments: bad flag, bad value, N < 5
	CLIExitError   = 2 // Computation failed (candidate bound insufficient)
)

// usageError marks a failure that is reported with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// runError marks a failure of the computation itself.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

// exitCode maps an error returned by the root command to a process exit code.
//
// Anything that is not a runError came from argument handling (cobra flag
// parsing, positional args, validation) and maps to CLIExitUsage.
func exitCode(err error) int {
	if err == nil {
		return CLIExitSuccess
	}
	var re *runError
	if errors.As(err, &re) {
		return CLIExitError
	}
	return CLIExitUsage
}

// classify wraps a pipeline failure by its cause: invalid configuration is a
// usage error, anything else is a computation failure.
func classify(err error) error {
	if errors.Is(err, config.ErrInvalidConfig) {
		return &usageError{err: err}
	}
	return &runError{err: err}
}

// userMessage returns the text shown after "**Error:".
func userMessage(err error) string {
	if errors.Is(err, sieve.ErrCountTooSmall) {
		return fmt.Sprintf("Number of primes to seek must be at least %d. Exiting.", sieve.MinCount)
	}
	return err.Error()
}
