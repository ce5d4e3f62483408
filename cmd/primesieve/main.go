// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command primesieve prints the first N primes using a bounded Sieve of
// Eratosthenes.
//
// Usage:
//
//	primesieve -n 100        # The 100th prime is 541! Wow!
//	primesieve -n 25 -v      # progress trace and full listing
//	primesieve -n 25 -m      # per-phase operation counts
//	primesieve -n 25 -d      # everything, including the raw array dump
//	primesieve -n 25 -m -o json
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
