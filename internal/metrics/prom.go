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
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// =============================================================================
// Prometheus Recorder
// =============================================================================

// PromRecorder mirrors leaf phase counts into a prometheus CounterVec
// registered on a caller-supplied registry.
type PromRecorder struct {
	ops *prometheus.CounterVec
}

// NewPromRecorder registers primesieve_phase_operations_total on reg.
//
// # Inputs
//
//   - reg: registry to register the counter on.
//
// # Outputs
//
//   - *PromRecorder: ready recorder.
//   - error: non-nil if registration failed (e.g. duplicate registration).
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "primesieve",
		Subsystem: "phase",
		Name:      "operations_total",
		Help:      "Operations performed per sieve pipeline phase",
	}, []string{"phase"})

	if err := reg.Register(ops); err != nil {
		return nil, fmt.Errorf("register phase counter: %w", err)
	}

	// Pre-create every leaf series so zero counts are exported too.
	for _, phase := range Phases {
		if !phase.Derived() {
			ops.WithLabelValues(phase.Label())
		}
	}
	return &PromRecorder{ops: ops}, nil
}

// Add increments the series for a leaf phase.
func (p *PromRecorder) Add(phase Phase, n int) {
	if phase.Derived() || !phase.Valid() || n <= 0 {
		return
	}
	p.ops.WithLabelValues(phase.Label()).Add(float64(n))
}

// Counter returns the series for phase, for inspection in tests.
func (p *PromRecorder) Counter(phase Phase) prometheus.Counter {
	return p.ops.WithLabelValues(phase.Label())
}
