// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/primesieve/internal/config"
	"github.com/AleutianAI/primesieve/internal/metrics"
	"github.com/AleutianAI/primesieve/internal/pipeline"
)

// APIVersion is the structured output schema version.
const APIVersion = "1.0"

// CommandResult wraps command output with metadata.
type CommandResult struct {
	APIVersion string    `json:"api_version" yaml:"api_version"`
	Command    string    `json:"command" yaml:"command"`
	RunID      string    `json:"run_id" yaml:"run_id"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	DurationMs int64     `json:"duration_ms" yaml:"duration_ms"`
	Success    bool      `json:"success" yaml:"success"`
	Data       *Payload  `json:"data,omitempty" yaml:"data,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Payload is the data section of a successful run.
type Payload struct {
	N        int             `json:"n" yaml:"n"`
	Bound    int             `json:"bound" yaml:"bound"`
	NthPrime int             `json:"nth_prime" yaml:"nth_prime"`
	Primes   []int           `json:"primes,omitempty" yaml:"primes,omitempty"`
	Metrics  *metrics.Report `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// NewResult builds the envelope for a successful run.
//
// # Inputs
//
//   - cmd: command name for metadata.
//   - res: pipeline result.
//   - rep: finalized metrics; nil omits the metrics section.
//   - listing: include the full prime list.
func NewResult(cmd string, res *pipeline.Result, rep *metrics.Report, listing bool) CommandResult {
	payload := &Payload{
		N:        res.N,
		Bound:    res.Bound,
		NthPrime: res.Last(),
		Metrics:  rep,
	}
	if listing {
		payload.Primes = res.Primes
	}
	return CommandResult{
		APIVersion: APIVersion,
		Command:    cmd,
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		DurationMs: res.Elapsed.Milliseconds(),
		Success:    true,
		Data:       payload,
	}
}

// NewErrorResult builds the envelope for a failed run.
func NewErrorResult(cmd, msg string, err error) CommandResult {
	return CommandResult{
		APIVersion: APIVersion,
		Command:    cmd,
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Success:    false,
		Error:      fmt.Sprintf("%s: %v", msg, err),
	}
}

// Write encodes result in format (json or yaml).
//
// # Outputs
//
//   - error: non-nil if encoding fails or format is not structured.
func Write(w io.Writer, format string, result CommandResult) error {
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// WriteProm writes every metric family in g in the prometheus text
// exposition format.
func WriteProm(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
