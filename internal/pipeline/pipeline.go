// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pipeline runs the prime computation: estimate the bound, sieve the
// candidates, extract the first N primes.
//
// Each stage runs inside an OpenTelemetry span taken from the global tracer
// provider, which is a no-op unless the caller installs one.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/primesieve/internal/config"
	"github.com/AleutianAI/primesieve/internal/metrics"
	"github.com/AleutianAI/primesieve/internal/sieve"
	"github.com/AleutianAI/primesieve/pkg/logging"
)

const tracerName = "github.com/AleutianAI/primesieve/internal/pipeline"

// Span names, one per stage plus the enclosing run.
const (
	SpanRun      = "primes.run"
	SpanEstimate = "primes.estimate"
	SpanSieve    = "primes.sieve"
	SpanExtract  = "primes.extract"
)

// Result is the structured outcome of a run.
type Result struct {
	// N is the number of primes requested.
	N int `json:"n" yaml:"n"`

	// Bound is the candidate range that was sieved.
	Bound int `json:"bound" yaml:"bound"`

	// Primes holds the first N primes in ascending order.
	Primes []int `json:"primes" yaml:"primes"`

	// Elapsed is the wall time of the computation.
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// Last returns the N-th prime.
func (r *Result) Last() int {
	return r.Primes[len(r.Primes)-1]
}

// Run computes the first cfg.Count primes.
//
// # Description
//
// Validates cfg, then runs estimate → (debug dump) → sieve → extract.
// Counts go to rec and trace lines to log; neither affects the primes.
//
// # Inputs
//
//   - ctx: parent context for span propagation.
//   - cfg: run configuration.
//   - rec: operation counter sink; nil discards counts.
//   - log: trace logger; nil discards traces.
//
// # Outputs
//
//   - *Result: primes and bound on success.
//   - error: config.ErrInvalidConfig for bad input, sieve.ErrBoundInsufficient
//     (as *sieve.BoundError) if the range held too few primes.
func Run(ctx context.Context, cfg config.Config, rec metrics.Recorder, log *logging.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = metrics.Discard
	}
	if log == nil {
		log = logging.Discard()
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, SpanRun, trace.WithAttributes(
		attribute.Int("primes.count", cfg.Count),
	))
	defer span.End()

	start := time.Now()

	log.Info("Initializing...")
	bound, err := estimate(ctx, tracer, cfg.Count)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("primes.bound", bound))

	opts := sieve.Options{
		Recorder:      rec,
		Logger:        log,
		ProgressEvery: cfg.PrintInterval,
	}

	// The dump shows the freshly allocated array, before any marking.
	if log.Enabled(logging.LevelDebug) {
		sieve.Dump(make(sieve.Candidates, bound), opts)
	}

	log.Info("Sieving...")
	candidates := sieveStage(ctx, tracer, bound, opts)

	primes, err := extract(ctx, tracer, candidates, cfg.Count, rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("extract %d primes: %w", cfg.Count, err)
	}

	return &Result{
		N:       cfg.Count,
		Bound:   bound,
		Primes:  primes,
		Elapsed: time.Since(start),
	}, nil
}

func estimate(ctx context.Context, tracer trace.Tracer, n int) (int, error) {
	_, span := tracer.Start(ctx, SpanEstimate)
	defer span.End()

	bound, err := sieve.CandidateRange(n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int("primes.bound", bound))
	return bound, nil
}

func sieveStage(ctx context.Context, tracer trace.Tracer, bound int, opts sieve.Options) sieve.Candidates {
	_, span := tracer.Start(ctx, SpanSieve, trace.WithAttributes(
		attribute.Int("primes.bound", bound),
	))
	defer span.End()

	return sieve.Sieve(bound, opts)
}

func extract(ctx context.Context, tracer trace.Tracer, c sieve.Candidates, n int, rec metrics.Recorder) ([]int, error) {
	_, span := tracer.Start(ctx, SpanExtract)
	defer span.End()

	primes, err := sieve.Extract(c, n, rec)
	span.SetAttributes(attribute.Int("primes.found", len(primes)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return primes, nil
}
