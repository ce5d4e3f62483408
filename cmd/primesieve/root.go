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
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/primesieve/internal/config"
	"github.com/AleutianAI/primesieve/internal/metrics"
	"github.com/AleutianAI/primesieve/internal/pipeline"
	"github.com/AleutianAI/primesieve/internal/report"
	"github.com/AleutianAI/primesieve/pkg/logging"
	"github.com/AleutianAI/primesieve/pkg/ux"
)

const commandName = "primesieve"

// newRootCmd builds the root command, binding flags into cfg.
func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   commandName,
		Short: "Print the first N primes using a bounded Sieve of Eratosthenes",
		Long: `primesieve estimates an upper bound for the N-th prime, sieves the
candidate range and prints the N-th prime. Optional flags add a
progress trace, the full prime listing and a per-phase breakdown
of the operations performed.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), *cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Count, "count", "n", cfg.Count, "Number of primes to seek (at least 5)")
	flags.IntVarP(&cfg.PrintInterval, "print-interval", "p", cfg.PrintInterval, "Report sieve progress every p-th sieving prime (with -v)")
	flags.BoolVarP(&cfg.Metrics, "metrics", "m", cfg.Metrics, "Print out metrics at the end")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output. Track progress")
	flags.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "Set the debug flag. Maximum verbosity")
	flags.StringVarP(&cfg.Format, "output", "o", cfg.Format, "Output format: text, json, yaml or prom")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable styled output")
	flags.SortFlags = false

	return cmd
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cfg := config.Default()
	cmd := newRootCmd(&cfg, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	if err == nil {
		return code
	}

	structured := cfg.Format == config.FormatJSON || cfg.Format == config.FormatYAML
	if code == CLIExitError && structured {
		result := report.NewErrorResult(commandName, "Command failed", err)
		if encErr := report.Write(stdout, cfg.Format, result); encErr != nil {
			fmt.Fprintf(stderr, "Failed to encode %s: %v\n", cfg.Format, encErr)
		}
		return code
	}

	printer := ux.NewPrinter(stdout, colorEnabled(cfg, stdout))
	printer.Error(userMessage(err))
	if code == CLIExitUsage {
		printer.Println()
		_ = cmd.Usage()
	}
	return code
}

// run is the body of the root command. cfg has been populated by flag
// parsing; pipeline.Run validates it.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	log := newTraceLogger(cfg, stdout, stderr)
	log.Debug("Debug flag set.")

	counters := metrics.NewCounters()
	var rec metrics.Recorder = counters
	var registry *prometheus.Registry
	if cfg.Format == config.FormatProm {
		registry = prometheus.NewRegistry()
		prom, err := metrics.NewPromRecorder(registry)
		if err != nil {
			return &runError{err: err}
		}
		rec = metrics.Multi(counters, prom)
	}

	result, err := pipeline.Run(ctx, cfg, rec, log)
	if err != nil {
		return classify(err)
	}

	printer := ux.NewPrinter(stdout, colorEnabled(cfg, stdout))

	switch cfg.Format {
	case config.FormatText:
		report.Listing(printer, result.Primes, rec, cfg.ShowListing())
		report.NthPrime(printer, result.N, result.Last())
		log.Info("\nComplete!")
		if cfg.ShowMetrics() {
			report.MetricsTable(printer, counters.Finalize(result.N))
		}
		return nil

	case config.FormatProm:
		report.Listing(printer, result.Primes, rec, false)
		if err := report.WriteProm(stdout, registry); err != nil {
			return &runError{err: err}
		}
		return nil

	default:
		report.Listing(printer, result.Primes, rec, false)
		var rep *metrics.Report
		if cfg.ShowMetrics() {
			finalized := counters.Finalize(result.N)
			rep = &finalized
		}
		out := report.NewResult(commandName, result, rep, true)
		if err := report.Write(stdout, cfg.Format, out); err != nil {
			return &runError{err: fmt.Errorf("encode %s: %w", cfg.Format, err)}
		}
		return nil
	}
}

// newTraceLogger builds the trace logger. Text output interleaves plain
// trace lines on stdout; structured formats keep stdout machine-readable and
// write slog records to stderr, as JSON next to -o json.
func newTraceLogger(cfg config.Config, stdout, stderr io.Writer) *logging.Logger {
	lc := logging.Config{
		Level:   cfg.LogLevel(),
		Output:  stderr,
		Service: commandName,
	}
	switch cfg.Format {
	case config.FormatText:
		lc.Output = stdout
		lc.Plain = true
	case config.FormatJSON:
		lc.JSON = true
	}
	return logging.New(lc)
}

func colorEnabled(cfg config.Config, w io.Writer) bool {
	return !cfg.NoColor && ux.IsTerminal(w)
}
