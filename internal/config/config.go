// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config holds the immutable run configuration parsed from the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/primesieve/internal/sieve"
	"github.com/AleutianAI/primesieve/pkg/logging"
)

// MaxCount caps the number of primes so the candidate array stays within a
// few hundred megabytes.
const MaxCount = 10_000_000

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatProm = "prom"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// =============================================================================
// Shared Validator Instance
// =============================================================================

// configValidate is the validator instance for Config.
var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Config is the run configuration.
//
// # Fields
//
//   - Count: number of primes to compute (MinCount..MaxCount).
//   - PrintInterval: verbose sieve progress is reported for every
//     PrintInterval-th sieving prime.
//   - Metrics, Verbose, Debug: independent output gates. None of them
//     changes the computed primes.
//   - Format: text, json, yaml or prom.
//   - NoColor: disables terminal styling.
//
// # Validation
//
// Uses go-playground/validator struct tags; see Validate. The Count bounds
// must equal sieve.MinCount and MaxCount; TestValidate_CountLimits pins them.
type Config struct {
	Count         int    `validate:"gte=5,lte=10000000"`
	PrintInterval int    `validate:"gte=1"`
	Metrics       bool   `validate:"-"`
	Verbose       bool   `validate:"-"`
	Debug         bool   `validate:"-"`
	Format        string `validate:"oneof=text json yaml prom"`
	NoColor       bool   `validate:"-"`
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Count:         10,
		PrintInterval: 10,
		Format:        FormatText,
	}
}

// Validate checks the configuration.
//
// # Outputs
//
//   - error: nil if valid. Otherwise wraps ErrInvalidConfig; a Count below
//     sieve.MinCount additionally wraps sieve.ErrCountTooSmall.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Field() == "Count" && fe.Tag() == "gte" {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, sieve.ErrCountTooSmall)
		}
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", fieldFlag(fe.Field()), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s (got %v)", fieldFlag(fe.Field()), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %q)", fieldFlag(fe.Field()), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fieldFlag(fe.Field()), fe.Tag())
	}
}

// fieldFlag maps a struct field to the flag that sets it.
func fieldFlag(field string) string {
	switch field {
	case "Count":
		return "-n"
	case "PrintInterval":
		return "-p"
	case "Format":
		return "--output"
	default:
		return field
	}
}

// LogLevel returns the trace level selected by the verbosity flags.
func (c Config) LogLevel() logging.Level {
	return logging.LevelFromFlags(c.Verbose, c.Debug)
}

// ShowListing reports whether the full prime listing is printed.
func (c Config) ShowListing() bool {
	return c.Verbose || c.Debug
}

// ShowMetrics reports whether the metrics table is printed. Verbose and
// debug imply it.
func (c Config) ShowMetrics() bool {
	return c.Metrics || c.Verbose || c.Debug
}
