// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides the verbosity-gated trace logger used by primesieve.
//
// The logger is built on Go's standard library slog package. It replaces
// ad-hoc "print if flag" calls: every trace point calls the logger at a fixed
// level, and the configured minimum level decides what reaches the output.
//
// # Verbosity Mapping
//
// The CLI verbosity flags map onto levels with LevelFromFlags:
//
//   - debug:   LevelDebug (raw array dump, per-candidate sieve trace)
//   - verbose: LevelInfo  (stage progress, sieve progress lines)
//   - neither: LevelWarn  (trace suppressed)
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelFromFlags(cfg.Verbose, cfg.Debug),
//	    Output: os.Stdout,
//	    Plain:  true,
//	})
//	logger.Info("Sieving...", "bound", bound)
//
// # Formats
//
// Three formats are supported:
//
//   - Plain: "msg key=value ..." with no timestamp or level, for trace
//     lines that are part of the program's normal output
//   - Text:  slog's key=value text handler, for trace on stderr next to
//     yaml or prom output
//   - JSON:  slog's JSON handler, for trace on stderr next to json output
//
// # Thread Safety
//
// Logger is safe for concurrent use. The plain handler serializes writes
// with a mutex; the slog handlers are thread-safe on their own.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity levels.
//
// Levels follow the slog convention and are ordered by severity:
// Debug < Info < Warn < Error
//
// Setting a minimum level filters out all logs below that level.
type Level int

const (
	// LevelDebug is for maximum-verbosity traces.
	// Example: "pcandi[4] = 0", "strike prime=3 multiples=[6 9 12]"
	LevelDebug Level = iota

	// LevelInfo is for progress messages.
	// Example: "Initializing...", "Sieving..."
	LevelInfo

	// LevelWarn is for unexpected but recoverable situations.
	LevelWarn

	// LevelError is for failures reported to the user.
	LevelError
)

// String returns the human-readable name of the level.
//
// Returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts our Level to slog.Level.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromFlags derives the minimum log level from the CLI verbosity flags.
//
// Debug wins over verbose. With neither set, trace output is suppressed.
//
// Parameters:
//   - verbose: the -v flag
//   - debug: the -d flag
//
// Returns:
//   - Level: LevelDebug, LevelInfo or LevelWarn
func LevelFromFlags(verbose, debug bool) Level {
	switch {
	case debug:
		return LevelDebug
	case verbose:
		return LevelInfo
	default:
		return LevelWarn
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures the Logger behavior.
//
// A zero-value Config creates a logger that writes every message to stderr
// in slog text format.
type Config struct {
	// Level sets the minimum log level.
	//
	// Messages below this level are discarded.
	// Default: LevelDebug (the zero value); use LevelFromFlags for CLI use.
	Level Level

	// Output is the destination writer.
	//
	// Default: os.Stderr
	Output io.Writer

	// Plain writes bare "msg key=value" lines without time or level.
	//
	// Takes precedence over JSON.
	Plain bool

	// JSON enables slog's JSON output format.
	JSON bool

	// Service identifies the component generating logs.
	//
	// When set, it is attached as the "service" attribute. Plain output
	// omits it.
	Service string
}

// =============================================================================
// Logger
// =============================================================================

// Logger provides leveled, structured trace output.
type Logger struct {
	// slog is the underlying structured logger
	slog *slog.Logger
}

// New creates a new Logger with the given configuration.
//
// Parameters:
//   - config: Logger configuration (see Config for options)
//
// Returns:
//   - *Logger: Configured logger ready for use
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	var handler slog.Handler
	switch {
	case config.Plain:
		handler = newPlainHandler(out, config.Level.toSlogLevel())
	case config.JSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	if config.Service != "" && !config.Plain {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", config.Service),
		})
	}

	return &Logger{slog: slog.New(handler)}
}

// Discard returns a logger that drops every message.
//
// Useful for tests and for callers that need a non-nil logger.
func Discard() *Logger {
	return New(Config{Level: LevelError, Output: io.Discard, Plain: true})
}

// Debug logs a message at Debug level.
//
// Parameters:
//   - msg: The log message
//   - args: Key-value pairs of attributes (e.g., "index", 4)
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs a message at Info level.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Enabled reports whether messages at level would be written.
//
// Hot loops use this to avoid assembling trace data that would be dropped:
//
//	if logger.Enabled(logging.LevelDebug) {
//	    struck = append(struck, mult)
//	}
func (l *Logger) Enabled(level Level) bool {
	return l.slog.Enabled(context.Background(), level.toSlogLevel())
}

// =============================================================================
// Plain Handler (Internal)
// =============================================================================

// plainHandler writes "msg key=value ..." lines with no time or level.
type plainHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
	group string
}

func newPlainHandler(w io.Writer, level slog.Level) *plainHandler {
	return &plainHandler{mu: &sync.Mutex{}, w: w, level: level}
}

// Enabled returns true if the level meets the configured minimum.
func (h *plainHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes the record.
func (h *plainHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *plainHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a new handler that prefixes keys with name.
func (h *plainHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		next.group = h.group + "." + name
	} else {
		next.group = name
	}
	return &next
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
}
