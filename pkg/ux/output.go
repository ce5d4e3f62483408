// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the primesieve CLI.
package ux

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Aleutian color palette - deep ocean teals and arctic waters
var (
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Primary teal - headings
	ColorError       = lipgloss.Color("#E74C3C") // Red for errors
)

// Styles holds the lipgloss styles bound to one renderer.
//
// Tabs pass through unchanged: table headings and rows share the same
// tab-separated layout.
type Styles struct {
	Bold    lipgloss.Style
	Heading lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Bold:    base.Bold(true),
		Heading: base.Bold(true).Foreground(ColorTealPrimary),
		Error:   base.Bold(true).Foreground(ColorError),
	}
}

// Printer writes styled text to a single destination.
//
// Styles are rendered for the destination's capabilities; with color
// disabled every style renders as plain text.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter returns a Printer for w.
//
// # Inputs
//
//   - w: destination writer.
//   - color: false forces plain output regardless of the terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, styles: newStyles(r)}
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes a line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Bold renders s in bold.
func (p *Printer) Bold(s string) string {
	return p.styles.Bold.Render(s)
}

// Heading renders a table or section heading.
func (p *Printer) Heading(s string) string {
	return p.styles.Heading.Render(s)
}

// Error prints an error line in the "**Error: ..." form.
func (p *Printer) Error(text string) {
	fmt.Fprintf(p.w, "\n%s %s\n", p.styles.Error.Render("**Error:"), text)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
