// Package ui writes human-facing console output: the banner, installation
// steps, section headings and catalog rows. Colour is used only when the
// writer supports it.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/devagents/internal/logging"
)

// Symbols used for step lines.
const (
	SymbolPending = "•"
	SymbolSuccess = "✓"
	SymbolFailure = "✗"
	SymbolWarning = "!"
)

// Printer writes styled lines to an output.
type Printer struct {
	out io.Writer

	title   *color.Color
	dim     *color.Color
	success *color.Color
	failure *color.Color
	warning *color.Color
	heading *color.Color
	name    *color.Color
}

// New creates a Printer for out. Colour is enabled when out is a terminal and
// NO_COLOR is unset.
func New(out io.Writer) *Printer {
	return NewWithColor(out, logging.SupportsColor(out))
}

// NewWithColor creates a Printer with colour forced on or off.
func NewWithColor(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.FgHiBlack),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
		heading: color.New(color.Bold),
		name:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.title, p.dim, p.success, p.failure, p.warning, p.heading, p.name} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Banner prints a boxed title with an optional subtitle, followed by a
// blank line.
func (p *Printer) Banner(title, subtitle string) {
	width := max(len(title), len(subtitle)) + 4
	border := strings.Repeat("─", width)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.title.Sprint("  "+border))
	fmt.Fprintln(p.out, p.title.Sprintf("    %s", title))
	if subtitle != "" {
		fmt.Fprintln(p.out, p.dim.Sprintf("    %s", subtitle))
	}
	fmt.Fprintln(p.out, p.title.Sprint("  "+border))
	fmt.Fprintln(p.out)
}

// Start prints a pending step.
func (p *Printer) Start(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.dim.Sprint(SymbolPending), p.dim.Sprint(msg))
}

// Succeed prints a completed step.
func (p *Printer) Succeed(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.success.Sprint(SymbolSuccess), msg)
}

// Fail prints a failed step.
func (p *Printer) Fail(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.failure.Sprint(SymbolFailure), p.failure.Sprint(msg))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.warning.Sprint(SymbolWarning), p.warning.Sprint(msg))
}

// Println prints a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf prints formatted plain text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Dim prints a de-emphasized line.
func (p *Printer) Dim(msg string) {
	fmt.Fprintln(p.out, p.dim.Sprint(msg))
}

// Heading prints a bold section heading with an optional dimmed suffix.
func (p *Printer) Heading(text, suffix string) {
	if suffix == "" {
		fmt.Fprintln(p.out, p.heading.Sprint(text))
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.heading.Sprint(text), p.dim.Sprint(suffix))
}

// Item prints an indented catalog row: a highlighted name padded to width,
// then a description.
func (p *Printer) Item(name string, width int, description string) {
	pad := ""
	if n := width - len(name); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(p.out, "  %s%s  %s\n", p.name.Sprint(name), pad, description)
}

// Code prints an indented command the user is expected to run.
func (p *Printer) Code(cmd string) {
	fmt.Fprintf(p.out, "  %s\n", p.name.Sprint(cmd))
}

// Error prints err in red, followed by a dimmed suggestion when present.
func (p *Printer) Error(err error, suggestion string) {
	fmt.Fprintf(p.out, "%s %s\n", p.failure.Sprint("Error:"), err)
	if suggestion != "" {
		fmt.Fprintln(p.out, p.dim.Sprint("Suggestion: "+suggestion))
	}
}
