// Package render turns a determinant.Result into text, markdown or JSON for
// the command line.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/katalvlaran/detrace/determinant"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Format selects the output representation.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for anything but text, markdown or json.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Banner colors.
const (
	colorValue = "#22c55e"
	colorWarn  = "#f97316"
)

// ParseFormat maps a case-insensitive name to a Format. "md" is accepted for
// markdown and an empty string means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Verification compares a result against an independent LU reference.
type Verification struct {
	Reference float64 `json:"reference"`
	Agrees    bool    `json:"agrees"`
}

// Report is everything printed for one computation.
type Report struct {
	determinant.Result
	Verification *Verification `json:"verification,omitempty"`
}

// Options control a single Write.
type Options struct {
	Format Format
	// Color enables ANSI styling. Use IsTerminal to decide.
	Color bool
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Write renders rep to w in the requested format.
func Write(w io.Writer, rep Report, opts Options) error {
	switch opts.Format {
	case Text, "":
		_, err := io.WriteString(w, textReport(rep, opts.Color))
		return err
	case Markdown:
		out, err := markdownReport(rep, opts.Color)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// Title is the human name of a method; the legacy empty method is "Determinant".
func Title(m determinant.Method) string {
	switch m {
	case determinant.Sarrus:
		return "Sarrus' rule"
	case determinant.Laplace:
		return "Laplace expansion"
	case determinant.Chio:
		return "Chiò condensation"
	}

	return "Determinant"
}

// Value renders a determinant in its shortest decimal form.
func Value(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func textReport(rep Report, color bool) string {
	p := termenv.Ascii
	if color {
		p = termenv.ANSI256
	}

	var b strings.Builder
	for _, line := range rep.Steps {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(rep.Steps) > 0 {
		b.WriteByte('\n')
	}

	banner := fmt.Sprintf("%s: %s", Title(rep.Method), Value(rep.Determinant))
	if rep.Order > 0 {
		banner += fmt.Sprintf(" (%d×%d)", rep.Order, rep.Order)
	}
	b.WriteString(p.String(banner).Foreground(p.Color(colorValue)).Bold().String())
	b.WriteByte('\n')

	if v := rep.Verification; v != nil {
		line := "LU reference: " + Value(v.Reference)
		c := colorValue
		if v.Agrees {
			line += " (agrees)"
		} else {
			line += " (differs)"
			c = colorWarn
		}
		b.WriteString(p.String(line).Foreground(p.Color(c)).String())
		b.WriteByte('\n')
	}

	return b.String()
}

// markdownSource is the document handed to glamour.
func markdownSource(rep Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", Title(rep.Method))
	if len(rep.Steps) > 0 {
		b.WriteString("```text\n")
		for _, line := range rep.Steps {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("```\n\n")
	}
	fmt.Fprintf(&b, "**Determinant:** `%s`\n", Value(rep.Determinant))
	if v := rep.Verification; v != nil {
		verdict := "agrees"
		if !v.Agrees {
			verdict = "differs"
		}
		fmt.Fprintf(&b, "\n**LU reference:** `%s` (%s)\n", Value(v.Reference), verdict)
	}

	return b.String()
}

func markdownReport(rep Report, color bool) (string, error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if color {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}

	return r.Render(markdownSource(rep))
}
