package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ConsoleReporter writes human-readable diagnostics, one per
// line in file:line:col form, followed by a summary line.
type ConsoleReporter struct {
	noColor bool
}

// ConsoleOption configures a ConsoleReporter.
type ConsoleOption func(*ConsoleReporter)

// WithNoColor disables colored output.
func WithNoColor(noColor bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.noColor = noColor
	}
}

// NewConsoleReporter creates a console reporter.
func NewConsoleReporter(opts ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

// WriteSummary writes every diagnostic and a closing summary
// line.
func (r *ConsoleReporter) WriteSummary(
	w io.Writer,
	s *Summary,
) error {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	for _, d := range s.Diagnostics {
		if _, err := fmt.Fprintf(
			w, "%s %s:%d:%d: %s\n",
			red("✗"), d.File, d.Line, d.Column,
			d.Message,
		); err != nil {
			return err
		}
		if d.Phrase != "" {
			if _, err := fmt.Fprintf(
				w, "  %s\n", gray(fmt.Sprintf("phrase: %q", d.Phrase)),
			); err != nil {
				return err
			}
		}
	}

	status := green("ok")
	if !s.Clean() {
		status = red(fmt.Sprintf(
			"%d invalid", len(s.Diagnostics),
		))
	}

	_, err := fmt.Fprintf(
		w, "%s %s (%d packages, %d files)\n",
		bold("assertlint:"), status, s.Packages, s.Files,
	)
	return err
}
