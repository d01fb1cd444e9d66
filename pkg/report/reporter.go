// Package report formats the results of a lint run for the
// assertlint CLI, as colored console output or JSON.
package report

import (
	"io"
	"time"

	"digital.vasic.assertthat/pkg/lint"
)

// Summary aggregates the diagnostics of one lint run.
type Summary struct {
	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generated_at"`

	// Packages is the number of packages scanned.
	Packages int `json:"packages"`

	// Files is the number of source files scanned.
	Files int `json:"files"`

	// Diagnostics are the invalid phrases found, in source
	// order.
	Diagnostics []lint.Diagnostic `json:"diagnostics"`
}

// Clean returns true when the run found no invalid phrases.
func (s *Summary) Clean() bool {
	return len(s.Diagnostics) == 0
}

// Reporter defines the interface for writing a lint summary.
type Reporter interface {
	// WriteSummary writes the formatted summary to w.
	WriteSummary(w io.Writer, s *Summary) error
}
