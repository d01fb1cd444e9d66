// Package runner loads Go packages and runs the assertion
// phrase checker across their source files, including tests.
package runner

import (
	"fmt"
	"time"

	"golang.org/x/tools/go/packages"

	"digital.vasic.assertthat/pkg/lint"
	"digital.vasic.assertthat/pkg/logging"
)

// loadMode requests everything the checker needs: names, file
// sets, and parsed syntax.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Result aggregates one checker run over a set of package
// patterns.
type Result struct {
	// Packages is the number of packages scanned.
	Packages int

	// Files is the number of distinct source files scanned.
	Files int

	// Diagnostics are the invalid phrases found.
	Diagnostics []lint.Diagnostic

	// LoadErrors are package loading failures, formatted for
	// display. Files that did load are still checked.
	LoadErrors []string

	// Duration is how long the run took.
	Duration time.Duration
}

// Runner checks assertion phrases across loaded packages.
type Runner struct {
	checker *lint.Checker
	logger  logging.Logger
}

// New creates a Runner for the given config.
func New(cfg lint.Config, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &Runner{
		checker: lint.NewChecker(cfg),
		logger:  logger,
	}
}

// Run loads the packages matching the given patterns (tests
// included) and checks every source file.
func (r *Runner) Run(patterns ...string) (*Result, error) {
	start := time.Now()

	pkgs, err := packages.Load(&packages.Config{
		Mode:  loadMode,
		Tests: true,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to load packages: %w", err,
		)
	}

	result := r.check(pkgs)
	result.Duration = time.Since(start)

	r.logger.Debug("scan complete",
		logging.IntField("packages", result.Packages),
		logging.IntField("files", result.Files),
		logging.IntField("invalid", len(result.Diagnostics)),
		logging.DurationField("took", result.Duration),
	)

	return result, nil
}

// check runs the checker over every distinct file of the loaded
// packages. With test variants enabled the same file can appear
// in several packages, so files are deduplicated by path.
func (r *Runner) check(pkgs []*packages.Package) *Result {
	result := &Result{}
	seen := make(map[string]bool)

	for _, pkg := range pkgs {
		r.logger.Debug("scanning package",
			logging.StringField("package", pkg.PkgPath),
		)

		for _, loadErr := range pkg.Errors {
			result.LoadErrors = append(
				result.LoadErrors, loadErr.Error(),
			)
		}

		scanned := false
		for _, file := range pkg.Syntax {
			path := pkg.Fset.Position(file.Pos()).Filename
			if seen[path] {
				continue
			}
			seen[path] = true
			scanned = true

			result.Files++
			result.Diagnostics = append(
				result.Diagnostics,
				r.checker.CheckFile(pkg.Fset, file)...,
			)
		}

		if scanned {
			result.Packages++
		}
	}

	return result
}
