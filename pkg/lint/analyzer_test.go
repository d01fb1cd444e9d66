package lint_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"digital.vasic.assertthat/pkg/lint"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(
		t, analysistest.TestData(), lint.Analyzer, "a",
	)
}
