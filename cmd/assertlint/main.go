// Command assertlint validates assertion phrases statically, so
// a malformed phrase fails the build instead of a test run.
//
//	assertlint ./...
//
// exits 0 when every phrase is valid, 1 when invalid phrases
// were found, and 2 on usage or package loading errors.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"digital.vasic.assertthat/pkg/lint"
	"digital.vasic.assertthat/pkg/logging"
	"digital.vasic.assertthat/pkg/report"
	"digital.vasic.assertthat/pkg/runner"
)

// errInvalidPhrases signals a completed run that found invalid
// phrases, mapped to exit code 1.
var errInvalidPhrases = errors.New("invalid assertion phrases found")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errInvalidPhrases) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath   string
		format       string
		pretty       bool
		noColor      bool
		verbose      bool
		checkDynamic bool
	)

	cmd := &cobra.Command{
		Use:   "assertlint [packages]",
		Short: "Check assertion phrases before tests run",
		Long: "assertlint scans Go packages for assertthat.That calls and " +
			"validates every constant phrase against the assertion grammar, " +
			"reporting malformed phrases and unknown properties with their " +
			"source positions.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewConsoleLogger(verbose)

			cfg, err := lint.LoadConfig(
				resolveConfigPath(configPath),
			)
			if err != nil {
				return err
			}
			if checkDynamic {
				cfg.CheckDynamic = true
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"./..."}
			}

			result, err := runner.New(cfg, logger).Run(patterns...)
			if err != nil {
				return err
			}

			for _, loadErr := range result.LoadErrors {
				logger.Error("package load error",
					logging.StringField("error", loadErr),
				)
			}
			if len(result.LoadErrors) > 0 {
				return fmt.Errorf(
					"%d package load errors",
					len(result.LoadErrors),
				)
			}

			summary := &report.Summary{
				GeneratedAt: time.Now(),
				Packages:    result.Packages,
				Files:       result.Files,
				Diagnostics: result.Diagnostics,
			}

			reporter, err := newReporter(format, pretty, noColor)
			if err != nil {
				return err
			}
			if err := reporter.WriteSummary(
				cmd.OutOrStdout(), summary,
			); err != nil {
				return err
			}

			if !summary.Clean() {
				return errInvalidPhrases
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to an .assertlint.yaml config file")
	cmd.Flags().StringVarP(&format, "format", "f", "console",
		"output format: console or json")
	cmd.Flags().BoolVar(&pretty, "pretty", false,
		"indent JSON output")
	cmd.Flags().BoolVar(&noColor, "no-color", false,
		"disable colored console output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	cmd.Flags().BoolVar(&checkDynamic, "check-dynamic", false,
		"report phrases that are not string literals")

	return cmd
}

// newReporter selects the output format.
func newReporter(
	format string,
	pretty bool,
	noColor bool,
) (report.Reporter, error) {
	switch format {
	case "console":
		return report.NewConsoleReporter(
			report.WithNoColor(noColor),
		), nil
	case "json":
		return report.NewJSONReporter(pretty), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// resolveConfigPath falls back to the default config file when
// present and no explicit path was given.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(lint.DefaultConfigFile); err == nil {
		return lint.DefaultConfigFile
	}
	return ""
}
