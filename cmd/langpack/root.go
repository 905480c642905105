// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for langpack.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"langpack-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "langpack",
		Short: "Build installable language packages from a translation tree",
		Long: TitleStyle.Render("langpack") + SubtitleStyle.Render(" - language package builder") + `

langpack scans a translation source tree organized by language code and
produces one installable ZIP per language. Each package bundles the site,
administrator and api language subsets as inner archives, together with a
manifest stamped with the package version and creation date.

` + SubtitleStyle.Render("Examples:") + `
  langpack build --source ./translations --package-version 5.4.0.1
  langpack build --source ./translations --package-version 5.4.0.1 --language de
  langpack languages --source ./translations`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(languagesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// newLogger builds the logger handed to the packaging pipeline. Verbosity
// is an explicit argument, not ambient state read by the pipeline.
func newLogger(verboseMode bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verboseMode {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
