// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"langpack-cli/internal/config"
	"langpack-cli/internal/issue"
	"langpack-cli/pkg/langpack"

	"github.com/spf13/cobra"
)

var (
	// buildSource is the translation source root
	buildSource string
	// buildOutput is the destination for final archives
	buildOutput string
	// buildLanguage filters which languages are built
	buildLanguage string
	// buildVersion is the package version stamped into manifests
	buildVersion string
	// buildDate overrides the manifest creation date
	buildDate string
	// buildPlatform selects a platform-tagged subtree of the source root
	buildPlatform string

	// buildCmd runs the packaging pipeline
	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build language packages",
		Long: `Build one installable package per selected language.

Each package is assembled in a scoped working directory: the site, admin
and api subsets are flattened into inner ZIPs, the manifest is stamped
with the package version and creation date, and the result is composed
into {output}/{code}_pkg_{version}.zip.

A language with no manifest is skipped and a language whose archives
cannot be written is recorded as failed; neither stops the remaining
languages. The command only exits nonzero on configuration errors.

Examples:
  langpack build --source ./translations --package-version 5.4.0.1
  langpack build -s ./translations -p 5.4.0.1 --language de-DE
  langpack build -s ./translations -p 5.4.0.1 --date 2024-01-01 --platform v5`,
		RunE: runBuild,
	}
)

func init() {
	registerBuildFlags(buildCmd)
}

// registerBuildFlags binds the build flags to a command. Split out so tests
// can register the same flags on a fresh command without shared Changed
// state.
func registerBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildSource, "source", "s", "", "translation source root (one directory per language code)")
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory for final archives (default: dist)")
	cmd.Flags().StringVarP(&buildLanguage, "language", "l", "", "language code, code prefix, or 'all' (default: all)")
	cmd.Flags().StringVarP(&buildVersion, "package-version", "p", "", "package version stamped into manifests (required)")
	cmd.Flags().StringVar(&buildDate, "date", "", "creation date stamped into manifests (default: today)")
	cmd.Flags().StringVar(&buildPlatform, "platform", "", "platform version tag joined onto the source root")
}

// resolveBuildConfig layers command-line flags over the loaded config.
func resolveBuildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "load configuration")
	}

	if cmd.Flags().Changed("source") {
		cfg.SourceRoot = buildSource
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputRoot = buildOutput
	}
	if cmd.Flags().Changed("language") {
		cfg.LanguageFilter = buildLanguage
	}
	if cmd.Flags().Changed("package-version") {
		cfg.PackageVersion = buildVersion
	}
	if cmd.Flags().Changed("date") {
		cfg.CreationDate = buildDate
	}
	if cmd.Flags().Changed("platform") {
		cfg.PlatformVersionTag = buildPlatform
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		ctx := issue.NewErrorContext().
			WithOperation("validate build configuration").
			Wrap(err)
		if errors.Is(err, config.ErrMissingPackageVersion) {
			ctx.WithSuggestion("Pass the package version with --package-version (or LANGPACK_PACKAGE_VERSION)")
		}
		if errors.Is(err, config.ErrMissingSourceRoot) {
			ctx.WithSuggestion("Point --source (or LANGPACK_SOURCE) at the translation tree")
		}
		return nil, ctx.BuildError()
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveBuildConfig(cmd)
	if err != nil {
		return fmt.Errorf("%s", formatErrorForDisplay(err, verbose))
	}

	runner := langpack.NewRunner(cfg, newLogger(cfg.Verbose))
	summary, err := runner.Run()
	if err != nil {
		if errors.Is(err, langpack.ErrNoLanguagesMatched) {
			return fmt.Errorf("%s", formatErrorForDisplay(issue.NewErrorContext().
				WithOperation("select languages").
				WithResource(cfg.EffectiveSourceRoot()).
				WithSuggestion("Check the --language filter against the source tree").
				Wrap(err).
				BuildError(), verbose))
		}
		return err
	}

	printSummary(summary)
	// Per-language failures are reported above but do not make the run
	// itself fail; only configuration errors exit nonzero.
	return nil
}

// printSummary renders the per-language outcomes and the aggregate line.
func printSummary(summary *langpack.BuildSummary) {
	fmt.Println()
	fmt.Println(TitleStyle.Render("Build summary"))
	for _, res := range summary.Results {
		switch res.Outcome {
		case langpack.OutcomeSuccess:
			fmt.Printf("  %s %s → %s (%s)\n",
				SuccessStyle.Render("✓"),
				res.Language,
				PathStyle.Render(res.ArchivePath),
				formatFileSize(res.ArchiveSize))
		case langpack.OutcomeSkipped:
			fmt.Printf("  %s %s skipped: %s\n",
				WarningStyle.Render("-"),
				res.Language,
				res.Reason)
		default:
			fmt.Printf("  %s %s failed: %s\n",
				ErrorStyle.Render("✗"),
				res.Language,
				res.Err)
		}
	}
	fmt.Println()
	fmt.Printf("%s succeeded, %s failed or skipped, output in %s\n",
		SuccessStyle.Render(fmt.Sprintf("%d", summary.Succeeded)),
		WarningStyle.Render(fmt.Sprintf("%d", summary.Failed)),
		PathStyle.Render(summary.OutputRoot))
}

// formatFileSize renders a byte count in a human-friendly unit.
func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMG"[exp])
}
