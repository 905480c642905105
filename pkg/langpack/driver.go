// SPDX-License-Identifier: MPL-2.0

package langpack

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"langpack-cli/internal/config"

	"github.com/charmbracelet/log"
)

// ErrNoLanguagesMatched is returned when the language filter selects no
// directory under the source root. An empty match set is a fatal input
// error, not an empty-but-successful run.
var ErrNoLanguagesMatched = errors.New("no language directories matched the filter")

type (
	// Runner drives a full build: discover language directories, build
	// each one sequentially, and aggregate the outcomes.
	Runner struct {
		cfg *config.Config
		log *log.Logger
	}

	// BuildSummary aggregates the outcomes of one run. Read-only once the
	// run completes.
	BuildSummary struct {
		// OutputRoot is where final archives were written.
		OutputRoot string
		// Succeeded counts languages that produced a final archive.
		Succeeded int
		// Failed counts languages that were skipped or failed.
		Failed int
		// Results holds one entry per selected language, in build order.
		Results []*Result
	}
)

// NewRunner creates a Runner for a validated config. The logger is the
// runner's only output channel besides the returned summary.
func NewRunner(cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, log: logger}
}

// MatchesFilter reports whether a language directory name is selected by a
// filter: config.FilterAll selects everything, otherwise the name must
// start with the filter (an exact code is its own prefix, so filter "de"
// selects both "de" and "de-DE").
func MatchesFilter(name, filter string) bool {
	if filter == config.FilterAll {
		return true
	}
	return strings.HasPrefix(name, filter)
}

// DiscoverLanguages lists the immediate subdirectories of the source root
// selected by the configured language filter, in directory order.
func (r *Runner) DiscoverLanguages() ([]string, error) {
	root := r.cfg.EffectiveSourceRoot()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read source root %s: %w", root, err)
	}

	var langs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if MatchesFilter(entry.Name(), r.cfg.LanguageFilter) {
			langs = append(langs, entry.Name())
		}
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("%w: %q under %s", ErrNoLanguagesMatched, r.cfg.LanguageFilter, root)
	}
	return langs, nil
}

// Run executes the whole build. The returned error covers fatal conditions
// only (unreadable source root, empty match set, uncreatable output root);
// per-language failures are recorded in the summary and logged as they
// happen, and the run always continues to the next language.
func (r *Runner) Run() (*BuildSummary, error) {
	langs, err := r.DiscoverLanguages()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.cfg.OutputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output root %s: %w", r.cfg.OutputRoot, err)
	}

	summary := &BuildSummary{OutputRoot: r.cfg.OutputRoot}
	r.log.Info("starting build",
		"languages", len(langs),
		"version", r.cfg.PackageVersion,
		"date", r.cfg.CreationDate)

	for _, code := range langs {
		res := r.buildLanguage(code)
		summary.Results = append(summary.Results, res)
		if res.Built() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	r.log.Info("build complete",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"output", summary.OutputRoot)
	return summary, nil
}
