// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilterAll is the language filter value that selects every language
	// directory under the source root.
	FilterAll = "all"
)

var (
	// ErrMissingPackageVersion is returned when no package version was provided.
	// The version has no default; every build must state one explicitly.
	ErrMissingPackageVersion = errors.New("missing package version")
	// ErrMissingSourceRoot is returned when the source root is empty or absent.
	ErrMissingSourceRoot = errors.New("missing source root")
	// ErrMissingOutputRoot is returned when the output root is empty.
	ErrMissingOutputRoot = errors.New("missing output root")
	// ErrInvalidConfig is the sentinel wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config is the resolved configuration consumed by the packaging
	// pipeline. It is assembled by Load from defaults, an optional .env
	// file, LANGPACK_* environment variables, and command-line flags; the
	// pipeline itself never consults any of those sources.
	Config struct {
		// SourceRoot is the directory holding one subdirectory per
		// language code.
		SourceRoot string

		// OutputRoot is the directory receiving the final per-language
		// archives. Created on demand before the first build.
		OutputRoot string

		// LanguageFilter selects which language directories to build:
		// FilterAll, an exact language code, or a code prefix.
		LanguageFilter string

		// PackageVersion is stamped into every manifest and into the
		// final archive name. Required, no default.
		PackageVersion string

		// CreationDate is stamped into every manifest. Defaults to the
		// current date in YYYY-MM-DD form.
		CreationDate string

		// PlatformVersionTag, when set, is joined onto SourceRoot to
		// select a platform-specific translation tree. It affects no
		// other path.
		PlatformVersionTag string

		// Verbose enables debug-level logging. Carried here explicitly
		// so no component reads an ambient global.
		Verbose bool
	}

	// InvalidConfigError is returned when a Config fails validation.
	// It wraps ErrInvalidConfig for errors.Is compatibility and collects
	// field-level errors.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel plus all field errors for errors.Is.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks that the config can drive a build. A missing source root
// directory is a validation failure, not a per-language condition: no work
// may start without it.
func (c *Config) Validate() error {
	var fieldErrors []error

	if strings.TrimSpace(c.PackageVersion) == "" {
		fieldErrors = append(fieldErrors, ErrMissingPackageVersion)
	}
	if strings.TrimSpace(c.OutputRoot) == "" {
		fieldErrors = append(fieldErrors, ErrMissingOutputRoot)
	}
	if strings.TrimSpace(c.SourceRoot) == "" {
		fieldErrors = append(fieldErrors, ErrMissingSourceRoot)
	} else {
		root := c.EffectiveSourceRoot()
		info, err := os.Stat(root)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, fmt.Errorf("%w: %s: %v", ErrMissingSourceRoot, root, err))
		case !info.IsDir():
			fieldErrors = append(fieldErrors, fmt.Errorf("%w: %s is not a directory", ErrMissingSourceRoot, root))
		}
	}

	if len(fieldErrors) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrors}
	}
	return nil
}

// EffectiveSourceRoot returns the source root with the platform version tag
// joined on when one is set.
func (c *Config) EffectiveSourceRoot() string {
	if c.PlatformVersionTag == "" {
		return c.SourceRoot
	}
	return filepath.Join(c.SourceRoot, c.PlatformVersionTag)
}
