// SPDX-License-Identifier: MPL-2.0

package langpack

import "path/filepath"

const (
	// SubsetSite is the frontend language subset.
	SubsetSite SubsetKind = "site"
	// SubsetAdmin is the administrator language subset.
	SubsetAdmin SubsetKind = "admin"
	// SubsetAPI is the web services language subset. Legitimately absent
	// for languages predating the api application.
	SubsetAPI SubsetKind = "api"
)

type (
	// SubsetKind names one of the three functional subsets bundled into a
	// language package.
	SubsetKind string

	// SubPackageSpec describes one inner archive to assemble: which subset
	// it is, where its source files live, and what the inner archive is
	// called. Specs are derived deterministically from the language code
	// and never mutated.
	SubPackageSpec struct {
		Kind SubsetKind
		// Language is the language code the spec was derived from.
		Language string
		// SourceDir is the directory whose files are flattened into the
		// inner archive. May legitimately not exist.
		SourceDir string
		// ArchiveName is the base name of the inner archive, e.g.
		// "site_de-DE.zip".
		ArchiveName string
	}
)

// Subsets derives the three sub-package specs for a language under
// sourceRoot. The on-disk layout mirrors the installed application:
//
//	{sourceRoot}/{code}/language/{code}                    (site)
//	{sourceRoot}/{code}/administrator/language/{code}      (admin)
//	{sourceRoot}/{code}/api/language/{code}                (api)
func Subsets(sourceRoot, code string) []SubPackageSpec {
	langDir := filepath.Join(sourceRoot, code)
	return []SubPackageSpec{
		{
			Kind:        SubsetSite,
			Language:    code,
			SourceDir:   filepath.Join(langDir, "language", code),
			ArchiveName: "site_" + code + ".zip",
		},
		{
			Kind:        SubsetAdmin,
			Language:    code,
			SourceDir:   filepath.Join(langDir, "administrator", "language", code),
			ArchiveName: "admin_" + code + ".zip",
		},
		{
			Kind:        SubsetAPI,
			Language:    code,
			SourceDir:   filepath.Join(langDir, "api", "language", code),
			ArchiveName: "api_" + code + ".zip",
		},
	}
}

// ManifestName returns the base name of a language's top-level manifest.
func ManifestName(code string) string {
	return "pkg_" + code + ".xml"
}

// FinalArchiveName returns the base name of the final installable archive
// for a language at a given package version.
func FinalArchiveName(code, version string) string {
	return code + "_pkg_" + version + ".zip"
}
