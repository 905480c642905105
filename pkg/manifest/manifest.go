// SPDX-License-Identifier: MPL-2.0

// Package manifest stamps build metadata into language package manifests.
//
// Manifests are treated as opaque text, never parsed as XML. The install
// consumer depends on every byte outside the placeholders surviving the
// build unchanged, so substitution is literal: the empty elements
// <version/> and <creationDate/> are the only recognized placeholders, and
// each is replaced at most once.
//
// The package also derives the per-language localise class name used inside
// the {code}.localise.php helper shipped with each sub-package.
package manifest

import "strings"

const (
	versionPlaceholder      = "<version/>"
	creationDatePlaceholder = "<creationDate/>"

	// DefaultLocaliseClass is the class token shipped in localise.php
	// templates, rewritten per language at build time.
	DefaultLocaliseClass = "En_GBLocalise"

	// localiseClassSuffix terminates every derived localise class name.
	localiseClassSuffix = "Localise"
)

// ApplyVersionAndDate replaces the <version/> and <creationDate/>
// placeholders with populated elements. A document lacking a placeholder is
// returned with that substitution skipped; nothing else in the document is
// touched. Replacing at most one occurrence makes a second pass over already
// stamped text a no-op.
func ApplyVersionAndDate(text, version, creationDate string) string {
	text = strings.Replace(text, versionPlaceholder, "<version>"+version+"</version>", 1)
	text = strings.Replace(text, creationDatePlaceholder, "<creationDate>"+creationDate+"</creationDate>", 1)
	return text
}

// ApplyIdentifier rewrites the default localise class token to the class
// name derived from languageCode. Text without the token passes through
// unchanged.
func ApplyIdentifier(text, languageCode string) string {
	return strings.Replace(text, DefaultLocaliseClass, LocaliseClass(languageCode), 1)
}

// LocaliseClass derives the localise helper class name for a language code:
// hyphens become underscores, the leading character is upper-cased, and the
// fixed suffix is appended. "ms-MY" yields "Ms_MYLocalise".
func LocaliseClass(languageCode string) string {
	name := strings.ReplaceAll(languageCode, "-", "_")
	if name == "" {
		return localiseClassSuffix
	}
	return strings.ToUpper(name[:1]) + name[1:] + localiseClassSuffix
}

// LocaliseFileName returns the base name of the identifier-bearing file for
// a language. Only a file with exactly this base name receives the
// ApplyIdentifier transform during assembly.
func LocaliseFileName(languageCode string) string {
	return languageCode + ".localise.php"
}
