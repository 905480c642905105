// SPDX-License-Identifier: MPL-2.0

// Package langpack builds installable language packages from a translation
// source tree.
//
// A source tree holds one directory per language code. Each language
// contributes three functional subsets (site, administrator, api) plus a
// top-level manifest pkg_{code}.xml. The build flattens every subset into
// its own inner ZIP, stamps version and creation date into the XML
// manifests, and composes one final {code}_pkg_{version}.zip per language.
//
// Languages are processed strictly one at a time. A failure or a missing
// manifest is recorded against that language and never stops the run; only
// configuration-level problems abort a build.
package langpack
