// SPDX-License-Identifier: MPL-2.0

package langpack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"langpack-cli/pkg/archive"
	"langpack-cli/pkg/manifest"
)

// AssembleSubPackage builds one inner archive in destDir from the files
// under spec.SourceDir.
//
// Directory structure below the source dir is intentionally discarded:
// every file lands at the archive root under its base name, so same-named
// files in different subdirectories overwrite one another. That flat layout
// is the installed-file contract of the package consumer and must not be
// "fixed" here.
//
// A missing source directory is not an error: the result carries
// SourceMissing and a valid empty archive is still produced. Archive
// creation failures wrap archive.ErrCannotCreate; cleanup of destDir is the
// caller's job.
func AssembleSubPackage(spec SubPackageSpec, destDir, version, creationDate string) (*SubPackageResult, error) {
	res := &SubPackageResult{Kind: spec.Kind}

	w, err := archive.Create(filepath.Join(destDir, spec.ArchiveName))
	if err != nil {
		return nil, err
	}
	res.ArchivePath = w.Path()

	info, err := os.Stat(spec.SourceDir)
	if err != nil || !info.IsDir() {
		res.SourceMissing = true
		if err := w.Close(); err != nil {
			return nil, err
		}
		return res, nil
	}

	localiseFile := manifest.LocaliseFileName(spec.Language)

	walkErr := filepath.WalkDir(spec.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		name := filepath.Base(path)
		switch {
		case filepath.Ext(name) == ".xml":
			content = []byte(manifest.ApplyVersionAndDate(string(content), version, creationDate))
		case name == localiseFile:
			content = []byte(manifest.ApplyIdentifier(string(content), spec.Language))
		}

		if err := w.AddBytes(name, content); err != nil {
			return err
		}
		res.Entries++
		return nil
	})
	if walkErr != nil {
		// Best effort: the caller removes the whole working directory.
		_ = w.Close()
		return nil, fmt.Errorf("failed to assemble %s subset: %w", spec.Kind, walkErr)
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return res, nil
}
