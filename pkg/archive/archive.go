// SPDX-License-Identifier: MPL-2.0

// Package archive provides a thin writer around ZIP archive creation.
//
// The writer covers the whole archive surface the packaging pipeline needs:
// create-or-truncate an archive on disk, add entries from in-memory bytes or
// from files, and close. Compression uses the default Deflate method; no
// further compression policy exists.
//
// Entry names are used verbatim. Callers that want a flat archive pass base
// names; callers that want nested entries pass forward-slash paths.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
)

// ErrCannotCreate is the sentinel wrapped by every archive creation failure.
// Callers use errors.Is to distinguish "could not create the archive file"
// from entry-level write errors.
var ErrCannotCreate = errors.New("cannot create archive")

// Writer writes entries into a single ZIP archive on disk.
// A Writer is single-use: after Close it cannot accept further entries.
type Writer struct {
	path string
	file *os.File
	zw   *zip.Writer
}

// Create opens a new archive at path, truncating any existing file.
// Failures wrap ErrCannotCreate.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotCreate, path, err)
	}
	return &Writer{
		path: path,
		file: f,
		zw:   zip.NewWriter(f),
	}, nil
}

// Path returns the filesystem path of the archive being written.
func (w *Writer) Path() string {
	return w.path
}

// AddBytes writes content as a new entry named entryName.
func (w *Writer) AddBytes(entryName string, content []byte) error {
	header := &zip.FileHeader{
		Name:   entryName,
		Method: zip.Deflate,
	}
	entry, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create entry %q: %w", entryName, err)
	}
	if _, err := entry.Write(content); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", entryName, err)
	}
	return nil
}

// AddFile reads sourcePath in full and writes it as a new entry named
// entryName, preserving the source file's mode bits in the entry header.
func (w *Writer) AddFile(entryName, sourcePath string) error {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}
	info, err := os.Stat(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", sourcePath, err)
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", sourcePath, err)
	}
	header.Name = entryName
	header.Method = zip.Deflate

	entry, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create entry %q: %w", entryName, err)
	}
	if _, err := entry.Write(content); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", entryName, err)
	}
	return nil
}

// Close finalizes the archive and closes the underlying file.
// An archive that received zero entries still closes to a valid, empty ZIP.
func (w *Writer) Close() error {
	zerr := w.zw.Close()
	ferr := w.file.Close()
	if zerr != nil {
		return fmt.Errorf("failed to finalize archive %s: %w", w.path, zerr)
	}
	if ferr != nil {
		return fmt.Errorf("failed to close archive %s: %w", w.path, ferr)
	}
	return nil
}
