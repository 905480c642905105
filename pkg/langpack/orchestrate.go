// SPDX-License-Identifier: MPL-2.0

package langpack

import (
	"fmt"
	"os"
	"path/filepath"

	"langpack-cli/pkg/archive"
	"langpack-cli/pkg/manifest"

	"github.com/google/uuid"
)

// buildLanguage runs one language's PackageJob to a terminal outcome:
//
//	validate manifest -> assemble subsets -> template manifest -> compose
//
// The job owns a uniquely named scoped working directory for its entire
// lifetime; the deferred removal releases it on every exit path, success or
// not. Per-language failures are recorded in the Result, never returned as
// errors, so one broken language cannot stop the run.
func (r *Runner) buildLanguage(code string) *Result {
	res := &Result{Language: code, JobID: uuid.NewString()}
	logger := r.log.With("language", code, "job", res.JobID)

	manifestPath := filepath.Join(r.cfg.EffectiveSourceRoot(), code, ManifestName(code))
	if _, err := os.Stat(manifestPath); err != nil {
		res.Outcome = OutcomeSkipped
		res.Reason = ReasonManifestNotFound
		res.Err = fmt.Errorf("manifest %s: %w", manifestPath, err)
		logger.Warn("skipping language, manifest not found", "manifest", manifestPath)
		return res
	}

	workDir, err := os.MkdirTemp("", "langpack-"+code+"-")
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Reason = ReasonWorkspaceFailed
		res.Err = fmt.Errorf("failed to create working directory: %w", err)
		return res
	}
	defer os.RemoveAll(workDir)
	logger.Debug("allocated working directory", "dir", workDir)

	for _, spec := range Subsets(r.cfg.EffectiveSourceRoot(), code) {
		sub, err := AssembleSubPackage(spec, workDir, r.cfg.PackageVersion, r.cfg.CreationDate)
		if err != nil {
			res.Outcome = OutcomeFailed
			res.Reason = ReasonArchiveCreationFailed
			res.Err = err
			logger.Error("sub-package assembly failed", "subset", spec.Kind, "err", err)
			return res
		}
		if sub.SourceMissing {
			logger.Warn("subset source directory missing, packaged empty archive",
				"subset", spec.Kind, "dir", spec.SourceDir)
		} else {
			logger.Debug("assembled sub-package", "subset", spec.Kind, "entries", sub.Entries)
		}
		res.SubPackages = append(res.SubPackages, *sub)
	}

	if err := r.stageManifest(manifestPath, workDir, code); err != nil {
		res.Outcome = OutcomeFailed
		res.Reason = ReasonWorkspaceFailed
		res.Err = err
		logger.Error("manifest templating failed", "err", err)
		return res
	}

	archivePath, size, err := composeFinalArchive(workDir, r.cfg.OutputRoot, code, r.cfg.PackageVersion)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Reason = ReasonArchiveCreationFailed
		res.Err = err
		logger.Error("final archive composition failed", "err", err)
		return res
	}

	res.Outcome = OutcomeSuccess
	res.ArchivePath = archivePath
	res.ArchiveSize = size
	logger.Info("built language package", "archive", archivePath, "bytes", size)
	return res
}

// stageManifest reads the top-level manifest, stamps version and creation
// date, and writes the result into the working directory under its final
// entry name.
func (r *Runner) stageManifest(manifestPath, workDir, code string) error {
	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}
	stamped := manifest.ApplyVersionAndDate(string(content), r.cfg.PackageVersion, r.cfg.CreationDate)
	dest := filepath.Join(workDir, ManifestName(code))
	if err := os.WriteFile(dest, []byte(stamped), 0o644); err != nil {
		return fmt.Errorf("failed to stage manifest: %w", err)
	}
	return nil
}

// composeFinalArchive writes {outputRoot}/{code}_pkg_{version}.zip from
// every regular file currently in workDir: the three inner archives plus
// the stamped manifest, all at the archive root. A partially written final
// archive is removed on failure so the output directory never holds a
// corrupt package.
func composeFinalArchive(workDir, outputRoot, code, version string) (string, int64, error) {
	finalPath := filepath.Join(outputRoot, FinalArchiveName(code, version))
	w, err := archive.Create(finalPath)
	if err != nil {
		return "", 0, err
	}

	entries, err := os.ReadDir(workDir)
	if err != nil {
		_ = w.Close()
		_ = os.Remove(finalPath)
		return "", 0, fmt.Errorf("failed to list working directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := w.AddFile(entry.Name(), filepath.Join(workDir, entry.Name())); err != nil {
			_ = w.Close()
			_ = os.Remove(finalPath)
			return "", 0, err
		}
	}
	if err := w.Close(); err != nil {
		_ = os.Remove(finalPath)
		return "", 0, err
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat final archive: %w", err)
	}
	return finalPath, info.Size(), nil
}
