// SPDX-License-Identifier: MPL-2.0

package langpack

const (
	// OutcomeSuccess means the final archive was produced.
	OutcomeSuccess Outcome = "success"
	// OutcomeSkipped means the language was not built, most commonly
	// because its top-level manifest is missing.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the build started but could not complete.
	OutcomeFailed Outcome = "failed"

	// ReasonManifestNotFound records a missing pkg_{code}.xml.
	ReasonManifestNotFound FailureReason = "manifest not found"
	// ReasonArchiveCreationFailed records an archive that could not be
	// created, either an inner sub-package or the final archive.
	ReasonArchiveCreationFailed FailureReason = "archive creation failed"
	// ReasonWorkspaceFailed records a scoped working directory that could
	// not be created or staged into.
	ReasonWorkspaceFailed FailureReason = "workspace failed"
)

type (
	// Outcome is the terminal state of one language's build.
	Outcome string

	// FailureReason classifies why a language was skipped or failed.
	FailureReason string

	// SubPackageResult reports one assembled inner archive.
	SubPackageResult struct {
		Kind        SubsetKind
		ArchivePath string
		// Entries is the number of files written into the inner archive.
		Entries int
		// SourceMissing is true when the subset's source directory did
		// not exist and an empty archive was produced. A warning, never
		// an error.
		SourceMissing bool
	}

	// Result is the recorded outcome of one language's PackageJob. Every
	// language the driver selects yields exactly one Result, whatever the
	// outcome.
	Result struct {
		Language string
		// JobID correlates log lines and the job's scoped workspace.
		JobID   string
		Outcome Outcome
		// Reason is set for skipped and failed outcomes.
		Reason FailureReason
		// Err is the underlying error for failed outcomes.
		Err error
		// ArchivePath and ArchiveSize describe the final archive on
		// success.
		ArchivePath string
		ArchiveSize int64
		SubPackages []SubPackageResult
	}
)

// Built reports whether the job produced a final archive.
func (r *Result) Built() bool {
	return r.Outcome == OutcomeSuccess
}
