package filecleaner

import "errors"

// Error taxonomy for per-file failures. All three are file-local and
// non-fatal: the affected file is skipped or left in place and the scan
// continues with the next path. The only fatal error in a run is failing
// to obtain the initial directory listing.
var (
	// ErrExtractionFailed signals that the grouping key could not be read:
	// the file could not be opened, holds fewer bytes than the key width,
	// or another non-transient I/O error occurred.
	ErrExtractionFailed = errors.New("grouping key extraction failed")

	// ErrReadFailed signals that a full-content read failed.
	ErrReadFailed = errors.New("content read failed")

	// ErrDeletionFailed signals that removing a confirmed duplicate failed.
	// It is the only per-file failure surfaced to the operator.
	ErrDeletionFailed = errors.New("duplicate deletion failed")
)
