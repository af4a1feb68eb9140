package filecleaner

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Options configure an Engine run.
type Options struct {
	KeyWidth int       // grouping key width in bytes; DefaultKeyWidth when 0
	DryRun   bool      // detect and record duplicates without removing them
	SizeHint int       // expected file count, used to size the index
	Out      io.Writer // status line destination (default os.Stdout)
	ErrOut   io.Writer // deletion failure destination (default os.Stderr)
}

// Engine performs the deduplication pass: for each incoming path it
// extracts the grouping key, looks up the bucket, compares content against
// each existing member in insertion order, and deletes on match or appends
// the path as a new unique member.
//
// The engine exclusively owns its DuplicateIndex for the lifetime of the
// scan, and the reference design is strictly sequential: one file is fully
// resolved before the next begins. That exclusivity is load-bearing. If a
// second worker could extend a bucket while another iterates it for
// comparison, the iterating worker could miss a just-appended entry and
// later append a byte-identical file as a second "unique" member. A
// concurrent variant must either serialize all mutation and iteration of a
// bucket behind one lock per key, or re-check the bucket tail under the
// mutation lock immediately before appending.
type Engine struct {
	keyWidth int
	dryRun   bool
	index    *DuplicateIndex
	ledger   *runLedger
	progress *Progress
	errOut   io.Writer
}

// NewEngine creates an Engine with a fresh index and zeroed counters.
func NewEngine(opts Options) *Engine {
	keyWidth := opts.KeyWidth
	if keyWidth == 0 {
		keyWidth = DefaultKeyWidth
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	return &Engine{
		keyWidth: keyWidth,
		dryRun:   opts.DryRun,
		index:    NewDuplicateIndex(opts.SizeHint),
		ledger:   newRunLedger(),
		progress: NewProgress(out),
		errOut:   errOut,
	}
}

// Run consumes the listing exactly once, in the order delivered. It emits
// the initial status line before any file is touched (so an empty listing
// still produces one), processes each path to completion, and emits the
// final deleted total when the listing is exhausted. The scan always runs
// to completion; there is no cancellation concept.
func (e *Engine) Run(paths []string) {
	e.progress.Begin()
	for _, path := range paths {
		e.processFile(path)
		e.progress.FileScanned()
	}
	e.progress.Finish()
}

// processFile applies the per-file algorithm. Every failure in here is
// file-local: the path is skipped or left in place and the scan moves on.
func (e *Engine) processFile(path string) {
	key, err := ReadKey(path, e.keyWidth)
	if err != nil {
		// Unreadable or shorter than the key width: never registered,
		// never deleted.
		VerboseLog(2, "skipping %s: %v", path, err)
		e.ledger.record(path, 0, dispositionSkipped, "")
		return
	}

	bucket, ok := e.index.Lookup(key)
	if !ok {
		// First of its kind, no comparison needed.
		e.index.Insert(key, path)
		e.ledger.record(path, key, dispositionUnique, "")
		return
	}

	data, err := readContent(path)
	if err != nil {
		VerboseLog(2, "skipping %s: %v", path, err)
		e.ledger.record(path, key, dispositionSkipped, "")
		return
	}

	if IsDebugEnabled("compare") {
		VerboseLog(3, "processFile: key %#x collision, comparing %s against %d bucket members", uint64(key), path, len(bucket))
	}

	for _, existing := range bucket {
		other, err := readContent(existing)
		if err != nil {
			// A read failure on an existing member must never cause data
			// loss: treat it as non-matching and keep it in the bucket.
			VerboseLog(2, "comparison read of %s failed, treating as non-matching: %v", existing, err)
			continue
		}
		if !bytes.Equal(other, data) {
			continue
		}

		// Byte-identical to an earlier unique file. The file is not
		// appended to the bucket either way: the representative already
		// covers this content.
		if e.dryRun {
			e.ledger.record(path, key, dispositionDuplicate, existing)
			return
		}
		if err := removeFile(path); err != nil {
			// Non-fatal: report and leave the file in place, untracked. A
			// later identical file is still compared against the
			// representative and deleted; this one remains.
			fmt.Fprintln(e.errOut, err)
			e.ledger.record(path, key, dispositionDeleteFailed, existing)
			return
		}
		e.progress.FileDeleted()
		e.ledger.record(path, key, dispositionDeleted, existing)
		return
	}

	e.index.Append(key, path)
	e.ledger.record(path, key, dispositionUnique, "")
}

// Scanned returns the number of paths processed so far.
func (e *Engine) Scanned() uint64 {
	return e.progress.Scanned()
}

// Deleted returns the number of duplicates removed so far.
func (e *Engine) Deleted() uint64 {
	return e.progress.Deleted()
}
