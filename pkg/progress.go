package filecleaner

import (
	"fmt"
	"io"
)

// Progress maintains the run's scanned/deleted counters and emits the
// updating status line.
//
// Both counters are monotonically non-decreasing for the run's duration and
// reset only when a new Progress is created. They are plain fields because
// the reference design is a single sequential pass with exactly one writer;
// a concurrent engine would have to replace them with atomic counters or
// message-passing aggregation before sharing a Progress across workers.
type Progress struct {
	out     io.Writer
	scanned uint64
	deleted uint64
}

// NewProgress creates a Progress writing status lines to out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{out: out}
}

// Begin emits the initial status line so an empty directory still produces
// one scanned report.
func (p *Progress) Begin() {
	p.printScanned()
}

// FileScanned counts one processed path, whatever the outcome of its key
// extraction, comparison or deletion, and refreshes the status line.
func (p *Progress) FileScanned() {
	p.scanned++
	p.printScanned()
}

// FileDeleted counts one successful duplicate removal.
func (p *Progress) FileDeleted() {
	p.deleted++
}

// Finish terminates the status line and emits the final deleted total.
func (p *Progress) Finish() {
	fmt.Fprintf(p.out, "\ndeleted: %d\n", p.deleted)
}

// Scanned returns the number of paths processed so far.
func (p *Progress) Scanned() uint64 {
	return p.scanned
}

// Deleted returns the number of duplicates removed so far.
func (p *Progress) Deleted() uint64 {
	return p.deleted
}

func (p *Progress) printScanned() {
	fmt.Fprintf(p.out, "\rscanned: %d", p.scanned)
}
