package filecleaner

import (
	"strings"

	zcsl "github.com/mattkeenan/zerocopyskiplist"
)

// fileRecord is one processed file's entry in the run ledger.
type fileRecord struct {
	Path           string
	Key            GroupingKey
	Representative string // for duplicates: the bucket member whose content matched
}

// Ledger dispositions, carried as the skiplist context of each record.
const (
	dispositionUnique       = "unique"        // first of its content, kept in the index
	dispositionDuplicate    = "duplicate"     // dry-run match, left in place
	dispositionDeleted      = "deleted"       // confirmed duplicate, removed
	dispositionDeleteFailed = "delete-failed" // confirmed duplicate, removal failed, left untracked
	dispositionSkipped      = "skipped"       // key extraction or content read failed
)

// runLedger keeps one record per processed file, ordered by path, so report
// output is deterministic regardless of listing order. It only observes the
// run: the engine's dedup decisions never consult it.
type runLedger struct {
	skiplist *zcsl.ZeroCopySkiplist[fileRecord, string, string]
}

func newRunLedger() *runLedger {
	getKeyFromItem := func(rec *fileRecord) string {
		return rec.Path
	}
	getItemSize := func(rec *fileRecord) int {
		return len(rec.Path)
	}
	cmpKey := func(a, b string) int {
		return strings.Compare(a, b)
	}

	return &runLedger{
		skiplist: zcsl.MakeZeroCopySkiplist[fileRecord, string, string](
			16,
			getKeyFromItem,
			getItemSize,
			cmpKey,
		),
	}
}

// record stores the disposition of one processed file. Paths are unique
// within a run, so inserts never collide.
func (rl *runLedger) record(path string, key GroupingKey, disposition, representative string) {
	rec := fileRecord{
		Path:           path,
		Key:            key,
		Representative: representative,
	}
	rl.skiplist.Insert(&rec, disposition)
}

// forEach iterates all records in path order. The callback returns false to
// stop early.
func (rl *runLedger) forEach(callback func(*fileRecord, string) bool) {
	for current := rl.skiplist.First(); current != nil; current = current.Next() {
		if !callback(current.Item(), current.Context()) {
			break
		}
	}
}

// find returns the record and disposition for path, or (nil, "").
func (rl *runLedger) find(path string) (*fileRecord, string) {
	itemPtr, context := rl.skiplist.Find(path)
	if itemPtr == nil {
		return nil, ""
	}
	return itemPtr.Item(), context
}

// length returns the number of recorded files.
func (rl *runLedger) length() int {
	return rl.skiplist.Length()
}
