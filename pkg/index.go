package filecleaner

// DuplicateIndex maps a grouping key to the insertion-ordered list of file
// paths confirmed unique within that key's bucket. The first file observed
// with a given content is the bucket's permanent representative; later
// byte-identical files are deleted and never replace it.
//
// Two invariants hold for the lifetime of a scan:
//   - every path in a bucket refers to a file this run has not deleted;
//   - no two paths in one bucket have byte-identical content (the engine
//     compares before appending).
//
// The index is created once per run, populated during the single scan pass
// and discarded when the run ends. It is owned and mutated exclusively by
// one Engine; see the concurrency note on Engine.
type DuplicateIndex struct {
	buckets map[GroupingKey][]string
}

// NewDuplicateIndex creates an index sized for the expected file count so
// population during the scan avoids rehashing.
func NewDuplicateIndex(sizeHint int) *DuplicateIndex {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &DuplicateIndex{
		buckets: make(map[GroupingKey][]string, sizeHint),
	}
}

// Lookup returns the bucket for key and whether one exists.
func (di *DuplicateIndex) Lookup(key GroupingKey) ([]string, bool) {
	bucket, ok := di.buckets[key]
	return bucket, ok
}

// Insert creates a new bucket for key containing only path.
func (di *DuplicateIndex) Insert(key GroupingKey, path string) {
	di.buckets[key] = []string{path}
}

// Append adds path to key's existing bucket as a newly confirmed unique file.
func (di *DuplicateIndex) Append(key GroupingKey, path string) {
	di.buckets[key] = append(di.buckets[key], path)
}

// Len returns the number of distinct keys in the index.
func (di *DuplicateIndex) Len() int {
	return len(di.buckets)
}

// Paths returns the total number of unique paths across all buckets.
func (di *DuplicateIndex) Paths() int {
	total := 0
	for _, bucket := range di.buckets {
		total += len(bucket)
	}
	return total
}
