package filecleaner

// DuplicateGroup represents one set of byte-identical files found during a
// run: the surviving representative first, then its duplicates in path
// order.
type DuplicateGroup struct {
	Key   uint64   `json:"key"`
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// DuplicateGroups assembles groups from the run ledger, ordered by the
// representative's path. In dry-run mode the listed duplicates still exist
// on disk; otherwise all but the representative were removed. Duplicates
// whose removal failed are listed too, since their content matched.
func (e *Engine) DuplicateGroups() []DuplicateGroup {
	members := make(map[string][]string)
	keys := make(map[string]GroupingKey)

	e.ledger.forEach(func(rec *fileRecord, disposition string) bool {
		switch disposition {
		case dispositionDuplicate, dispositionDeleted, dispositionDeleteFailed:
			members[rec.Representative] = append(members[rec.Representative], rec.Path)
			keys[rec.Representative] = rec.Key
		}
		return true
	})

	var result []DuplicateGroup
	e.ledger.forEach(func(rec *fileRecord, disposition string) bool {
		dupes, ok := members[rec.Path]
		if !ok {
			return true
		}
		files := make([]string, 0, len(dupes)+1)
		files = append(files, rec.Path)
		files = append(files, dupes...)
		result = append(result, DuplicateGroup{
			Key:   uint64(keys[rec.Path]),
			Files: files,
			Count: len(files),
		})
		return true
	})

	return result
}
