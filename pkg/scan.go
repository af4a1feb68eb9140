package filecleaner

import (
	"fmt"
	"os"
	"path/filepath"
)

// ListDirectory returns the ordered snapshot of regular files directly
// inside dir. Subdirectories, symlinks and other non-regular entries are
// skipped and there is no recursion. The snapshot is taken once at call
// time; files created or removed afterwards are not picked up.
//
// os.ReadDir returns entries sorted by name, so for a given directory the
// listing order, and with it the surviving representative of each duplicate
// set, is deterministic.
func ListDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	if IsDebugEnabled("scan") {
		VerboseLog(3, "ListDirectory: %d entries, %d regular files in %s", len(entries), len(paths), dir)
	}

	return paths, nil
}
