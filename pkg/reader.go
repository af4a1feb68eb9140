package filecleaner

import (
	"fmt"
	"os"
)

// readContent reads and returns the file's entire byte content, re-issuing
// the whole read when interrupted. The engine calls it lazily, only once a
// key collision is detected, so files with unique keys are never fully read.
func readContent(path string) ([]byte, error) {
	data, err := retryInterrupts(func() ([]byte, error) {
		return os.ReadFile(path)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return data, nil
}

// removeFile deletes the file at path, re-issuing the remove when
// interrupted.
func removeFile(path string) error {
	if err := retryInterruptsErr(func() error {
		return os.Remove(path)
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeletionFailed, err)
	}
	return nil
}
