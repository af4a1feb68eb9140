package filecleaner

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isInterrupt reports whether err is an interruption-class I/O failure
// that warrants re-issuing the same operation rather than failing.
func isInterrupt(err error) bool {
	return errors.Is(err, unix.EINTR)
}

// retryInterrupts re-issues op until it returns anything other than an
// interruption-class error. All other errors are surfaced unchanged.
func retryInterrupts[T any](op func() (T, error)) (T, error) {
	for {
		v, err := op()
		if err != nil && isInterrupt(err) {
			continue
		}
		return v, err
	}
}

// retryInterruptsErr is retryInterrupts for operations with no result value.
func retryInterruptsErr(op func() error) error {
	for {
		err := op()
		if err != nil && isInterrupt(err) {
			continue
		}
		return err
	}
}
