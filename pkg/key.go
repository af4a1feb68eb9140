package filecleaner

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
)

// GroupingKey buckets candidate-duplicate files before the expensive full
// comparison. It is a file's leading bytes decoded as a native-endian
// unsigned integer, not a hash: two files with identical leading bytes but
// diverging tails collide into the same bucket and are told apart by a
// byte-for-byte comparison.
type GroupingKey uint64

// DefaultKeyWidth is the native machine word width in bytes (8 on a 64-bit
// target). The width is a tunable, not a fixed contract; see ValidateKeyWidth.
const DefaultKeyWidth = strconv.IntSize / 8

// ValidateKeyWidth validates that a grouping key width is supported.
func ValidateKeyWidth(width int) error {
	switch width {
	case 1, 2, 4, 8:
		return nil
	default:
		return fmt.Errorf("invalid key width: %d (supported: 1, 2, 4, 8)", width)
	}
}

// ReadKey reads exactly width leading bytes of the file at path and decodes
// them as a native-endian unsigned integer. Files holding fewer than width
// bytes always fail extraction; short reads are never zero-padded. An open
// interrupted by a signal is re-issued; the read itself is restarted by the
// runtime on interruption. The file is not modified and not left open.
func ReadKey(path string, width int) (GroupingKey, error) {
	if err := ValidateKeyWidth(width); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	file, err := retryInterrupts(func() (*os.File, error) {
		return os.Open(path)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer file.Close()

	var buf [8]byte
	if _, err := io.ReadFull(file, buf[:width]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	return decodeKey(buf[:width]), nil
}

// decodeKey interprets buf as an unsigned integer in the platform's native
// byte order. The buffer length has already been validated.
func decodeKey(buf []byte) GroupingKey {
	switch len(buf) {
	case 1:
		return GroupingKey(buf[0])
	case 2:
		return GroupingKey(binary.NativeEndian.Uint16(buf))
	case 4:
		return GroupingKey(binary.NativeEndian.Uint32(buf))
	default:
		return GroupingKey(binary.NativeEndian.Uint64(buf))
	}
}
