package surface

import (
	"errors"
	"fmt"
)

// ErrEmptyBuffer is returned when a fill or blit targets, or reads from, a
// zero-length pixel buffer. The operation is a no-op.
var ErrEmptyBuffer = errors.New("surface: empty source or destination buffer")

// BoundsError reports a computed buffer index that fell outside the buffer.
// The offending write is skipped; the rest of the operation proceeds.
type BoundsError struct {
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("surface: index %d out of range [0,%d)", e.Index, e.Len)
}
