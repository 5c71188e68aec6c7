package ringbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a capacity below 1 is requested.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrCapacityShrink matches every *CapacityShrinkError via errors.Is.
	ErrCapacityShrink = errors.New("capacity shrink requires force")
)

// CapacityShrinkError is returned by Resize when the requested capacity is
// smaller than the current one and the shrink was not forced. The buffer is
// left untouched.
type CapacityShrinkError struct {
	Requested int
	Current   int
}

func (e *CapacityShrinkError) Error() string {
	return fmt.Sprintf("cannot shrink buffer from %d to %d without force", e.Current, e.Requested)
}

// Is reports whether target is ErrCapacityShrink.
func (e *CapacityShrinkError) Is(target error) bool {
	return target == ErrCapacityShrink
}
