package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotTaken means the candidate slot overlaps a committed booking.
	// Surfaced at commit time; never retried internally.
	ErrSlotTaken = errors.New("slot overlaps an existing booking")

	// ErrOutsideHours means the candidate slot starts before opening or
	// ends past closing beyond the tolerance.
	ErrOutsideHours = errors.New("slot is outside business hours")

	// ErrClosedDay means the requested date's weekday is not in the open set.
	ErrClosedDay = errors.New("salon is closed on this day")
)

// StorageError wraps a persistence failure. It is fatal for the current
// operation and must reach the caller; a swallowed storage error could
// mask a lost booking.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
