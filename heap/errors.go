package heap

import "github.com/pkg/errors"

// Sentinel causes, wrapped with context by the functions that detect them.
// The CPU wraps them further in a cpu.TrapError; they stay reachable
// through errors.Cause and show up in the --verbose cause chain.
var (
	// ErrZeroSlot is the cause when an operation illegally targets slot 0
	// (abandoning array zero).
	ErrZeroSlot = errors.New("slot 0 cannot be abandoned")
	// ErrVacantSlot is the cause when an operation targets a slot that is
	// not currently allocated.
	ErrVacantSlot = errors.New("slot is vacant")
	// ErrOutOfBounds is the cause when a read or write offset falls
	// outside the target array.
	ErrOutOfBounds = errors.New("offset out of bounds")
)
