package cpu

import (
	"fmt"

	"github.com/rsantos/stonemachine/platter"
)

// TrapError reports a runtime trap: the operator that triggered it, the
// execution finger at the time of the fault, and the underlying cause
// (bounds violation, division by zero, invalid operator, and so on).
type TrapError struct {
	Op     platter.Op
	Finger uint32
	Err    error
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("the machine failed: %s @%d: %v", e.Op, e.Finger, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *TrapError) Unwrap() error { return e.Err }

// Cause exposes the underlying cause for github.com/pkg/errors.Cause.
func (e *TrapError) Cause() error { return e.Err }

func trap(op platter.Op, finger uint32, err error) error {
	return &TrapError{Op: op, Finger: finger, Err: err}
}
