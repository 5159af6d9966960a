package persistence

import "fmt"

// Error wraps any storage, encode or decode failure. These are recovered
// locally and never reach the user.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("persistence %v: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Cause() error {
	return e.Err
}
