package skerror

import (
	"fmt"
	"runtime/debug"
)

// Error is the error type used for internal faults in the simulation. It
// carries the stack of the goroutine that raised it, since these faults are
// always programmer errors rather than recoverable conditions.
type Error struct {
	Message string
	Stack   string
}

// New returns a new Error with the given formatted message.
func New(format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Stack:   string(debug.Stack()),
	}
}

func (e *Error) Error() string {
	return e.Message
}
