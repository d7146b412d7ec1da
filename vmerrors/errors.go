package vmerrors

import (
	"errors"
	"fmt"
)

// Values is the type used to specify the payload arguments for a Fault.
type Values []interface{}

// Fault is the error type raised by every fallible operation in the core.
// It carries an Errno identifying the kind of failure and the Values
// needed to format a human-readable message.
type Fault struct {
	Errno  Errno
	Values Values
}

// New creates a Fault of the given kind with the given payload.
func New(errno Errno, values ...interface{}) Fault {
	return Fault{Errno: errno, Values: values}
}

func (f Fault) Error() string {
	return fmt.Sprintf(messages[f.Errno], f.Values...)
}

// Is reports whether err is a Fault of the given kind, unwrapping through
// any fmt.Errorf("...: %w", err) chain.
func Is(err error, errno Errno) bool {
	var f Fault
	if errors.As(err, &f) {
		return f.Errno == errno
	}
	return false
}
