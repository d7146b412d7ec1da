// Package vmerrors is a helper package for the emulator's error type. It
// defines Fault, an implementation of the error interface that tags every
// error the core can raise with one of a small closed set of Errno values,
// so a caller can switch on the kind of failure without string matching.
//
// Errors are created with New():
//
//	err := vmerrors.New(vmerrors.MemoryOutOfBounds, addr)
//
// Is() reports whether an error (possibly wrapped by fmt.Errorf with %w)
// was created with a particular Errno:
//
//	if vmerrors.Is(err, vmerrors.MemoryOutOfBounds) {
//		...
//	}
package vmerrors
