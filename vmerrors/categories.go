package vmerrors

// Errno identifies the kind of fault raised by the core. Each value names a
// distinct error kind from the engine's error taxonomy; the payload that
// goes with it is supplied as Values to New().
type Errno int

const (
	// MemoryOutOfBounds: an access or instruction fetch fell outside the
	// bounds of the raw memory array. Values: address.
	MemoryOutOfBounds Errno = iota

	// MemoryProtectionViolation: a write targeted an address whose most
	// recently registered containing region is read-only. Values: address.
	MemoryProtectionViolation

	// ProgramCounterOutOfBounds: PC was unaligned or outside valid memory
	// at the moment of instruction fetch. Values: address.
	ProgramCounterOutOfBounds

	// UnsupportedInstruction: no decoder family matched the instruction's
	// top byte. Values: topByte.
	UnsupportedInstruction

	// UnsupportedInstructionFormat: a family matched but the sub-field
	// combination is not implemented, or the word is the all-zero trap, or
	// MADD was seen with a non-zero Ra. Values: word, topByte, detail.
	UnsupportedInstructionFormat

	// DeviceError: missing memory backing for the bus, a peripheral
	// signalled failure, or the run-away execution safety bound tripped.
	// Values: message.
	DeviceError
)
