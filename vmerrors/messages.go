package vmerrors

var messages = map[Errno]string{
	MemoryOutOfBounds:            "memory access out of bounds (%#08x)",
	MemoryProtectionViolation:    "write to read-only region (%#08x)",
	ProgramCounterOutOfBounds:    "program counter out of bounds (%#08x)",
	UnsupportedInstruction:       "unsupported instruction (top byte %#02x)",
	UnsupportedInstructionFormat: "unsupported instruction format (%#08x, top byte %#02x): %s",
	DeviceError:                  "device error: %s",
}
