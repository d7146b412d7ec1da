// Package memory implements the flat, little-endian byte-addressed memory
// array and its region map, adapted from the named-address-range pattern
// in the teacher's ARM memory model.
package memory

import (
	"fmt"

	"github.com/nzcv/armvisor/vmerrors"
)

// Region names a contiguous span of the address space with an access
// policy. The initial region, added automatically at construction, covers
// the whole array as writable RAM.
type Region struct {
	Start    uint64
	Size     uint64
	ReadOnly bool
	Name     string
}

func (r Region) contains(addr uint64) bool {
	return addr >= r.Start && addr < r.Start+r.Size
}

// Memory is a flat byte array plus an overlapping region map.
type Memory struct {
	raw             []byte
	regions         []Region
	enforceReadOnly bool
}

// New returns a Memory of the given size, backed by a single writable RAM
// region spanning the whole array, with read-only region enforcement on.
func New(size uint64) *Memory {
	return &Memory{
		raw:             make([]byte, size),
		regions:         []Region{{Start: 0, Size: size, ReadOnly: false, Name: "ram"}},
		enforceReadOnly: true,
	}
}

// SetEnforceReadOnly toggles whether writes into a read-only region raise
// MemoryProtectionViolation (config.Config.EnforceReadOnly, Decision D1).
// When false, writes succeed regardless of region policy.
func (m *Memory) SetEnforceReadOnly(v bool) { m.enforceReadOnly = v }

// Size returns the number of addressable bytes.
func (m *Memory) Size() uint64 { return uint64(len(m.raw)) }

// Regions returns a copy of the registered region list, in registration
// order, for diagnostics callers such as the memviz dump.
func (m *Memory) Regions() []Region {
	out := make([]Region, len(m.regions))
	copy(out, m.regions)
	return out
}

// AddRegion registers an additional named region. Later-registered regions
// take precedence over earlier ones (including the initial whole-array RAM
// region) when their ranges overlap, so a caller can carve a read-only or
// differently-named window out of the base RAM without losing it to the
// base region's first-added position.
func (m *Memory) AddRegion(r Region) {
	m.regions = append(m.regions, r)
}

// IsValidAddress reports whether the n-byte span starting at addr lies
// entirely within the raw array.
func (m *Memory) IsValidAddress(addr uint64, n int) bool {
	return m.isValidAddress(addr, uint64(n))
}

func (m *Memory) isValidAddress(addr, n uint64) bool {
	end := addr + n
	if end < addr { // overflow
		return false
	}
	return end <= uint64(len(m.raw))
}

// IsReadOnlyRegion reports whether the most specific region containing addr
// is marked read-only.
func (m *Memory) IsReadOnlyRegion(addr uint64) bool {
	return m.isReadOnlyRegion(addr)
}

func (m *Memory) isReadOnlyRegion(addr uint64) bool {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].contains(addr) {
			return m.regions[i].ReadOnly
		}
	}
	return false
}

func validSize(size int) bool {
	return size == 1 || size == 2 || size == 4 || size == 8
}

// Read assembles size (1, 2, 4 or 8) little-endian bytes starting at addr.
func (m *Memory) Read(addr uint64, size int) (uint64, error) {
	if !validSize(size) {
		return 0, vmerrors.New(vmerrors.UnsupportedInstructionFormat, uint32(addr), byte(0), fmt.Sprintf("invalid memory access size %d", size))
	}
	if !m.isValidAddress(addr, uint64(size)) {
		return 0, vmerrors.New(vmerrors.MemoryOutOfBounds, addr)
	}
	var v uint64
	for i := 0; i < size; i++ {
		v |= uint64(m.raw[addr+uint64(i)]) << (8 * i)
	}
	return v, nil
}

// Write truncates value to size (1, 2, 4 or 8) bytes and stores them
// little-endian starting at addr. Writing into a read-only region raises
// MemoryProtectionViolation.
func (m *Memory) Write(addr uint64, value uint64, size int) error {
	if !validSize(size) {
		return vmerrors.New(vmerrors.UnsupportedInstructionFormat, uint32(addr), byte(0), fmt.Sprintf("invalid memory access size %d", size))
	}
	if !m.isValidAddress(addr, uint64(size)) {
		return vmerrors.New(vmerrors.MemoryOutOfBounds, addr)
	}
	if m.enforceReadOnly && m.isReadOnlyRegion(addr) {
		return vmerrors.New(vmerrors.MemoryProtectionViolation, addr)
	}
	for i := 0; i < size; i++ {
		m.raw[addr+uint64(i)] = byte(value >> (8 * i))
	}
	return nil
}

// ReadInstruction fetches a 4-byte-aligned 32-bit instruction word. Any
// misalignment or out-of-bounds access raises MemoryOutOfBounds; the engine
// loop performs its own prior alignment/bounds check and raises the more
// specific ProgramCounterOutOfBounds before ever reaching this call.
func (m *Memory) ReadInstruction(addr uint64) (uint32, error) {
	if addr%4 != 0 {
		return 0, vmerrors.New(vmerrors.MemoryOutOfBounds, addr)
	}
	if !m.isValidAddress(addr, 4) {
		return 0, vmerrors.New(vmerrors.MemoryOutOfBounds, addr)
	}
	v, err := m.Read(addr, 4)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// WriteBlock writes words as consecutive little-endian 32-bit values
// starting at addr; used to load a program into memory.
func (m *Memory) WriteBlock(addr uint64, words []uint32) error {
	for i, w := range words {
		if err := m.Write(addr+uint64(i)*4, uint64(w), 4); err != nil {
			return err
		}
	}
	return nil
}
