// Package register models the AArch64 register file: 31 general-purpose
// 64-bit registers plus the zero register, 32 128-bit SIMD/FP registers,
// the program counter, and the condition/FP status words.
package register

import "math"

// File is the complete register state of one emulator instance.
type File struct {
	x      [31]uint64
	v      [32][16]byte
	pc     uint64
	pstate uint32
	fpsr   uint32
	fpcr   uint32
}

// New returns a register file with every register zeroed.
func New() *File {
	return &File{}
}

// X returns the value of general-purpose register i. Index 31 is XZR and
// always reads 0; indices outside [0,31] also read 0.
func (f *File) X(i int) uint64 {
	if i < 0 || i > 31 || i == 31 {
		return 0
	}
	return f.x[i]
}

// SetX writes general-purpose register i. Writes to index 31 (XZR/WZR) and
// to any out-of-range index are silently discarded.
func (f *File) SetX(i int, val uint64) {
	if i < 0 || i >= 31 {
		return
	}
	f.x[i] = val
}

// PC returns the program counter.
func (f *File) PC() uint64 { return f.pc }

// SetPC sets the program counter.
func (f *File) SetPC(val uint64) { f.pc = val }

// VBytes returns the 16 raw bytes of SIMD/FP register v.
func (f *File) VBytes(v int) [16]byte {
	if v < 0 || v > 31 {
		return [16]byte{}
	}
	return f.v[v]
}

// SetVBytes overwrites all 16 bytes of SIMD/FP register v.
func (f *File) SetVBytes(v int, b [16]byte) {
	if v < 0 || v > 31 {
		return
	}
	f.v[v] = b
}

// VLane reads the lane-th element of size bytes (1, 2, 4 or 8) from SIMD/FP
// register v as a zero-extended uint64. An invalid register, size or lane
// index reads as 0.
func (f *File) VLane(v, lane, size int) uint64 {
	if v < 0 || v > 31 || !validElementSize(size) || lane < 0 || lane*size+size > 16 {
		return 0
	}
	var out uint64
	for i := 0; i < size; i++ {
		out |= uint64(f.v[v][lane*size+i]) << (8 * i)
	}
	return out
}

// SetVLane writes the lane-th element of size bytes into SIMD/FP register v.
// An invalid register, size or lane index is silently discarded.
func (f *File) SetVLane(v, lane, size int, val uint64) {
	if v < 0 || v > 31 || !validElementSize(size) || lane < 0 || lane*size+size > 16 {
		return
	}
	for i := 0; i < size; i++ {
		f.v[v][lane*size+i] = byte(val >> (8 * i))
	}
}

func validElementSize(size int) bool {
	return size == 1 || size == 2 || size == 4 || size == 8
}

// S returns the single-precision float view of lane 0 of SIMD/FP register v.
func (f *File) S(v int) float32 {
	return math.Float32frombits(uint32(f.VLane(v, 0, 4)))
}

// SetS writes the single-precision float view of lane 0 of SIMD/FP register v.
func (f *File) SetS(v int, val float32) {
	f.SetVLane(v, 0, 4, uint64(math.Float32bits(val)))
}

// D returns the double-precision float view of lane 0 of SIMD/FP register v.
func (f *File) D(v int) float64 {
	return math.Float64frombits(f.VLane(v, 0, 8))
}

// SetD writes the double-precision float view of lane 0 of SIMD/FP register v.
func (f *File) SetD(v int, val float64) {
	f.SetVLane(v, 0, 8, math.Float64bits(val))
}

// FPSR returns the floating-point status register.
func (f *File) FPSR() uint32 { return f.fpsr }

// SetFPSR overwrites the floating-point status register.
func (f *File) SetFPSR(val uint32) { f.fpsr = val }

// SetFPSRDivByZero sets the cumulative divide-by-zero flag, FPSR bit 0.
func (f *File) SetFPSRDivByZero() { f.fpsr |= 1 }

// FPCR returns the floating-point control register.
func (f *File) FPCR() uint32 { return f.fpcr }

// SetFPCR overwrites the floating-point control register.
func (f *File) SetFPCR(val uint32) { f.fpcr = val }
