// Package decode classifies a 32-bit ARM64 word into a family and extracts
// its operand fields, as a decision tree rather than a sequence of
// possibly-overlapping masks (spec.md's Decision D4), grounded on the
// cascading opcode dispatch in the teacher's arm7tdmi.Run() and the family
// tables of arm/thumb2_32bit.go and arm/thumb2_fpu.go.
package decode

// Op identifies the decoded operation. The three blocks (scalar, FP, SIMD)
// are separated by sentinel values so cpu.execute can route by range.
type Op int

const (
	MOVZ Op = iota
	ADDImm
	ADDReg
	SUBReg
	SUBImm
	SUBSReg
	MUL
	ANDReg
	ORRReg
	ORRImm
	EORReg
	ShiftReg
	ShiftImm
	UDIV
	SDIV
	BCond
	B
	BL
	BR
	NOP
	scalarEnd

	FADD
	FSUB
	FMUL
	FDIV
	FMOVReg
	FMOVIntToFP
	FMOVFPToInt
	SCVTF
	FCVTZS
	FCVT
	FCMP
	LDRFloat
	STRFloat
	fpEnd

	SIMDAdd
	SIMDSub
	SIMDMul
	SIMDAnd
	SIMDOr
	SIMDXor
	SIMDDup
	SIMDLD1
	SIMDST1
	SIMDMov
	SIMDExtract
)

// IsScalar reports whether o belongs to the scalar executor's family.
func (o Op) IsScalar() bool { return o < scalarEnd }

// IsFP reports whether o belongs to the floating-point executor's family.
func (o Op) IsFP() bool { return o > scalarEnd && o < fpEnd }

// IsSIMD reports whether o belongs to the SIMD executor's family.
func (o Op) IsSIMD() bool { return o > fpEnd }

// ShiftKind selects LSL/LSR/ASR for the scalar shift instructions.
type ShiftKind int

const (
	LSL ShiftKind = iota
	LSR
	ASR
)

// Instruction is the decoder's output: the classified Op plus whichever
// operand fields that Op uses. Unused fields are left zero.
type Instruction struct {
	Op    Op
	Word  uint32
	Rd    int
	Rn    int
	Rm    int
	Ra    int
	Imm   uint64
	Cond  int
	Shift ShiftKind

	ElementSize int // SIMD lane width in bytes (1, 2, 4 or 8)
	Lane        int // SIMD lane/extract index

	Double  bool // FP precision bit: false=single/S, true=double/D
	Signed  bool // SCVTF/FCVTZS sign selector
	SrcType int  // FCVT source type, instr[17:16]
	DstType int  // FCVT destination type, instr[23:22]

	PostIncrement bool // SIMD LD1/ST1 post-increment variant
}

func bits(word uint32, hi, lo int) uint32 {
	mask := uint32(1)<<(hi-lo+1) - 1
	return (word >> lo) & mask
}
