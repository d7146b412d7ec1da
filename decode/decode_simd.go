package decode

import (
	"fmt"

	"github.com/nzcv/armvisor/vmerrors"
)

func decodeSIMDLoadStore(word uint32) Instruction {
	op := SIMDST1
	if bits(word, 22, 22) == 1 {
		op = SIMDLD1
	}
	return Instruction{
		Op:            op,
		Word:          word,
		Rd:            int(bits(word, 4, 0)),
		Rn:            int(bits(word, 9, 5)),
		PostIncrement: bits(word, 23, 23) == 1,
	}
}

func elementSizeBytes(sel uint32) int {
	switch sel {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

// decodeSIMDDataProcessing implements SPEC_FULL.md's Decision D4: it
// switches on the sub-opcode field at instr[15:10], whose values below form
// a disjoint encoding of our own (listed in the precedence order AND > OR >
// XOR > DUP > MUL > SUB > ADD), eliminating the mask collisions spec.md
// attributes to the original source. The element-size field at
// instr[23:22] does not select the operation; it sets the lane width.
func decodeSIMDDataProcessing(word uint32) (Instruction, error) {
	elementSize := elementSizeBytes(bits(word, 23, 22))
	subop := bits(word, 15, 10)
	rd := int(bits(word, 4, 0))
	rn := int(bits(word, 9, 5))
	rm := int(bits(word, 20, 16))

	switch subop {
	case 0x01: // AND
		return Instruction{Op: SIMDAnd, Word: word, Rd: rd, Rn: rn, Rm: rm}, nil
	case 0x02: // ORR, or its MOV (Vd<-Vn) alias when Rm==Rn
		if rm == rn {
			return Instruction{Op: SIMDMov, Word: word, Rd: rd, Rn: rn}, nil
		}
		return Instruction{Op: SIMDOr, Word: word, Rd: rd, Rn: rn, Rm: rm}, nil
	case 0x03: // XOR
		return Instruction{Op: SIMDXor, Word: word, Rd: rd, Rn: rn, Rm: rm}, nil
	case 0x04: // DUP
		lane := int(bits(word, 18, 16))
		return Instruction{Op: SIMDDup, Word: word, Rd: rd, Rn: rn, Lane: lane, ElementSize: elementSize}, nil
	case 0x07: // MUL
		if elementSize == 8 {
			return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24),
				"SIMD MUL does not support doubleword elements")
		}
		return Instruction{Op: SIMDMul, Word: word, Rd: rd, Rn: rn, Rm: rm, ElementSize: elementSize}, nil
	case 0x09: // SUB
		return Instruction{Op: SIMDSub, Word: word, Rd: rd, Rn: rn, Rm: rm, ElementSize: elementSize}, nil
	case 0x0A: // ADD
		return Instruction{Op: SIMDAdd, Word: word, Rd: rd, Rn: rn, Rm: rm, ElementSize: elementSize}, nil
	default:
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24),
			fmt.Sprintf("SIMD sub-opcode %#02x not recognised", subop))
	}
}

func decodeSIMDExtract(word uint32) Instruction {
	return Instruction{
		Op:   SIMDExtract,
		Word: word,
		Rd:   int(bits(word, 4, 0)),
		Rn:   int(bits(word, 9, 5)),
		Lane: int(bits(word, 13, 10)),
	}
}
