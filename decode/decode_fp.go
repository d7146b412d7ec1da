package decode

import "github.com/nzcv/armvisor/vmerrors"

// decodeFP classifies a word whose top byte is 0x1E, 0x1F or 0x9E, per
// spec.md §4.8's masked-pattern table. The masks are kept disjoint (D4's
// decision-tree redesign) so no exact-word fallback is needed for the
// FMOV bit-pattern moves the spec otherwise calls out as collision-prone.
func decodeFP(word uint32) (Instruction, error) {
	double := bits(word, 22, 22) == 1
	rd := int(bits(word, 4, 0))
	rn := int(bits(word, 9, 5))
	rm := int(bits(word, 20, 16))

	switch {
	case word&0xFF20FC00 == 0x1E202800:
		return Instruction{Op: FADD, Word: word, Double: double, Rd: rd, Rn: rn, Rm: rm}, nil
	case word&0xFF20FC00 == 0x1E203800:
		return Instruction{Op: FSUB, Word: word, Double: double, Rd: rd, Rn: rn, Rm: rm}, nil
	case word&0xFF20FC00 == 0x1E200800:
		return Instruction{Op: FMUL, Word: word, Double: double, Rd: rd, Rn: rn, Rm: rm}, nil
	case word&0xFF20FC00 == 0x1E201800:
		return Instruction{Op: FDIV, Word: word, Double: double, Rd: rd, Rn: rn, Rm: rm}, nil
	case word&0xFF20FC00 == 0x1E204000:
		return Instruction{Op: FMOVReg, Word: word, Double: double, Rd: rd, Rn: rn}, nil
	case word&0xFF3FFC00 == 0x1E270000:
		return Instruction{Op: FMOVIntToFP, Word: word, Double: false, Rd: rd, Rn: rn}, nil
	case word&0xFF3FFC00 == 0x9E270000:
		return Instruction{Op: FMOVIntToFP, Word: word, Double: true, Rd: rd, Rn: rn}, nil
	case word&0xFF3FFC00 == 0x1E260000:
		return Instruction{Op: FMOVFPToInt, Word: word, Double: false, Rd: rd, Rn: rn}, nil
	case word&0xFF3FFC00 == 0x9E260000:
		return Instruction{Op: FMOVFPToInt, Word: word, Double: true, Rd: rd, Rn: rn}, nil
	case word&0xFFBEFC00 == 0x1E220000:
		return Instruction{Op: SCVTF, Word: word, Double: double, Signed: bits(word, 16, 16) == 0, Rd: rd, Rn: rn}, nil
	case word&0xFFBEFC00 == 0x1E380000:
		return Instruction{Op: FCVTZS, Word: word, Double: double, Signed: bits(word, 16, 16) == 0, Rd: rd, Rn: rn}, nil
	case word&0xFF20FC00 == 0x1E008000:
		return Instruction{Op: FCVT, Word: word, Rd: rd, Rn: rn, SrcType: int(bits(word, 17, 16)), DstType: int(bits(word, 23, 22))}, nil
	case word&0xFF20FC1F == 0x1E202008:
		return Instruction{Op: FCMP, Word: word, Double: double, Rn: rn, Rm: rm}, nil
	default:
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24), "floating-point word not recognised")
	}
}
