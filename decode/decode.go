package decode

import (
	"fmt"

	"github.com/nzcv/armvisor/vmerrors"
)

// Decode classifies word into an Instruction by its top byte and, where
// a top byte covers more than one family, a further discriminator field.
// An unrecognized top byte raises UnsupportedInstruction; a recognized
// family with invalid sub-fields raises UnsupportedInstructionFormat.
func Decode(word uint32) (Instruction, error) {
	if word == 0 {
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(0), "zeroed instruction word")
	}

	top := byte(word >> 24)
	switch top {
	case 0xD2, 0xD3:
		return decodeMOVZ(word), nil
	case 0x91:
		return decodeADDImm(word), nil
	case 0x8B:
		return decodeRRR(ADDReg, word), nil
	case 0xCB:
		return decodeRRR(SUBReg, word), nil
	case 0xD1:
		return decodeSUBImm(word), nil
	case 0xEB:
		return decodeRRR(SUBSReg, word), nil
	case 0x9B:
		return decodeMUL(word)
	case 0x8A:
		return decodeRRR(ANDReg, word), nil
	case 0xAA:
		return decodeRRR(ORRReg, word), nil
	case 0x92, 0x93:
		return decodeORRImm(word), nil
	case 0xCA:
		return decodeRRR(EORReg, word), nil
	case 0xAB:
		return decodeShiftReg(word)
	case 0xD4:
		return decodeShiftImm(word)
	case 0x9A:
		return decodeDivision(word), nil
	case 0x54:
		return decodeBCond(word), nil
	case 0x14:
		return decodeBranchImm(B, word), nil
	case 0x17:
		return decodeBranchImm(BL, word), nil
	case 0xD6:
		return decodeBR(word)
	case 0xD5:
		return decodeSystem(word)
	case 0x1E, 0x1F, 0x9E:
		return decodeFP(word)
	case 0xBD:
		return decodeLDRSTRFloat(LDRFloat, word), nil
	case 0xFD:
		return decodeLDRSTRFloat(STRFloat, word), nil
	case 0x4C:
		return decodeSIMDLoadStore(word), nil
	case 0x4E, 0x6E:
		return decodeSIMDDataProcessing(word)
	case 0x0D:
		return decodeSIMDExtract(word), nil
	default:
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstruction, top)
	}
}

func decodeMOVZ(word uint32) Instruction {
	return Instruction{Op: MOVZ, Word: word, Rd: int(bits(word, 4, 0)), Imm: uint64(bits(word, 20, 5))}
}

func decodeADDImm(word uint32) Instruction {
	return Instruction{
		Op:  ADDImm,
		Word: word,
		Rd:  int(bits(word, 4, 0)),
		Rn:  int(bits(word, 9, 5)),
		Imm: uint64(bits(word, 21, 10)),
	}
}

func decodeSUBImm(word uint32) Instruction {
	return Instruction{
		Op:   SUBImm,
		Word: word,
		Rd:   int(bits(word, 4, 0)),
		Rn:   int(bits(word, 9, 5)),
		Imm:  uint64(bits(word, 21, 10)),
	}
}

// decodeRRR handles the common Rd/Rn/Rm register-register-register shape
// shared by ADD/SUB/SUBS/AND/ORR/EOR register forms.
func decodeRRR(op Op, word uint32) Instruction {
	return Instruction{
		Op:   op,
		Word: word,
		Rd:   int(bits(word, 4, 0)),
		Rn:   int(bits(word, 9, 5)),
		Rm:   int(bits(word, 20, 16)),
	}
}

func decodeORRImm(word uint32) Instruction {
	shiftSel := bits(word, 23, 22)
	imm := uint64(bits(word, 21, 10)) << (shiftSel * 16)
	return Instruction{
		Op:   ORRImm,
		Word: word,
		Rd:   int(bits(word, 4, 0)),
		Rn:   int(bits(word, 9, 5)),
		Imm:  imm,
	}
}

func decodeMUL(word uint32) (Instruction, error) {
	top11 := bits(word, 31, 21)
	if top11 != 0x4D8 {
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24),
			fmt.Sprintf("0x9B word with bits[31:21]=%#x is not MADD", top11))
	}
	ra := int(bits(word, 14, 10))
	if ra != 31 {
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24),
			fmt.Sprintf("MADD with non-zero Ra=%d unsupported", ra))
	}
	return Instruction{
		Op:   MUL,
		Word: word,
		Rd:   int(bits(word, 4, 0)),
		Rn:   int(bits(word, 9, 5)),
		Rm:   int(bits(word, 20, 16)),
		Ra:   ra,
	}, nil
}

func decodeShiftReg(word uint32) (Instruction, error) {
	kind, err := shiftKindFromSelector(bits(word, 15, 10), word)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Op:    ShiftReg,
		Word:  word,
		Rd:    int(bits(word, 4, 0)),
		Rn:    int(bits(word, 9, 5)),
		Rm:    int(bits(word, 20, 16)),
		Shift: kind,
	}, nil
}

func decodeShiftImm(word uint32) (Instruction, error) {
	kind, err := shiftKindFromSelector(bits(word, 23, 22), word)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Op:    ShiftImm,
		Word:  word,
		Rd:    int(bits(word, 4, 0)),
		Rn:    int(bits(word, 9, 5)),
		Imm:   uint64(bits(word, 15, 10)),
		Shift: kind,
	}, nil
}

func shiftKindFromSelector(sel uint32, word uint32) (ShiftKind, error) {
	switch sel {
	case 0:
		return LSL, nil
	case 1:
		return LSR, nil
	case 2:
		return ASR, nil
	default:
		return 0, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24),
			fmt.Sprintf("shift selector %d not recognised", sel))
	}
}

func decodeDivision(word uint32) Instruction {
	op := UDIV
	if bits(word, 10, 10) == 1 {
		op = SDIV
	}
	return Instruction{
		Op:   op,
		Word: word,
		Rd:   int(bits(word, 4, 0)),
		Rn:   int(bits(word, 9, 5)),
		Rm:   int(bits(word, 20, 16)),
	}
}

func decodeBCond(word uint32) Instruction {
	return Instruction{
		Op:   BCond,
		Word: word,
		Cond: int(bits(word, 3, 0)),
		Imm:  uint64(bits(word, 23, 5)),
	}
}

func decodeBranchImm(op Op, word uint32) Instruction {
	return Instruction{Op: op, Word: word, Imm: uint64(bits(word, 25, 0))}
}

func decodeBR(word uint32) (Instruction, error) {
	top11 := bits(word, 31, 21)
	if top11 != 0x6B0 {
		return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24),
			fmt.Sprintf("0xD6 word with bits[31:21]=%#x is not BR", top11))
	}
	return Instruction{Op: BR, Word: word, Rn: int(bits(word, 9, 5))}, nil
}

func decodeSystem(word uint32) (Instruction, error) {
	if word == 0xD503201F {
		return Instruction{Op: NOP, Word: word}, nil
	}
	return Instruction{}, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(word>>24), "unsupported system instruction")
}

func decodeLDRSTRFloat(op Op, word uint32) Instruction {
	return Instruction{
		Op:     op,
		Word:   word,
		Double: bits(word, 22, 22) == 1,
		Rd:     int(bits(word, 4, 0)),
		Rn:     int(bits(word, 9, 5)),
		Imm:    uint64(bits(word, 21, 10)),
	}
}
