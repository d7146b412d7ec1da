package cpu_test

// Word-encoding helpers for hand-built ARM64 test programs, matching the
// bit-field conventions decode.Decode expects. These exist only so test
// cases read as "movz x0, #10" rather than raw hex literals.

func encMOVZ(rd int, imm16 uint32) uint32 {
	return 0xD2000000 | (imm16 << 5) | uint32(rd)
}

func encADDImm(rd, rn int, imm12 uint32) uint32 {
	return 0x91000000 | (imm12 << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encSUBImm(rd, rn int, imm12 uint32) uint32 {
	return 0xD1000000 | (imm12 << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encRRR(top byte, rd, rn, rm int) uint32 {
	return uint32(top)<<24 | (uint32(rm) << 16) | (uint32(rn) << 5) | uint32(rd)
}

func encADDReg(rd, rn, rm int) uint32 { return encRRR(0x8B, rd, rn, rm) }
func encSUBReg(rd, rn, rm int) uint32 { return encRRR(0xCB, rd, rn, rm) }
func encSUBSReg(rd, rn, rm int) uint32 { return encRRR(0xEB, rd, rn, rm) }
func encANDReg(rd, rn, rm int) uint32 { return encRRR(0x8A, rd, rn, rm) }
func encORRReg(rd, rn, rm int) uint32 { return encRRR(0xAA, rd, rn, rm) }
func encEORReg(rd, rn, rm int) uint32 { return encRRR(0xCA, rd, rn, rm) }

func encMUL(rd, rn, rm int) uint32 {
	return uint32(0x4D8)<<21 | (uint32(rm) << 16) | (31 << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encUDIV(rd, rn, rm int) uint32 {
	return 0x9A000000 | (uint32(rm) << 16) | (uint32(rn) << 5) | uint32(rd)
}

func encSDIV(rd, rn, rm int) uint32 {
	return 0x9A000000 | (uint32(rm) << 16) | (1 << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encShiftImm(rd, rn int, sel, amount uint32) uint32 {
	return 0xD4000000 | (sel << 22) | (amount << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encShiftReg(rd, rn, rm int, sel uint32) uint32 {
	return 0xAB000000 | (uint32(rm) << 16) | (sel << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encBCond(cond int, imm19 uint32) uint32 {
	return 0x54000000 | (imm19 << 5) | uint32(cond)
}

func encB(imm26 uint32) uint32  { return 0x14000000 | imm26 }
func encBL(imm26 uint32) uint32 { return 0x17000000 | imm26 }

func encBR(rn int) uint32 {
	return 0xD61F0000 | (uint32(rn) << 5)
}

const encNOP uint32 = 0xD503201F

func encFBinOp(pattern uint32, double bool, rd, rn, rm int) uint32 {
	word := pattern | (uint32(rm) << 16) | (uint32(rn) << 5) | uint32(rd)
	if double {
		word |= 1 << 22
	}
	return word
}

func encFADD(double bool, rd, rn, rm int) uint32 { return encFBinOp(0x1E202800, double, rd, rn, rm) }
func encFSUB(double bool, rd, rn, rm int) uint32 { return encFBinOp(0x1E203800, double, rd, rn, rm) }
func encFMUL(double bool, rd, rn, rm int) uint32 { return encFBinOp(0x1E200800, double, rd, rn, rm) }
func encFDIV(double bool, rd, rn, rm int) uint32 { return encFBinOp(0x1E201800, double, rd, rn, rm) }

func encFMOVReg(double bool, rd, rn int) uint32 {
	word := uint32(0x1E204000) | (uint32(rn) << 5) | uint32(rd)
	if double {
		word |= 1 << 22
	}
	return word
}

func encFMOVIntToFP(double bool, rd, rn int) uint32 {
	if double {
		return 0x9E270000 | (uint32(rn) << 5) | uint32(rd)
	}
	return 0x1E270000 | (uint32(rn) << 5) | uint32(rd)
}

func encFMOVFPToInt(double bool, rd, rn int) uint32 {
	if double {
		return 0x9E260000 | (uint32(rn) << 5) | uint32(rd)
	}
	return 0x1E260000 | (uint32(rn) << 5) | uint32(rd)
}

func encSCVTF(double, signed bool, rd, rn int) uint32 {
	word := uint32(0x1E220000) | (uint32(rn) << 5) | uint32(rd)
	if double {
		word |= 1 << 22
	}
	if !signed {
		word |= 1 << 16
	}
	return word
}

func encFCVTZS(double, signed bool, rd, rn int) uint32 {
	word := uint32(0x1E380000) | (uint32(rn) << 5) | uint32(rd)
	if double {
		word |= 1 << 22
	}
	if !signed {
		word |= 1 << 16
	}
	return word
}

func encFCVT(srcType, dstType uint32, rd, rn int) uint32 {
	return 0x1E008000 | (dstType << 22) | (srcType << 16) | (uint32(rn) << 5) | uint32(rd)
}

func encFCMP(double bool, rn, rm int) uint32 {
	word := uint32(0x1E202008) | (uint32(rm) << 16) | (uint32(rn) << 5)
	if double {
		word |= 1 << 22
	}
	return word
}

func encLDRFloat(double bool, rd, rn int, imm12 uint32) uint32 {
	word := uint32(0xBD000000) | (imm12 << 10) | (uint32(rn) << 5) | uint32(rd)
	if double {
		word |= 1 << 22
	}
	return word
}

func encSTRFloat(double bool, rd, rn int, imm12 uint32) uint32 {
	word := uint32(0xFD000000) | (imm12 << 10) | (uint32(rn) << 5) | uint32(rd)
	if double {
		word |= 1 << 22
	}
	return word
}

func encSIMDArith(subop uint32, elementSizeSel uint32, rd, rn, rm int) uint32 {
	return 0x4E000000 | (elementSizeSel << 22) | (uint32(rm) << 16) | (subop << 10) | (uint32(rn) << 5) | uint32(rd)
}

func encSIMDAdd(sizeSel uint32, rd, rn, rm int) uint32 { return encSIMDArith(0x0A, sizeSel, rd, rn, rm) }
func encSIMDSub(sizeSel uint32, rd, rn, rm int) uint32 { return encSIMDArith(0x09, sizeSel, rd, rn, rm) }
func encSIMDMul(sizeSel uint32, rd, rn, rm int) uint32 { return encSIMDArith(0x07, sizeSel, rd, rn, rm) }
func encSIMDAnd(rd, rn, rm int) uint32                 { return encSIMDArith(0x01, 0, rd, rn, rm) }
func encSIMDOr(rd, rn, rm int) uint32                  { return encSIMDArith(0x02, 0, rd, rn, rm) }
func encSIMDXor(rd, rn, rm int) uint32                 { return encSIMDArith(0x03, 0, rd, rn, rm) }
func encSIMDMov(rd, rn int) uint32                     { return encSIMDArith(0x02, 0, rd, rn, rn) }

func encSIMDDup(sizeSel uint32, lane uint32, rd, rn int) uint32 {
	return 0x4E000000 | (sizeSel << 22) | (0x04 << 10) | (lane << 16) | (uint32(rn) << 5) | uint32(rd)
}

func encSIMDLD1(rd, rn int, postIncrement bool) uint32 {
	word := uint32(0x4C000000) | (1 << 22) | (uint32(rn) << 5) | uint32(rd)
	if postIncrement {
		word |= 1 << 23
	}
	return word
}

func encSIMDST1(rd, rn int, postIncrement bool) uint32 {
	word := uint32(0x4C000000) | (uint32(rn) << 5) | uint32(rd)
	if postIncrement {
		word |= 1 << 23
	}
	return word
}

func encSIMDExtract(lane uint32, rd, rn int) uint32 {
	return 0x0D000000 | (lane << 10) | (uint32(rn) << 5) | uint32(rd)
}
