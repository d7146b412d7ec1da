package cpu

import (
	"math"

	"github.com/nzcv/armvisor/decode"
	"github.com/nzcv/armvisor/register"
	"github.com/nzcv/armvisor/vmerrors"
)

// executeScalar implements the integer ALU, shift, division and branch
// families, plus MOVZ and NOP. Register index 31 is handled uniformly as
// XZR/WZR by register.File itself (Decision D5): every SetX(31, ...) call
// below is silently discarded without special-casing here.
func (e *Emulator) executeScalar(instr decode.Instruction) error {
	switch instr.Op {
	case decode.MOVZ:
		e.Regs.SetX(instr.Rd, instr.Imm)

	case decode.ADDImm:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)+instr.Imm)
	case decode.ADDReg:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)+e.Regs.X(instr.Rm))
	case decode.SUBReg:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)-e.Regs.X(instr.Rm))
	case decode.SUBImm:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)-instr.Imm)

	case decode.SUBSReg:
		a := e.Regs.X(instr.Rn)
		b := e.Regs.X(instr.Rm)
		result := a - b
		e.Regs.SetFlags(subFlags(a, b, result))
		e.Regs.SetX(instr.Rd, result)

	case decode.MUL:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)*e.Regs.X(instr.Rm))

	case decode.ANDReg:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)&e.Regs.X(instr.Rm))
	case decode.ORRReg:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)|e.Regs.X(instr.Rm))
	case decode.ORRImm:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)|instr.Imm)
	case decode.EORReg:
		e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)^e.Regs.X(instr.Rm))

	case decode.ShiftReg:
		e.Regs.SetX(instr.Rd, shiftValue(e.Regs.X(instr.Rn), instr.Shift, e.Regs.X(instr.Rm)))
	case decode.ShiftImm:
		e.Regs.SetX(instr.Rd, shiftValue(e.Regs.X(instr.Rn), instr.Shift, instr.Imm))

	case decode.UDIV:
		divisor := e.Regs.X(instr.Rm)
		if divisor == 0 {
			e.Regs.SetX(instr.Rd, 0)
		} else {
			e.Regs.SetX(instr.Rd, e.Regs.X(instr.Rn)/divisor)
		}

	case decode.SDIV:
		n := int64(e.Regs.X(instr.Rn))
		d := int64(e.Regs.X(instr.Rm))
		switch {
		case d == 0:
			e.Regs.SetX(instr.Rd, 0)
		case n == math.MinInt64 && d == -1:
			e.Regs.SetX(instr.Rd, uint64(n)) // clamp, avoids host trap
		default:
			e.Regs.SetX(instr.Rd, uint64(n/d))
		}

	case decode.BCond:
		if e.Regs.Flags().Eval(instr.Cond) {
			e.branchBy(signExtend(instr.Imm, 19) * 4)
		}

	case decode.B:
		e.branchBy(signExtend(instr.Imm, 26) * 4)

	case decode.BL:
		e.Regs.SetX(30, e.Regs.PC()+4)
		e.branchBy(signExtend(instr.Imm, 26) * 4)

	case decode.BR:
		// Decision D3: PC is set directly; the engine loop detects PC has
		// already moved and skips its own +4 advance.
		e.Regs.SetPC(e.Regs.X(instr.Rn))

	case decode.NOP:
		// The engine loop intercepts the NOP word before decode ever runs;
		// reaching here is unreachable in practice.

	default:
		return vmerrors.New(vmerrors.UnsupportedInstructionFormat, instr.Word, byte(instr.Word>>24), "scalar op not implemented")
	}
	return nil
}

func (e *Emulator) branchBy(offset int64) {
	e.Regs.SetPC(uint64(int64(e.Regs.PC()) + offset))
}

func shiftValue(v uint64, kind decode.ShiftKind, amount uint64) uint64 {
	amount &= 0x3F
	switch kind {
	case decode.LSL:
		return v << amount
	case decode.LSR:
		return v >> amount
	case decode.ASR:
		return uint64(int64(v) >> amount)
	default:
		return v
	}
}

// signExtend sign-extends the low bits-wide field of v to a 64-bit signed
// offset, per spec.md §4.5's branch-offset rule.
func signExtend(v uint64, width int) int64 {
	shiftAmt := uint(64 - width)
	return int64(v<<shiftAmt) >> shiftAmt
}

// subFlags computes NZCV for a subtraction result=a-b, per spec.md §4.3.
func subFlags(a, b, result uint64) register.Flags {
	signA := a&(1<<63) != 0
	signB := b&(1<<63) != 0
	signR := result&(1<<63) != 0
	return register.Flags{
		N: signR,
		Z: result == 0,
		C: a >= b,
		V: (signA != signB) && (signA != signR),
	}
}
