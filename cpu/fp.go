package cpu

import (
	"math"

	"github.com/nzcv/armvisor/decode"
	"github.com/nzcv/armvisor/register"
	"github.com/nzcv/armvisor/vmerrors"
)

// executeFP implements the floating-point family: FADD/FSUB/FMUL/FDIV,
// FMOV in its three forms, SCVTF/FCVTZS, FCVT S<->D, FCMP, and float
// LDR/STR. Divide-by-zero and NaN comparisons are architectural results,
// not errors (spec.md §7).
func (e *Emulator) executeFP(instr decode.Instruction) error {
	switch instr.Op {
	case decode.FADD:
		e.fpBinOp(instr, func(a, b float64) float64 { return a + b })
	case decode.FSUB:
		e.fpBinOp(instr, func(a, b float64) float64 { return a - b })
	case decode.FMUL:
		e.fpBinOp(instr, func(a, b float64) float64 { return a * b })
	case decode.FDIV:
		e.fpDivide(instr)

	case decode.FMOVReg:
		if instr.Double {
			e.Regs.SetD(instr.Rd, e.Regs.D(instr.Rn))
		} else {
			e.Regs.SetS(instr.Rd, e.Regs.S(instr.Rn))
		}

	case decode.FMOVIntToFP:
		if instr.Double {
			e.Regs.SetVLane(instr.Rd, 0, 8, e.Regs.X(instr.Rn))
		} else {
			e.Regs.SetVLane(instr.Rd, 0, 4, e.Regs.X(instr.Rn)&0xFFFFFFFF)
		}

	case decode.FMOVFPToInt:
		if instr.Double {
			e.Regs.SetX(instr.Rd, e.Regs.VLane(instr.Rn, 0, 8))
		} else {
			e.Regs.SetX(instr.Rd, e.Regs.VLane(instr.Rn, 0, 4))
		}

	case decode.SCVTF:
		e.executeSCVTF(instr)

	case decode.FCVTZS:
		e.executeFCVTZS(instr)

	case decode.FCVT:
		switch {
		case instr.SrcType == 0 && instr.DstType == 1:
			e.Regs.SetD(instr.Rd, float64(e.Regs.S(instr.Rn)))
		case instr.SrcType == 1 && instr.DstType == 0:
			e.Regs.SetS(instr.Rd, float32(e.Regs.D(instr.Rn)))
		default:
			return vmerrors.New(vmerrors.UnsupportedInstructionFormat, instr.Word, byte(instr.Word>>24), "unsupported FCVT type combination")
		}

	case decode.FCMP:
		var a, b float64
		if instr.Double {
			a, b = e.Regs.D(instr.Rn), e.Regs.D(instr.Rm)
		} else {
			a, b = float64(e.Regs.S(instr.Rn)), float64(e.Regs.S(instr.Rm))
		}
		e.Regs.SetFlags(fcmpFlags(a, b))

	case decode.LDRFloat:
		size := fpTransferSize(instr.Double)
		addr := e.Regs.X(instr.Rn) + instr.Imm*4
		val, err := e.Bus.Read(addr, size)
		if err != nil {
			return err
		}
		e.Regs.SetVLane(instr.Rd, 0, size, val)

	case decode.STRFloat:
		size := fpTransferSize(instr.Double)
		addr := e.Regs.X(instr.Rn) + instr.Imm*4
		return e.Bus.Write(addr, e.Regs.VLane(instr.Rd, 0, size), size)

	default:
		return vmerrors.New(vmerrors.UnsupportedInstructionFormat, instr.Word, byte(instr.Word>>24), "floating-point op not implemented")
	}
	return nil
}

func fpTransferSize(double bool) int {
	if double {
		return 8
	}
	return 4
}

func (e *Emulator) fpBinOp(instr decode.Instruction, op func(a, b float64) float64) {
	if instr.Double {
		e.Regs.SetD(instr.Rd, op(e.Regs.D(instr.Rn), e.Regs.D(instr.Rm)))
	} else {
		a, b := float64(e.Regs.S(instr.Rn)), float64(e.Regs.S(instr.Rm))
		e.Regs.SetS(instr.Rd, float32(op(a, b)))
	}
}

// fpDivide produces a signed infinity and sets FPSR's cumulative
// divide-by-zero flag (bit 0) when the divisor is zero, per spec.md §4.8.
func (e *Emulator) fpDivide(instr decode.Instruction) {
	if instr.Double {
		a, b := e.Regs.D(instr.Rn), e.Regs.D(instr.Rm)
		if b == 0 {
			e.Regs.SetFPSRDivByZero()
			e.Regs.SetD(instr.Rd, math.Copysign(math.Inf(1), a))
			return
		}
		e.Regs.SetD(instr.Rd, a/b)
		return
	}
	a, b := e.Regs.S(instr.Rn), e.Regs.S(instr.Rm)
	if b == 0 {
		e.Regs.SetFPSRDivByZero()
		e.Regs.SetS(instr.Rd, float32(math.Copysign(math.Inf(1), float64(a))))
		return
	}
	e.Regs.SetS(instr.Rd, a/b)
}

func (e *Emulator) executeSCVTF(instr decode.Instruction) {
	if instr.Signed {
		v := int64(e.Regs.X(instr.Rn))
		if instr.Double {
			e.Regs.SetD(instr.Rd, float64(v))
		} else {
			e.Regs.SetS(instr.Rd, float32(v))
		}
		return
	}
	v := e.Regs.X(instr.Rn)
	if instr.Double {
		e.Regs.SetD(instr.Rd, float64(v))
	} else {
		e.Regs.SetS(instr.Rd, float32(v))
	}
}

func (e *Emulator) executeFCVTZS(instr decode.Instruction) {
	var v float64
	if instr.Double {
		v = e.Regs.D(instr.Rn)
	} else {
		v = float64(e.Regs.S(instr.Rn))
	}
	truncated := math.Trunc(v)
	if instr.Signed {
		e.Regs.SetX(instr.Rd, uint64(int64(truncated)))
	} else {
		e.Regs.SetX(instr.Rd, uint64(truncated))
	}
}

// fcmpFlags implements the ordered-comparison NZCV rule of spec.md §4.8:
// unordered (either operand NaN) sets both C and V.
func fcmpFlags(a, b float64) register.Flags {
	if math.IsNaN(a) || math.IsNaN(b) {
		return register.Flags{N: false, Z: false, C: true, V: true}
	}
	switch {
	case a == b:
		return register.Flags{N: false, Z: true, C: true, V: false}
	case a < b:
		return register.Flags{N: true, Z: false, C: false, V: false}
	default:
		return register.Flags{N: false, Z: false, C: true, V: false}
	}
}
