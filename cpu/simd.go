package cpu

import (
	"fmt"

	"github.com/nzcv/armvisor/decode"
	"github.com/nzcv/armvisor/vmerrors"
)

// executeSIMD implements lane-wise arithmetic/logical ops, DUP, LD1/ST1,
// register move, and extract-to-scalar over the 128-bit V registers.
func (e *Emulator) executeSIMD(instr decode.Instruction) error {
	switch instr.Op {
	case decode.SIMDAdd, decode.SIMDSub, decode.SIMDMul:
		e.simdArith(instr)

	case decode.SIMDAnd:
		e.simdLogical(instr, func(a, b byte) byte { return a & b })
	case decode.SIMDOr:
		e.simdLogical(instr, func(a, b byte) byte { return a | b })
	case decode.SIMDXor:
		e.simdLogical(instr, func(a, b byte) byte { return a ^ b })

	case decode.SIMDDup:
		lanes := 16 / instr.ElementSize
		if instr.Lane >= lanes {
			return vmerrors.New(vmerrors.UnsupportedInstructionFormat, instr.Word, byte(instr.Word>>24),
				fmt.Sprintf("DUP lane %d out of range for element size %d", instr.Lane, instr.ElementSize))
		}
		val := e.Regs.VLane(instr.Rn, instr.Lane, instr.ElementSize)
		for lane := 0; lane < lanes; lane++ {
			e.Regs.SetVLane(instr.Rd, lane, instr.ElementSize, val)
		}

	case decode.SIMDLD1:
		addr := e.Regs.X(instr.Rn)
		var block [16]byte
		for i := 0; i < 16; i++ {
			b, err := e.Bus.Read(addr+uint64(i), 1)
			if err != nil {
				return err
			}
			block[i] = byte(b)
		}
		e.Regs.SetVBytes(instr.Rd, block)
		if instr.PostIncrement {
			e.Regs.SetX(instr.Rn, addr+16)
		}

	case decode.SIMDST1:
		addr := e.Regs.X(instr.Rn)
		block := e.Regs.VBytes(instr.Rd)
		for i := 0; i < 16; i++ {
			if err := e.Bus.Write(addr+uint64(i), uint64(block[i]), 1); err != nil {
				return err
			}
		}
		if instr.PostIncrement {
			e.Regs.SetX(instr.Rn, addr+16)
		}

	case decode.SIMDMov:
		e.Regs.SetVBytes(instr.Rd, e.Regs.VBytes(instr.Rn))

	case decode.SIMDExtract:
		e.Regs.SetX(instr.Rd, e.Regs.VLane(instr.Rn, instr.Lane, 1))

	default:
		return vmerrors.New(vmerrors.UnsupportedInstructionFormat, instr.Word, byte(instr.Word>>24), "SIMD op not implemented")
	}
	return nil
}

func (e *Emulator) simdArith(instr decode.Instruction) {
	lanes := 16 / instr.ElementSize
	mask := elementMask(instr.ElementSize)
	for lane := 0; lane < lanes; lane++ {
		a := e.Regs.VLane(instr.Rn, lane, instr.ElementSize)
		b := e.Regs.VLane(instr.Rm, lane, instr.ElementSize)
		var result uint64
		switch instr.Op {
		case decode.SIMDAdd:
			result = (a + b) & mask
		case decode.SIMDSub:
			result = (a - b) & mask
		case decode.SIMDMul:
			result = (a * b) & mask
		}
		e.Regs.SetVLane(instr.Rd, lane, instr.ElementSize, result)
	}
}

func (e *Emulator) simdLogical(instr decode.Instruction, op func(a, b byte) byte) {
	a := e.Regs.VBytes(instr.Rn)
	b := e.Regs.VBytes(instr.Rm)
	var out [16]byte
	for i := range out {
		out[i] = op(a[i], b[i])
	}
	e.Regs.SetVBytes(instr.Rd, out)
}

func elementMask(size int) uint64 {
	if size >= 8 {
		return ^uint64(0)
	}
	return uint64(1)<<(8*size) - 1
}
