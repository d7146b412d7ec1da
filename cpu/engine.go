package cpu

import (
	"fmt"

	"github.com/nzcv/armvisor/decode"
	"github.com/nzcv/armvisor/disasm"
	"github.com/nzcv/armvisor/logger"
	"github.com/nzcv/armvisor/telemetry"
	"github.com/nzcv/armvisor/vmerrors"
)

// Run executes fetch-decode-execute cycles until a NOP is reached, an
// error is raised, or the safety bound trips. Each Run starts with fresh
// counters, so the safety bound applies to this run alone.
func (e *Emulator) Run() error {
	e.counters = telemetry.NewCounters()
	for {
		terminated, err := e.step()
		if err != nil {
			return err
		}
		if terminated {
			return nil
		}
	}
}

// ExecuteOne performs a single fetch-decode-execute cycle, useful for
// stepping. It returns any error raised during that one cycle; a NOP
// encountered mid-step is reported the same way Run reports it (nil
// error, no further stepping implied).
func (e *Emulator) ExecuteOne() error {
	_, err := e.step()
	return err
}

func (e *Emulator) step() (terminated bool, err error) {
	pc := e.Regs.PC()
	if pc%4 != 0 || !e.Mem.IsValidAddress(pc, 4) {
		return false, vmerrors.New(vmerrors.ProgramCounterOutOfBounds, pc)
	}

	word, err := e.Bus.ReadInstruction(pc)
	if err != nil {
		return false, err
	}

	if word == 0 {
		return false, vmerrors.New(vmerrors.UnsupportedInstructionFormat, word, byte(0), "jumped into zeroed memory")
	}

	if word == 0xD503201F {
		logger.Logf(logger.Allow, "engine", "NOP reached at pc=%#x, terminating run", pc)
		return true, nil
	}

	instr, err := decode.Decode(word)
	if err != nil {
		logger.Logf(logger.Allow, "decode", "rejected word %#08x at pc=%#x: %s", word, pc, err.Error())
		return false, err
	}

	oldPC := pc
	if err := e.execute(instr); err != nil {
		return false, err
	}

	if e.Regs.PC() == oldPC {
		e.Regs.SetPC(oldPC + 4)
	}

	e.counters.InstructionExecuted(instr.Op)

	if e.disasmSink != nil {
		e.disasmSink.Step(disasm.Entry{PC: oldPC, Word: word, Text: disasm.Format(word)})
	}

	if e.counters.InstructionCount() >= e.cfg.MaxInstructions {
		logger.Logf(logger.Allow, "engine", "hit safety bound of %d instructions at pc=%#x", e.cfg.MaxInstructions, e.Regs.PC())
		return false, vmerrors.New(vmerrors.DeviceError, fmt.Sprintf("exceeded safety bound of %d instructions", e.cfg.MaxInstructions))
	}

	return false, nil
}

func (e *Emulator) execute(instr decode.Instruction) error {
	switch {
	case instr.Op.IsScalar():
		return e.executeScalar(instr)
	case instr.Op.IsFP():
		return e.executeFP(instr)
	case instr.Op.IsSIMD():
		return e.executeSIMD(instr)
	default:
		return vmerrors.New(vmerrors.UnsupportedInstructionFormat, instr.Word, byte(instr.Word>>24), "decoded op has no executor")
	}
}
