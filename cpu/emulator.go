// Package cpu wires the register file, memory, bus and decoder together
// into the fetch-decode-execute engine loop and its three executors,
// grounded on the teacher's arm7tdmi.Run() loop structure.
package cpu

import (
	"github.com/nzcv/armvisor/bus"
	"github.com/nzcv/armvisor/config"
	"github.com/nzcv/armvisor/disasm"
	"github.com/nzcv/armvisor/memory"
	"github.com/nzcv/armvisor/register"
	"github.com/nzcv/armvisor/telemetry"
)

// Emulator is one independent, single-threaded virtual machine: its own
// register file, memory, bus and instruction counters.
type Emulator struct {
	Regs *register.File
	Mem  *memory.Memory
	Bus  *bus.Bus

	cfg        config.Config
	counters   *telemetry.Counters
	disasmSink disasm.Sink
	dashboard  *telemetry.Dashboard
}

// New constructs an Emulator from cfg: a fresh register file, a flat
// memory array sized MemorySize, and a bus with no devices registered yet.
// When cfg.TelemetryEnabled is set, a statsview dashboard is also started
// at cfg.TelemetryAddr; call Close to shut it down.
func New(cfg config.Config) *Emulator {
	mem := memory.New(cfg.MemorySize)
	mem.SetEnforceReadOnly(cfg.EnforceReadOnly)

	e := &Emulator{
		Regs:     register.New(),
		Mem:      mem,
		Bus:      bus.New(mem),
		cfg:      cfg,
		counters: telemetry.NewCounters(),
	}
	if cfg.TelemetryEnabled {
		e.dashboard = telemetry.StartDashboard(cfg.TelemetryAddr)
	}
	return e
}

// Close releases any resources New started on cfg's behalf, currently just
// the optional statsview dashboard.
func (e *Emulator) Close() {
	if e.dashboard != nil {
		e.dashboard.Stop()
	}
}

// Snapshot captures the current register file and memory region map for a
// memviz debug dump.
func (e *Emulator) Snapshot() telemetry.Snapshot {
	return telemetry.Snapshot{Regs: e.Regs, Regions: e.Mem.Regions()}
}

// LoadProgram writes words as little-endian instruction words starting at
// base and sets PC to base.
func (e *Emulator) LoadProgram(base uint64, words []uint32) error {
	if err := e.Bus.WriteBlock(base, words); err != nil {
		return err
	}
	e.Regs.SetPC(base)
	return nil
}

// GetRegister reads general-purpose register i (X0..X30, or XZR at 31).
func (e *Emulator) GetRegister(i int) uint64 { return e.Regs.X(i) }

// SetRegister writes general-purpose register i.
func (e *Emulator) SetRegister(i int, v uint64) { e.Regs.SetX(i, v) }

// GetFloatRegister reads the single-precision (S) view of SIMD/FP register i.
func (e *Emulator) GetFloatRegister(i int) float32 { return e.Regs.S(i) }

// GetDoubleRegister reads the double-precision (D) view of SIMD/FP register i.
func (e *Emulator) GetDoubleRegister(i int) float64 { return e.Regs.D(i) }

// SetFloatRegister writes the single-precision (S) view of SIMD/FP register i.
func (e *Emulator) SetFloatRegister(i int, v float32) { e.Regs.SetS(i, v) }

// SetDoubleRegister writes the double-precision (D) view of SIMD/FP register i.
func (e *Emulator) SetDoubleRegister(i int, v float64) { e.Regs.SetD(i, v) }

// AttachDisasmSink wires an optional step-by-step disassembly trace into
// the engine loop, mirroring the teacher's CartCoProcDisassembler hook.
func (e *Emulator) AttachDisasmSink(s disasm.Sink) { e.disasmSink = s }

// Counters exposes the running instruction/cycle telemetry for a caller
// that wants to introspect a run without attaching the statsview dashboard.
func (e *Emulator) Counters() *telemetry.Counters { return e.counters }
