// Package telemetry tracks per-run instruction/cycle counters and offers
// two optional, independent diagnostics aids wired onto the teacher's own
// go-echarts/statsview and bradleyjkemp/memviz dependencies: a live
// throughput dashboard and a Graphviz dump of emulator state. Neither is
// required for correct emulation; Counters alone is always kept current.
package telemetry

import (
	"sync"

	"github.com/nzcv/armvisor/decode"
)

// Counters accumulates the running instruction count, a cycle total
// weighted by instruction family (matching the teacher's N/I/S cycle-class
// bookkeeping in cycles_arm7tdmi.go), and a per-family dispatch tally.
type Counters struct {
	mu               sync.Mutex
	instructionCount int
	cycleCount       int
	perFamily        map[decode.Op]int
}

// NewCounters returns a zeroed Counters ready for one emulator run.
func NewCounters() *Counters {
	return &Counters{perFamily: make(map[decode.Op]int)}
}

// InstructionExecuted records that one instruction of the given family
// completed, updating the instruction count, family tally and cycle total.
func (c *Counters) InstructionExecuted(op decode.Op) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instructionCount++
	c.cycleCount += cyclesFor(op)
	c.perFamily[op]++
}

// InstructionCount returns the total instructions executed so far.
func (c *Counters) InstructionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instructionCount
}

// CycleCount returns the weighted cycle total accumulated so far.
func (c *Counters) CycleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cycleCount
}

// FamilyCount returns how many instructions of op have executed so far.
func (c *Counters) FamilyCount(op decode.Op) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.perFamily[op]
}

// cyclesFor assigns a cycle weight per instruction family: scalar ops cost
// one cycle, SIMD ops two (wider register file access), FP ops three
// (host float-unit latency) -- the same coarse N/I/S-class grouping the
// teacher's ARM core applies, just keyed by our own family taxonomy rather
// than Thumb-2 opcode class.
func cyclesFor(op decode.Op) int {
	switch {
	case op.IsFP():
		return 3
	case op.IsSIMD():
		return 2
	default:
		return 1
	}
}
