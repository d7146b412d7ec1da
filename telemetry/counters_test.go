package telemetry_test

import (
	"testing"

	"github.com/nzcv/armvisor/decode"
	"github.com/nzcv/armvisor/telemetry"
)

func TestInstructionExecutedUpdatesCounts(t *testing.T) {
	c := telemetry.NewCounters()
	c.InstructionExecuted(decode.ADDReg)
	c.InstructionExecuted(decode.FADD)
	c.InstructionExecuted(decode.SIMDAdd)

	if got := c.InstructionCount(); got != 3 {
		t.Errorf("InstructionCount() = %d, want 3", got)
	}
	// scalar (1) + fp (3) + simd (2) = 6
	if got := c.CycleCount(); got != 6 {
		t.Errorf("CycleCount() = %d, want 6", got)
	}
	if got := c.FamilyCount(decode.ADDReg); got != 1 {
		t.Errorf("FamilyCount(ADDReg) = %d, want 1", got)
	}
	if got := c.FamilyCount(decode.SUBReg); got != 0 {
		t.Errorf("FamilyCount(SUBReg) = %d, want 0", got)
	}
}

func TestFreshCountersAreZero(t *testing.T) {
	c := telemetry.NewCounters()
	if c.InstructionCount() != 0 || c.CycleCount() != 0 {
		t.Error("new Counters should start at zero")
	}
}
