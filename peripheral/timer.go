// Package peripheral provides sample memory-mapped devices for the bus,
// adapted from the teacher's LCP2000 Timer and STM32 RNG peripheral
// sketches into the device.Device (Size/Read/Write) shape used here.
package peripheral

import (
	"fmt"

	"github.com/nzcv/armvisor/vmerrors"
)

// Timer register offsets within its mapped window.
const (
	TimerControl uint64 = 0x0
	TimerValue   uint64 = 0x4
	timerSize    uint64 = 0x8
)

// Timer is a free-running counter gated by a control register's enable
// bit, modelled on the LCP2000 timer: writing TimerControl with bit 0 set
// starts it, Step adds elapsed cycles, and TimerValue can be read or
// preloaded directly.
type Timer struct {
	enabled bool
	control uint32
	counter uint32
}

// NewTimer returns a stopped Timer with a zeroed counter.
func NewTimer() *Timer {
	return &Timer{}
}

// Step advances the counter by cycles if the timer is enabled; a no-op
// otherwise. The engine loop is not wired to call this automatically --
// a caller models its own notion of elapsed cycles, e.g. from
// telemetry.Counters.CycleCount.
func (t *Timer) Step(cycles uint32) {
	if !t.enabled {
		return
	}
	t.counter += cycles
}

// Size reports the span of the timer's register window.
func (t *Timer) Size() uint64 { return timerSize }

// Read returns the control or counter register, or an error for any other
// offset within the window.
func (t *Timer) Read(offset uint64) (uint64, error) {
	switch offset {
	case TimerControl:
		return uint64(t.control), nil
	case TimerValue:
		return uint64(t.counter), nil
	default:
		return 0, vmerrors.New(vmerrors.DeviceError, fmt.Sprintf("timer: no register at offset %#x", offset))
	}
}

// Write stores to the control or counter register. Writing TimerControl
// with bit 0 set enables stepping; clearing it stops the timer without
// resetting the counter.
func (t *Timer) Write(offset uint64, value uint64) error {
	switch offset {
	case TimerControl:
		t.control = uint32(value)
		t.enabled = t.control&0x1 == 0x1
	case TimerValue:
		t.counter = uint32(value)
	default:
		return vmerrors.New(vmerrors.DeviceError, fmt.Sprintf("timer: no register at offset %#x", offset))
	}
	return nil
}
