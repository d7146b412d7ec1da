package peripheral

import (
	"fmt"
	"math/rand"

	"github.com/nzcv/armvisor/vmerrors"
)

// RNG register offsets, matching the teacher's STM32-style control/status/
// data register trio.
const (
	RNGControl uint64 = 0x0
	RNGStatus  uint64 = 0x4
	RNGData    uint64 = 0x8
	rngSize    uint64 = 0xC
)

// RNG is a sketch of a hardware random number generator: the control
// register is plain read/write storage, the status register always reads
// as ready (bit 0 set), and the data register returns a fresh random word
// on every read. Writes to status or data are accepted and ignored, per
// the original unit's behaviour.
type RNG struct {
	control uint32
}

// NewRNG returns an RNG with its control register cleared.
func NewRNG() *RNG {
	return &RNG{}
}

// Size reports the span of the RNG's register window.
func (r *RNG) Size() uint64 { return rngSize }

// Read returns the control, status, or a fresh random data word.
func (r *RNG) Read(offset uint64) (uint64, error) {
	switch offset {
	case RNGControl:
		return uint64(r.control), nil
	case RNGStatus:
		return 0b1, nil
	case RNGData:
		return uint64(rand.Uint32()), nil
	default:
		return 0, vmerrors.New(vmerrors.DeviceError, fmt.Sprintf("rng: no register at offset %#x", offset))
	}
}

// Write stores to the control register; writes to status or data are
// accepted and silently discarded.
func (r *RNG) Write(offset uint64, value uint64) error {
	switch offset {
	case RNGControl:
		r.control = uint32(value)
	case RNGStatus, RNGData:
		// read-only in the modelled hardware; accepted and ignored.
	default:
		return vmerrors.New(vmerrors.DeviceError, fmt.Sprintf("rng: no register at offset %#x", offset))
	}
	return nil
}
