package bus_test

import (
	"errors"
	"testing"

	"github.com/nzcv/armvisor/bus"
	"github.com/nzcv/armvisor/memory"
)

type fakeDevice struct {
	size  uint64
	store map[uint64]uint64
}

func newFakeDevice(size uint64) *fakeDevice {
	return &fakeDevice{size: size, store: make(map[uint64]uint64)}
}

func (d *fakeDevice) Size() uint64 { return d.size }

func (d *fakeDevice) Read(offset uint64) (uint64, error) {
	if offset >= d.size {
		return 0, errors.New("offset out of range")
	}
	return d.store[offset], nil
}

func (d *fakeDevice) Write(offset uint64, value uint64) error {
	if offset >= d.size {
		return errors.New("offset out of range")
	}
	d.store[offset] = value
	return nil
}

func TestBusFallsThroughToMemory(t *testing.T) {
	mem := memory.New(64)
	b := bus.New(mem)
	if err := b.Write(8, 42, 4); err != nil {
		t.Fatal(err)
	}
	got, err := b.Read(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestBusRoutesToDevice(t *testing.T) {
	mem := memory.New(0x4000)
	b := bus.New(mem)
	dev := newFakeDevice(16)
	if err := b.RegisterDevice(0x1000, dev); err != nil {
		t.Fatal(err)
	}

	if err := b.Write(0x1004, 99, 4); err != nil {
		t.Fatal(err)
	}
	if dev.store[4] != 99 {
		t.Errorf("device offset 4 = %d, want 99", dev.store[4])
	}

	got, err := b.Read(0x1004, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 99 {
		t.Errorf("got %d, want 99", got)
	}

	// Address outside the device's range still reaches memory.
	if err := b.Write(0x2000, 7, 4); err != nil {
		t.Fatal(err)
	}
}

func TestBusWithoutMemoryErrorsOutsideDevices(t *testing.T) {
	b := bus.New(nil)
	if _, err := b.Read(0, 4); err == nil {
		t.Error("expected an error with no memory backing and no device match")
	}
}
