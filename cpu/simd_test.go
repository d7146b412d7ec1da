package cpu_test

import "testing"

func TestSIMDAddWrapsPerLane(t *testing.T) {
	emu := newEmulator(t)
	for lane := 0; lane < 4; lane++ {
		emu.Regs.SetVLane(0, lane, 4, 0xFFFFFFFF)
		emu.Regs.SetVLane(1, lane, 4, 1)
	}
	run(t, emu, encSIMDAdd(2, 2, 0, 1)) // elementSizeSel=2 -> 4-byte lanes
	for lane := 0; lane < 4; lane++ {
		if got := emu.Regs.VLane(2, lane, 4); got != 0 {
			t.Errorf("lane %d = %#x, want 0 (wrapped)", lane, got)
		}
	}
}

func TestSIMDSubByteLanes(t *testing.T) {
	emu := newEmulator(t)
	for lane := 0; lane < 16; lane++ {
		emu.Regs.SetVLane(0, lane, 1, 5)
		emu.Regs.SetVLane(1, lane, 1, 2)
	}
	run(t, emu, encSIMDSub(0, 2, 0, 1)) // sizeSel=0 -> byte lanes
	for lane := 0; lane < 16; lane++ {
		if got := emu.Regs.VLane(2, lane, 1); got != 3 {
			t.Errorf("lane %d = %d, want 3", lane, got)
		}
	}
}

func TestSIMDMulRejectsDoublewordElements(t *testing.T) {
	emu := newEmulator(t)
	if err := emu.LoadProgram(0, []uint32{encSIMDMul(3, 2, 0, 1), encNOP}); err != nil {
		t.Fatal(err)
	}
	if err := emu.Run(); err == nil {
		t.Error("expected an error for doubleword SIMD MUL")
	}
}

func TestSIMDAndOrXorWholeRegister(t *testing.T) {
	emu := newEmulator(t)
	var a, b [16]byte
	for i := range a {
		a[i] = 0xF0
		b[i] = 0x0F
	}
	emu.Regs.SetVBytes(0, a)
	emu.Regs.SetVBytes(1, b)
	run(t, emu, encSIMDAnd(2, 0, 1), encSIMDOr(3, 0, 1), encSIMDXor(4, 0, 1))
	and := emu.Regs.VBytes(2)
	or := emu.Regs.VBytes(3)
	xor := emu.Regs.VBytes(4)
	for i := 0; i < 16; i++ {
		if and[i] != 0x00 {
			t.Fatalf("and[%d] = %#x, want 0", i, and[i])
		}
		if or[i] != 0xFF {
			t.Fatalf("or[%d] = %#x, want 0xFF", i, or[i])
		}
		if xor[i] != 0xFF {
			t.Fatalf("xor[%d] = %#x, want 0xFF", i, xor[i])
		}
	}
}

func TestSIMDMovAliasCopiesRegister(t *testing.T) {
	emu := newEmulator(t)
	var b [16]byte
	for i := range b {
		b[i] = byte(i)
	}
	emu.Regs.SetVBytes(1, b)
	run(t, emu, encSIMDMov(2, 1))
	if got := emu.Regs.VBytes(2); got != b {
		t.Errorf("v2 = %v, want %v", got, b)
	}
}

func TestSIMDDupBroadcastsLane(t *testing.T) {
	emu := newEmulator(t)
	emu.Regs.SetVLane(0, 1, 4, 0xAABBCCDD) // lane 1 of 4-byte lanes
	run(t, emu, encSIMDDup(2, 1, 1, 0))    // sizeSel=2 (4-byte), lane=1
	for lane := 0; lane < 4; lane++ {
		if got := emu.Regs.VLane(1, lane, 4); got != 0xAABBCCDD {
			t.Errorf("lane %d = %#x, want 0xaabbccdd", lane, got)
		}
	}
}

func TestSIMDDupOutOfRangeLaneErrors(t *testing.T) {
	emu := newEmulator(t)
	// sizeSel=3 -> 8-byte lanes, so only lanes 0-1 exist; lane=5 is invalid.
	if err := emu.LoadProgram(0, []uint32{encSIMDDup(3, 5, 1, 0), encNOP}); err != nil {
		t.Fatal(err)
	}
	if err := emu.Run(); err == nil {
		t.Error("expected an error for an out-of-range DUP lane")
	}
}

func TestSIMDExtractReadsByteLane(t *testing.T) {
	emu := newEmulator(t)
	emu.Regs.SetVLane(1, 3, 1, 0x7A)
	run(t, emu, encSIMDExtract(3, 0, 1))
	if got := emu.GetRegister(0); got != 0x7A {
		t.Errorf("x0 = %#x, want 0x7a", got)
	}
}

func TestSIMDST1AndLD1RoundTrip(t *testing.T) {
	emu := newEmulator(t)
	var b [16]byte
	for i := range b {
		b[i] = byte(i + 1)
	}
	emu.Regs.SetVBytes(0, b)
	emu.SetRegister(1, 128) // base address well clear of the program
	run(t, emu, encSIMDST1(0, 1, false), encSIMDLD1(2, 1, false))
	if got := emu.Regs.VBytes(2); got != b {
		t.Errorf("v2 = %v, want %v", got, b)
	}
}

func TestSIMDLD1PostIncrementAdvancesAddress(t *testing.T) {
	emu := newEmulator(t)
	emu.SetRegister(1, 128)
	run(t, emu, encSIMDLD1(0, 1, true))
	if got := emu.GetRegister(1); got != 128+16 {
		t.Errorf("x1 = %d, want %d (post-incremented)", got, 128+16)
	}
}
