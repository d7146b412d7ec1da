package register

// Flags is the NZCV condition-flag group, unpacked from the high nibble of
// PSTATE for convenient use by the scalar and FP executors.
type Flags struct {
	N bool
	Z bool
	C bool
	V bool
}

// Flags unpacks the current PSTATE into its four condition flags.
func (f *File) Flags() Flags {
	return Flags{
		N: f.pstate&(1<<31) != 0,
		Z: f.pstate&(1<<30) != 0,
		C: f.pstate&(1<<29) != 0,
		V: f.pstate&(1<<28) != 0,
	}
}

// SetFlags packs fl into PSTATE's high nibble (bit 31=N, 30=Z, 29=C, 28=V).
func (f *File) SetFlags(fl Flags) {
	var p uint32
	if fl.N {
		p |= 1 << 31
	}
	if fl.Z {
		p |= 1 << 30
	}
	if fl.C {
		p |= 1 << 29
	}
	if fl.V {
		p |= 1 << 28
	}
	f.pstate = p
}

// PSTATE returns the raw 32-bit PSTATE word.
func (f *File) PSTATE() uint32 { return f.pstate }

// SetPSTATE overwrites the raw 32-bit PSTATE word.
func (f *File) SetPSTATE(val uint32) { f.pstate = val }

// Eval evaluates ARM condition code cond (0-15) against fl, per the
// standard AArch64 truth table. AL is always true, NV always false.
func (fl Flags) Eval(cond int) bool {
	switch cond & 0xF {
	case 0: // EQ
		return fl.Z
	case 1: // NE
		return !fl.Z
	case 2: // CS/HS
		return fl.C
	case 3: // CC/LO
		return !fl.C
	case 4: // MI
		return fl.N
	case 5: // PL
		return !fl.N
	case 6: // VS
		return fl.V
	case 7: // VC
		return !fl.V
	case 8: // HI
		return fl.C && !fl.Z
	case 9: // LS
		return !fl.C || fl.Z
	case 10: // GE
		return fl.N == fl.V
	case 11: // LT
		return fl.N != fl.V
	case 12: // GT
		return !fl.Z && fl.N == fl.V
	case 13: // LE
		return fl.Z || fl.N != fl.V
	case 14: // AL
		return true
	default: // NV
		return false
	}
}
