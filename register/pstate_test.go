package register_test

import (
	"testing"

	"github.com/nzcv/armvisor/register"
)

func TestConditionCodes(t *testing.T) {
	cases := []struct {
		name  string
		flags register.Flags
		cond  int
		want  bool
	}{
		{"EQ true", register.Flags{Z: true}, 0, true},
		{"EQ false", register.Flags{Z: false}, 0, false},
		{"NE", register.Flags{Z: false}, 1, true},
		{"CS", register.Flags{C: true}, 2, true},
		{"CC", register.Flags{C: false}, 3, true},
		{"MI", register.Flags{N: true}, 4, true},
		{"PL", register.Flags{N: false}, 5, true},
		{"VS", register.Flags{V: true}, 6, true},
		{"VC", register.Flags{V: false}, 7, true},
		{"HI", register.Flags{C: true, Z: false}, 8, true},
		{"HI false on zero", register.Flags{C: true, Z: true}, 8, false},
		{"LS", register.Flags{C: false}, 9, true},
		{"GE", register.Flags{N: true, V: true}, 10, true},
		{"LT", register.Flags{N: true, V: false}, 11, true},
		{"GT", register.Flags{Z: false, N: true, V: true}, 12, true},
		{"LE on zero", register.Flags{Z: true}, 13, true},
		{"AL always true", register.Flags{}, 14, true},
		{"NV always false", register.Flags{N: true, Z: true, C: true, V: true}, 15, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.flags.Eval(c.cond); got != c.want {
				t.Errorf("Eval(%d) with %+v = %v, want %v", c.cond, c.flags, got, c.want)
			}
		})
	}
}

func TestPSTATEPacking(t *testing.T) {
	f := register.New()
	f.SetFlags(register.Flags{N: true, Z: true, C: true, V: true})
	if f.PSTATE() != 0xF0000000 {
		t.Errorf("PSTATE() = %#x, want 0xf0000000", f.PSTATE())
	}
}
