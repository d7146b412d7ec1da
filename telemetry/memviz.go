package telemetry

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/nzcv/armvisor/memory"
	"github.com/nzcv/armvisor/register"
)

// Snapshot is the subset of emulator state a debug dump walks: the register
// file and the memory region map (not the backing byte array itself, which
// would dwarf the graph for any realistically sized address space).
type Snapshot struct {
	Regs    *register.File
	Regions []memory.Region
}

// DumpGraph renders snap as a Graphviz dot graph via memviz, the way a
// caller might dump a decoder's internal tables for inspection. This is
// brought in fresh rather than adapted from a teacher call site, since
// memviz is carried in the teacher's go.mod but never actually invoked
// there -- it still belongs to the same debugging-aid family as the
// dashboard and deserves a wired home rather than a silent drop.
func DumpGraph(w io.Writer, snap Snapshot) {
	memviz.Map(w, &snap)
}
