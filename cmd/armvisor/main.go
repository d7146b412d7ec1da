// Command armvisor is a batch harness for the emulator core: it loads a
// program as a flat stream of 32-bit words, runs it to completion (NOP,
// an error, or the safety bound) and dumps the register file, modelled on
// the teacher's headless -mode FPS / -mode DISASM batch driver.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nzcv/armvisor/config"
	"github.com/nzcv/armvisor/cpu"
	"github.com/nzcv/armvisor/disasm"
	"github.com/nzcv/armvisor/telemetry"
)

func main() {
	program := flag.String("program", "", "path to a program file, one hex instruction word per line")
	base := flag.Uint64("base", 0, "load address and initial PC")
	maxInstructions := flag.Int("max-instructions", 0, "safety bound override (0 keeps the config default)")
	disassemble := flag.Bool("disasm", false, "print a disassembly trace as each instruction executes")
	telemetryAddr := flag.String("telemetry-addr", "", "start a statsview dashboard at this address (empty disables it)")
	dumpGraph := flag.String("dump-graph", "", "write a Graphviz dot dump of final register/memory state to this path")
	flag.Parse()

	if *program == "" {
		fmt.Fprintln(os.Stderr, "* -program is required")
		os.Exit(10)
	}

	words, err := readProgram(*program)
	if err != nil {
		fmt.Fprintln(os.Stderr, "*", err)
		os.Exit(10)
	}

	cfg := config.Default()
	if *maxInstructions > 0 {
		cfg.MaxInstructions = *maxInstructions
	}
	if *telemetryAddr != "" {
		cfg.TelemetryEnabled = true
		cfg.TelemetryAddr = *telemetryAddr
	}

	emu := cpu.New(cfg)
	defer emu.Close()

	if *disassemble {
		emu.AttachDisasmSink(traceSink{})
	}

	if err := emu.LoadProgram(*base, words); err != nil {
		fmt.Fprintln(os.Stderr, "*", err)
		os.Exit(10)
	}

	runErr := emu.Run()
	printRegisters(emu)
	printTelemetry(emu.Counters())

	if *dumpGraph != "" {
		if err := writeGraph(emu, *dumpGraph); err != nil {
			fmt.Fprintln(os.Stderr, "*", err)
		}
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "*", runErr)
		os.Exit(1)
	}
}

// readProgram parses one hex-encoded 32-bit word per non-blank, non-comment
// line. Lines beginning with # are ignored.
func readProgram(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []uint32
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(line, "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		words = append(words, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func printRegisters(emu *cpu.Emulator) {
	fmt.Printf("pc  = %#016x\n", emu.Regs.PC())
	for i := 0; i <= 30; i++ {
		fmt.Printf("x%-2d = %#016x\n", i, emu.GetRegister(i))
	}
	fl := emu.Regs.Flags()
	fmt.Printf("nzcv = N:%v Z:%v C:%v V:%v\n", fl.N, fl.Z, fl.C, fl.V)
}

func printTelemetry(c *telemetry.Counters) {
	fmt.Printf("instructions = %d\n", c.InstructionCount())
	fmt.Printf("cycles       = %d\n", c.CycleCount())
}

func writeGraph(emu *cpu.Emulator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	telemetry.DumpGraph(f, emu.Snapshot())
	return nil
}

type traceSink struct{}

func (traceSink) Step(e disasm.Entry) {
	fmt.Printf("%#08x: %-8s ; %s\n", e.PC, fmt.Sprintf("%#08x", e.Word), e.Text)
}
