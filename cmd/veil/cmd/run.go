package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/config"
	"github.com/cwbudde/go-veil/internal/vm"
	"github.com/cwbudde/go-veil/internal/vm/opcodes"
)

var (
	runTrace     bool
	runDumpState bool
	runConfig    string
)

var runCmd = &cobra.Command{
	Use:   "run OPCODE...",
	Short: "Execute a sequence of hex opcodes against a fresh machine",
	Long: `run takes one or more hex opcode tokens (e.g. "0x0B" "0x78") and executes
them in order against a fresh vm.State. Execution stops at the first token
that isn't a valid hex byte or once the machine halts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVM,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print per-step IR and assembly names")
	runCmd.Flags().BoolVar(&runDumpState, "dump-state", false, "print the final register/flag state")
	runCmd.Flags().StringVar(&runConfig, "config", "", "path to veil.yaml (built-in defaults if omitted)")
}

func runVM(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(runConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	state := vm.New(cfg.VM.MemorySize)
	for _, tok := range args {
		opcode, err := parseOpcode(tok)
		if err != nil {
			return err
		}
		if runTrace {
			if e, ok := opcodes.Lookup(opcode); ok {
				fmt.Printf("[%s] %s (%s)\n", e.Hex, e.Mnemonic, e.IR)
			} else {
				fmt.Printf("[0x%02X] <unmapped>\n", opcode)
			}
		}
		status := state.Execute(opcode)
		fmt.Println(status)
		if state.Halted {
			break
		}
	}

	if runDumpState {
		dumpState(state)
	}
	return nil
}

func parseOpcode(tok string) (uint8, error) {
	tok = strings.TrimPrefix(strings.TrimSpace(tok), "0x")
	tok = strings.TrimPrefix(tok, "0X")
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid opcode token %q: %w", tok, err)
	}
	return uint8(v), nil
}

func dumpState(s *vm.State) {
	registers, flags := s.Dump()
	fmt.Println("registers:")
	for _, name := range []string{"EAX", "EBX", "ECX", "EDX", "ESI", "EDI", "EBP", "ESP"} {
		fmt.Printf("  %s = 0x%08X\n", name, registers[name])
	}
	fmt.Printf("eip = 0x%08X\n", s.EIP)
	fmt.Println("flags:")
	for _, name := range []string{"ZF", "CF", "SF", "OF", "PF", "AF"} {
		fmt.Printf("  %s = %v\n", name, flags[name])
	}
	fmt.Printf("halted = %v\n", s.Halted)
}
