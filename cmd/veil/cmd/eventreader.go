package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/config"
	"github.com/cwbudde/go-veil/internal/vm"
)

var eventReaderConfig string

var eventReaderCmd = &cobra.Command{
	Use:   "event-reader",
	Short: "Execute one hex opcode per line read from standard input",
	Long: `event-reader reads standard input line by line, treating each
non-blank line as one hex opcode, and executes them in order against a
fresh machine. Execution stops at the first malformed line or once the
machine halts.`,
	RunE: runEventReader,
}

func init() {
	rootCmd.AddCommand(eventReaderCmd)
	eventReaderCmd.Flags().StringVar(&eventReaderConfig, "config", "", "path to veil.yaml")
}

func runEventReader(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(eventReaderConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	state := vm.New(cfg.VM.MemorySize)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		opcode, err := parseOpcode(line)
		if err != nil {
			return err
		}
		fmt.Println(state.Execute(opcode))
		if state.Halted {
			break
		}
	}
	return scanner.Err()
}
