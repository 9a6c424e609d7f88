package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/vm/opcodes"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup OPCODE",
	Short: "Look up a single hex opcode in the reference table",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		opcode, err := parseOpcode(args[0])
		if err != nil {
			return err
		}
		e, ok := opcodes.Lookup(opcode)
		if !ok {
			color.New(color.FgYellow).Printf("no table entry for 0x%02X\n", opcode)
			return nil
		}
		fmt.Printf("opcode:   %s\n", e.Hex)
		fmt.Printf("binary:   %s\n", e.Bin)
		fmt.Printf("ir:       %s\n", e.IR)
		fmt.Printf("mnemonic: %s\n", e.Mnemonic)
		fmt.Printf("group:    %s\n", e.Group)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
