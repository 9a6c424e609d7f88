package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/vm/opcodes"
)

var dumpTableCmd = &cobra.Command{
	Use:   "dump-table",
	Short: "Render the full opcode reference table",
	RunE: func(_ *cobra.Command, _ []string) error {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Opcode", "Binary", "IR", "Mnemonic", "Group"})
		for op := uint8(0); ; op++ {
			if e, ok := opcodes.Lookup(op); ok {
				table.Append([]string{e.Hex, e.Bin, e.IR, e.Mnemonic, string(e.Group)})
			}
			if op == 0xFF {
				break
			}
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpTableCmd)
}
