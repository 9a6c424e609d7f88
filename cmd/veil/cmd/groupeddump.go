package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/vm/opcodes"
)

var groupOrder = []opcodes.Group{
	opcodes.Memory,
	opcodes.Arithmetic,
	opcodes.Logic,
	opcodes.ControlFlow,
	opcodes.Terminators,
	opcodes.LanguageOps,
}

var groupedDumpCmd = &cobra.Command{
	Use:   "grouped-dump",
	Short: "Render the opcode table as one section per group",
	RunE: func(_ *cobra.Command, _ []string) error {
		grouped := opcodes.Grouped()
		for _, g := range groupOrder {
			entries := grouped[g]
			if len(entries) == 0 {
				continue
			}
			color.New(color.FgCyan, color.Bold).Printf("== %s (%d) ==\n", g, len(entries))
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Opcode", "IR", "Mnemonic"})
			for _, e := range entries {
				table.Append([]string{e.Hex, e.IR, e.Mnemonic})
			}
			table.Render()
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupedDumpCmd)
}
