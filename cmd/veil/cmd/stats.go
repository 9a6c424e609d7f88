package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/vm/opcodes"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the opcode table (total and per-group counts)",
	RunE: func(_ *cobra.Command, _ []string) error {
		stats, err := opcodes.ComputeStats()
		if err != nil {
			return err
		}
		fmt.Printf("total: %d\n", stats.Total)
		for _, g := range groupOrder {
			fmt.Printf("  %-12s %d\n", g, stats.PerGroup[g])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
