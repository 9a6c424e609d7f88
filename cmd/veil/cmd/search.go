package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/vm/opcodes"
)

var searchCmd = &cobra.Command{
	Use:   "search KEY",
	Short: "Search the opcode table by substring across hex/bin/IR/mnemonic",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		matches, err := opcodes.Search(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, e := range matches {
			fmt.Printf("%s  %-10s  %-20s  %s\n", e.Hex, e.Group, e.IR, e.Mnemonic)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
