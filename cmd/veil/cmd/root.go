package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/cliutil"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "veil opcode VM and opcode reference table tool",
	Long: `veil drives the opcode-level register machine: execute a sequence of
hex opcodes against a fresh machine state, or query the static 144-entry
opcode reference table (lookup, search, dump, grouped dump, stats).`,
	Version:          Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) { cliutil.ApplyColor(noColor) },
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
