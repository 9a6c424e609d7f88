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
	Use:   "veilrun",
	Short: "veil AST evaluator driver",
	Long: `veilrun drives the veil tree-walking evaluator: the cooperative task
scheduler, recursive destructuring binder, and structural pattern matcher
described by the veil language's runtime model.

No lexer or parser ships in this repository — "veilrun demo" builds one of
the reference programs directly from AST node constructors and runs it to
completion.`,
	Version:           Version,
	PersistentPreRun:  func(cmd *cobra.Command, args []string) { cliutil.ApplyColor(noColor) },
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
