// Package cliutil holds small pieces shared by both command trees
// (cmd/veil, cmd/veilrun): colored status output that auto-disables
// itself on a non-TTY stdout.
package cliutil

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ApplyColor enables or disables color.NoColor for the process: explicit
// no-color wins, otherwise color stays on only when stdout is a terminal.
func ApplyColor(noColor bool) {
	if noColor {
		color.NoColor = true
		return
	}
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Status prints a bold-green "ok" style line.
func Status(format string, args ...any) {
	color.New(color.FgGreen, color.Bold).Printf(format+"\n", args...)
}

// Warn prints a yellow warning line to stdout, matching the CLI's
// non-fatal diagnostics (e.g. "no such task").
func Warn(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

// Fail prints a bold-red error line.
func Fail(format string, args ...any) {
	color.New(color.FgRed, color.Bold).Printf(format+"\n", args...)
}
