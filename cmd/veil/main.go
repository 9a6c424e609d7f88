// Command veil drives the opcode VM and opcode reference table tool.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-veil/cmd/veil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
