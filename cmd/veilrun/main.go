// Command veilrun drives the veil tree-walking evaluator.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-veil/cmd/veilrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
