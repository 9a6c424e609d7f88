package cliutil

import (
	"testing"

	"github.com/fatih/color"
)

func TestApplyColorExplicitNoColorWins(t *testing.T) {
	ApplyColor(true)
	if !color.NoColor {
		t.Error("expected color.NoColor=true when noColor is explicitly requested")
	}
}
