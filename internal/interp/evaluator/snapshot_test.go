package evaluator

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-veil/internal/ast"
)

// TestTaskAnnouncementSnapshot pins the exact "[Task: ...] Tool=..." header
// line VisitTask writes before running Logic, the same way the teacher
// fixture harness snapshots whole-program stdout.
func TestTaskAnnouncementSnapshot(t *testing.T) {
	task := &ast.Task{
		Intention: &ast.Intention{Name: "greet_user"},
		Tool:      &ast.Tool{Name: "console"},
		Logic:     &ast.Logic{Body: []ast.Node{&ast.Print{Expr: lit("Hello, World!")}}},
	}
	_, out := run(t, task)
	snaps.MatchSnapshot(t, out)
}
