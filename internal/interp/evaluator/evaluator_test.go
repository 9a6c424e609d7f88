package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

func run(t *testing.T, root ast.Node) (*Evaluator, string) {
	t.Helper()
	var buf bytes.Buffer
	ev := New(WithStdout(&buf))
	t.Cleanup(ev.Close)
	if err := ev.Run(root); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return ev, buf.String()
}

func lit(v any) *ast.Literal { return &ast.Literal{Value: v} }

func TestDeclarationThenPrint(t *testing.T) {
	prog := &ast.Program{Body: []ast.Node{
		&ast.Declaration{Target: &ast.NamePattern{Name: "x"}, Expr: lit(int64(41))},
		&ast.Print{Expr: &ast.BinaryOp{Left: &ast.Identifier{Name: "x"}, Op: "+", Right: lit(int64(1))}},
	}}
	_, out := run(t, prog)
	if strings.TrimSpace(out) != "42" {
		t.Errorf("expected output \"42\", got %q", out)
	}
}

func TestDeclarationRejectsRedeclaration(t *testing.T) {
	prog := &ast.Program{Body: []ast.Node{
		&ast.Declaration{Target: &ast.NamePattern{Name: "x"}, Expr: lit(int64(1))},
		&ast.Declaration{Target: &ast.NamePattern{Name: "x"}, Expr: lit(int64(2))},
	}}
	var buf bytes.Buffer
	ev := New(WithStdout(&buf))
	defer ev.Close()
	if err := ev.Run(prog); err == nil {
		t.Fatal("expected an error re-declaring x, got nil")
	}
}

func TestAssignmentRejectsUndeclared(t *testing.T) {
	prog := &ast.Program{Body: []ast.Node{
		&ast.Assignment{Target: &ast.NamePattern{Name: "x"}, Expr: lit(int64(1))},
	}}
	var buf bytes.Buffer
	ev := New(WithStdout(&buf))
	defer ev.Close()
	if err := ev.Run(prog); err == nil {
		t.Fatal("expected an error assigning to an undeclared name, got nil")
	}
}

// Loop semantics: Start/End are evaluated once, Var ranges over the
// half-open interval [Start, End), and a mutation made inside Body carries
// over to the next iteration and past the loop.
func TestLoopRangeIsHalfOpen(t *testing.T) {
	prog := &ast.Program{Body: []ast.Node{
		&ast.Declaration{Target: &ast.NamePattern{Name: "count"}, Expr: lit(int64(0))},
		&ast.Loop{
			Var:   "i",
			Start: lit(int64(0)),
			End:   lit(int64(5)),
			Body: []ast.Node{
				&ast.Assignment{
					Target: &ast.NamePattern{Name: "count"},
					Expr:   &ast.BinaryOp{Left: &ast.Identifier{Name: "count"}, Op: "+", Right: lit(int64(1))},
				},
			},
		},
		&ast.Print{Expr: &ast.Identifier{Name: "count"}},
	}}
	_, out := run(t, prog)
	if strings.TrimSpace(out) != "5" {
		t.Errorf("expected loop to run 5 times, got output %q", out)
	}
}

// S1: Fibonacci via sequential reassignment through a temporary.
func TestScenarioS1Fibonacci(t *testing.T) {
	prog := &ast.Program{Body: []ast.Node{
		&ast.Declaration{Target: &ast.NamePattern{Name: "n"}, Expr: lit(int64(10))},
		&ast.Declaration{Target: &ast.NamePattern{Name: "a"}, Expr: lit(int64(0))},
		&ast.Declaration{Target: &ast.NamePattern{Name: "b"}, Expr: lit(int64(1))},
		&ast.Declaration{Target: &ast.NamePattern{Name: "tmp"}, Expr: lit(int64(0))},
		&ast.Loop{
			Var:   "i",
			Start: lit(int64(0)),
			End:   &ast.Identifier{Name: "n"},
			Body: []ast.Node{
				&ast.Assignment{Target: &ast.NamePattern{Name: "tmp"}, Expr: &ast.Identifier{Name: "b"}},
				&ast.Assignment{
					Target: &ast.NamePattern{Name: "b"},
					Expr:   &ast.BinaryOp{Left: &ast.Identifier{Name: "a"}, Op: "+", Right: &ast.Identifier{Name: "b"}},
				},
				&ast.Assignment{Target: &ast.NamePattern{Name: "a"}, Expr: &ast.Identifier{Name: "tmp"}},
			},
		},
		&ast.Print{Expr: &ast.Identifier{Name: "a"}},
	}}
	_, out := run(t, prog)
	if strings.TrimSpace(out) != "55" {
		t.Errorf("expected 10th Fibonacci number 55, got %q", out)
	}
}

// S2: a Task runs its Logic body and announces itself on stdout first.
func TestScenarioS2Task(t *testing.T) {
	task := &ast.Task{
		Intention: &ast.Intention{Name: "greet_user"},
		Tool:      &ast.Tool{Name: "console"},
		Logic:     &ast.Logic{Body: []ast.Node{&ast.Print{Expr: lit("Hello, World!")}}},
	}
	_, out := run(t, task)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines of output, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "greet_user") || !strings.Contains(lines[0], "console") {
		t.Errorf("expected the task announcement to name the intention and tool, got %q", lines[0])
	}
	if lines[1] != "Hello, World!" {
		t.Errorf("expected the greeting line, got %q", lines[1])
	}
}

// S3: two Async blocks joined by a flat Await, destructured into a sequence
// pattern, summed and printed.
func TestScenarioS3AsyncAwaitJoin(t *testing.T) {
	xy, err := ast.NewSequencePattern([]ast.Pattern{
		&ast.NamePattern{Name: "x"},
		&ast.NamePattern{Name: "y"},
	})
	if err != nil {
		t.Fatalf("NewSequencePattern: %v", err)
	}
	prog := &ast.Program{Body: []ast.Node{
		&ast.Async{Name: "A", Body: []ast.Node{&ast.Return{Expr: lit(int64(1))}}},
		&ast.Async{Name: "B", Body: []ast.Node{&ast.Return{Expr: lit(int64(2))}}},
		&ast.Declaration{
			Target: xy,
			Expr:   &ast.Await{Target: ast.AwaitTarget{Flat: []string{"A", "B"}}},
		},
		&ast.Print{Expr: &ast.BinaryOp{Left: &ast.Identifier{Name: "x"}, Op: "+", Right: &ast.Identifier{Name: "y"}}},
	}}
	_, out := run(t, prog)
	if strings.TrimSpace(out) != "3" {
		t.Errorf("expected joined sum 3, got %q", out)
	}
}

// S4: Match against a mapping tries the shape-mismatched case first (fails
// on a missing key, rolling back any partial binding), then the matching
// case with a guard that must hold.
func TestScenarioS4MatchWithGuard(t *testing.T) {
	subject := runtime.NewMapping()
	subject.Set("kind", runtime.NewString("pair"))
	subject.Set("lhs", runtime.NewInteger(1))
	subject.Set("rhs", runtime.NewInteger(2))

	prog := &ast.Program{Body: []ast.Node{
		&ast.Match{
			Expr: lit(runtime.Value(subject)),
			Cases: []ast.Case{
				{
					Pattern: &ast.ObjectPattern{Slots: []ast.ObjectSlot{
						{Key: "kind", Name: "kind"},
						{Key: "v", Name: "v"},
					}},
					Body: []ast.Node{&ast.Print{Expr: lit("wrong shape")}},
				},
				{
					Pattern: &ast.ObjectPattern{Slots: []ast.ObjectSlot{
						{Key: "kind", Name: "kind"},
						{Key: "lhs", Name: "a"},
						{Key: "rhs", Name: "b"},
					}},
					Guard: &ast.BinaryOp{Left: &ast.Identifier{Name: "a"}, Op: "<", Right: &ast.Identifier{Name: "b"}},
					Body:  []ast.Node{&ast.Print{Expr: lit("a < b")}},
				},
			},
		},
	}}
	_, out := run(t, prog)
	if strings.TrimSpace(out) != "a < b" {
		t.Errorf("expected the guarded case to run, got %q", out)
	}
}

// A failed case must not leak bindings into the environment the next case
// (or the code after Match) observes.
func TestMatchRollsBackFailedCaseBindings(t *testing.T) {
	subject := runtime.NewMapping()
	subject.Set("kind", runtime.NewString("pair"))

	prog := &ast.Program{Body: []ast.Node{
		&ast.Match{
			Expr: lit(runtime.Value(subject)),
			Cases: []ast.Case{
				{
					Pattern: &ast.ObjectPattern{Slots: []ast.ObjectSlot{
						{Key: "missing", Name: "leaked"},
					}},
					Body: []ast.Node{&ast.Print{Expr: lit("unreachable")}},
				},
				{
					Pattern: &ast.Wildcard{},
					Body:    []ast.Node{&ast.Print{Expr: lit("fallback")}},
				},
			},
		},
		&ast.Declaration{Target: &ast.NamePattern{Name: "leaked"}, Expr: lit(int64(1))},
	}}
	_, out := run(t, prog)
	if strings.TrimSpace(out) != "fallback" {
		t.Errorf("expected the fallback case, got %q", out)
	}
}
