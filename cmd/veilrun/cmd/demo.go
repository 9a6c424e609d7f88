package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/evaluator"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

var (
	scenario  string
	traceDemo bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run one of the reference evaluator scenarios (S1-S6)",
	Long: `Since no parser ships in this repository, demo builds a program
directly from AST node constructors — one of the six reference scenarios —
and runs it to completion against a fresh Evaluator.

Scenarios:
  S1  Fibonacci loop
  S2  Task with print
  S3  Parallel await
  S4  Pattern match with guarded rollback
  S5, S6 are VM scenarios — see "veil demo" instead.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&scenario, "scenario", "S1", "scenario to run (S1-S4)")
	demoCmd.Flags().BoolVar(&traceDemo, "trace", false, "show scheduler [Async]/[Await] diagnostics")
}

func runDemo(_ *cobra.Command, _ []string) error {
	root, ok := scenarios[scenario]
	if !ok {
		return fmt.Errorf("unknown scenario %q (want one of S1, S2, S3, S4)", scenario)
	}

	var traceOut io.Writer = io.Discard
	if traceDemo {
		traceOut = os.Stderr
	}
	ev := evaluator.New(evaluator.WithStdout(os.Stdout), evaluator.WithTrace(traceOut))
	defer ev.Close()

	return ev.Run(root())
}

var scenarios = map[string]func() ast.Node{
	"S1": scenarioS1,
	"S2": scenarioS2,
	"S3": scenarioS3,
	"S4": scenarioS4,
}

// scenarioS1 is the Fibonacci loop: n=5, a=0, b=1, printing a then
// advancing (a, b) = (b, a+b) on each of the five iterations. Expected
// output: 0, 1, 1, 2, 3.
func scenarioS1() ast.Node {
	return &ast.Program{Body: []ast.Node{
		&ast.Declaration{Target: &ast.NamePattern{Name: "n"}, Expr: &ast.Literal{Value: int64(5)}},
		&ast.Declaration{Target: &ast.NamePattern{Name: "a"}, Expr: &ast.Literal{Value: int64(0)}},
		&ast.Declaration{Target: &ast.NamePattern{Name: "b"}, Expr: &ast.Literal{Value: int64(1)}},
		&ast.Declaration{Target: &ast.NamePattern{Name: "tmp"}, Expr: &ast.Literal{Value: int64(0)}},
		&ast.Loop{
			Var:   "i",
			Start: &ast.Literal{Value: int64(0)},
			End:   &ast.Identifier{Name: "n"},
			Body: []ast.Node{
				&ast.Print{Expr: &ast.Identifier{Name: "a"}},
				&ast.Assignment{Target: &ast.NamePattern{Name: "tmp"}, Expr: &ast.Identifier{Name: "b"}},
				&ast.Assignment{
					Target: &ast.NamePattern{Name: "b"},
					Expr: &ast.BinaryOp{
						Left: &ast.Identifier{Name: "a"}, Op: "+", Right: &ast.Identifier{Name: "b"},
					},
				},
				&ast.Assignment{Target: &ast.NamePattern{Name: "a"}, Expr: &ast.Identifier{Name: "tmp"}},
			},
		},
	}}
}

// scenarioS2 is a declarative Task block that prints its header line then
// a single greeting.
func scenarioS2() ast.Node {
	return &ast.Task{
		Intention: &ast.Intention{Name: "greet_user"},
		Tool:      &ast.Tool{Name: "console"},
		Logic: &ast.Logic{Body: []ast.Node{
			&ast.Print{Expr: &ast.Literal{Value: "Hello, World!"}},
		}},
	}
}

// scenarioS3 enrolls two named tasks, joins them with a flat Await, and
// prints the sum of their results. Expected output: 3.
func scenarioS3() ast.Node {
	xy, err := ast.NewSequencePattern([]ast.Pattern{
		&ast.NamePattern{Name: "x"},
		&ast.NamePattern{Name: "y"},
	})
	if err != nil {
		panic(err)
	}
	return &ast.Program{Body: []ast.Node{
		&ast.Async{Name: "A", Body: []ast.Node{&ast.Return{Expr: &ast.Literal{Value: int64(1)}}}},
		&ast.Async{Name: "B", Body: []ast.Node{&ast.Return{Expr: &ast.Literal{Value: int64(2)}}}},
		&ast.Declaration{
			Target: xy,
			Expr:   &ast.Await{Target: ast.AwaitTarget{Flat: []string{"A", "B"}}},
		},
		&ast.Print{Expr: &ast.BinaryOp{Left: &ast.Identifier{Name: "x"}, Op: "+", Right: &ast.Identifier{Name: "y"}}},
	}}
}

// scenarioS4 matches a fixed mapping value against two cases: the first
// requires a "v" key the subject does not have and so fails structurally;
// the second binds lhs/rhs as a/b, its guard a<b holds, and its body
// prints their sum. Expected output: 3.
func scenarioS4() ast.Node {
	subject := runtime.NewMapping()
	subject.Set("kind", runtime.NewString("pair"))
	subject.Set("lhs", runtime.NewInteger(1))
	subject.Set("rhs", runtime.NewInteger(2))

	return &ast.Program{Body: []ast.Node{
		&ast.Match{
			Expr: &ast.Literal{Value: subject},
			Cases: []ast.Case{
				{
					Pattern: &ast.ObjectPattern{Slots: []ast.ObjectSlot{
						{Key: "kind", Name: "kind"},
						{Key: "v", Name: "v"},
					}},
					Body: []ast.Node{&ast.Print{Expr: &ast.Identifier{Name: "v"}}},
				},
				{
					Pattern: &ast.ObjectPattern{Slots: []ast.ObjectSlot{
						{Key: "kind", Name: "kind"},
						{Key: "lhs", Name: "a"},
						{Key: "rhs", Name: "b"},
					}},
					Guard: &ast.BinaryOp{Left: &ast.Identifier{Name: "a"}, Op: "<", Right: &ast.Identifier{Name: "b"}},
					Body: []ast.Node{&ast.Print{Expr: &ast.BinaryOp{
						Left: &ast.Identifier{Name: "a"}, Op: "+", Right: &ast.Identifier{Name: "b"},
					}}},
				},
			},
		},
	}}
}
