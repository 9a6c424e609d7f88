// Package evaluator implements the veil tree-walking evaluator: a single
// Evaluator type implementing ast.Visitor, the recursive pattern binder
// (binder.go), statement and expression dispatch, and the async/await
// bridge into the scheduler package.
package evaluator

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
	"github.com/cwbudde/go-veil/internal/interp/scheduler"
)

// Evaluator walks an AST against one flat Environment, dispatching async
// work to a Scheduler. It implements ast.Visitor; node.Accept(e) is how
// every evaluation step starts.
//
// A running Async/AsyncRoutine/AsyncLambda task executes on a *fork* of
// its enclosing Evaluator (see fork) carrying its own private
// Environment, so that concurrent tasks — real goroutines here, unlike
// the single-threaded cooperative original — never share one mutable
// Environment instance. All forks of one Evaluator tree share the same
// Scheduler and routine tables, the latter guarded by routinesMu since a
// task body may itself declare routines while sibling tasks are reading
// the tables.
type Evaluator struct {
	env      *runtime.Environment
	sched    *scheduler.Scheduler
	stdout   io.Writer
	traceOut io.Writer
	poolSize int

	routinesMu    *sync.RWMutex
	syncRoutines  map[string]*runtime.CallableValue
	asyncRoutines map[string]*runtime.CallableValue
}

// Option configures a new Evaluator.
type Option func(*Evaluator)

// WithStdout redirects Print output (default os.Stdout).
func WithStdout(w io.Writer) Option { return func(e *Evaluator) { e.stdout = w } }

// WithPoolSize sets the scheduler's worker-pool size (default
// scheduler.DefaultPoolSize).
func WithPoolSize(size int) Option {
	return func(e *Evaluator) { e.poolSize = size }
}

// WithTrace writes scheduler diagnostics ("[Async ...]", "[Await ...]") to
// w instead of discarding them — the evaluator-side half of the CLIs'
// --trace flag.
func WithTrace(w io.Writer) Option { return func(e *Evaluator) { e.traceOut = w } }

// New builds an Evaluator with a fresh global Environment, registers the
// built-in combinators into it, and wires a Scheduler.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		env:           runtime.NewEnvironment(),
		stdout:        os.Stdout,
		traceOut:      io.Discard,
		routinesMu:    &sync.RWMutex{},
		syncRoutines:  make(map[string]*runtime.CallableValue),
		asyncRoutines: make(map[string]*runtime.CallableValue),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sched = scheduler.New(e.poolSize, e.traceOut)
	registerBuiltins(e)
	return e
}

// Close releases the evaluator's worker pool.
func (e *Evaluator) Close() { e.sched.Close() }

// fork builds the execution context one task goroutine runs against: same
// Scheduler and routine tables, private env.
func (e *Evaluator) fork(env *runtime.Environment) *Evaluator {
	return &Evaluator{
		env:           env,
		sched:         e.sched,
		stdout:        e.stdout,
		traceOut:      e.traceOut,
		poolSize:      e.poolSize,
		routinesMu:    e.routinesMu,
		syncRoutines:  e.syncRoutines,
		asyncRoutines: e.asyncRoutines,
	}
}

func (e *Evaluator) getSyncRoutine(name string) (*runtime.CallableValue, bool) {
	e.routinesMu.RLock()
	defer e.routinesMu.RUnlock()
	c, ok := e.syncRoutines[name]
	return c, ok
}

func (e *Evaluator) setSyncRoutine(name string, c *runtime.CallableValue) {
	e.routinesMu.Lock()
	defer e.routinesMu.Unlock()
	e.syncRoutines[name] = c
}

func (e *Evaluator) getAsyncRoutine(name string) (*runtime.CallableValue, bool) {
	e.routinesMu.RLock()
	defer e.routinesMu.RUnlock()
	c, ok := e.asyncRoutines[name]
	return c, ok
}

func (e *Evaluator) setAsyncRoutine(name string, c *runtime.CallableValue) {
	e.routinesMu.Lock()
	defer e.routinesMu.Unlock()
	e.asyncRoutines[name] = c
}

// Run evaluates root (a Program, Main, Prog, or Task) to completion.
func (e *Evaluator) Run(root ast.Node) error {
	_, err := root.Accept(e)
	return err
}

// returnSignal is the internal control-flow value a block's execution
// unwinds with when it runs a Return statement. It is never a
// runtime.Value and never escapes the evaluator package.
type returnSignal struct {
	Expr ast.Node
	Env  *runtime.Environment
}

// execBlock runs stmts in order against env. Any statement whose
// evaluation yields a bare, un-awaited suspension (a *scheduler.Task) is
// enrolled for this block to drain before it returns, regardless of
// whether the block exits normally or via Return — matching "the
// enclosing block runs all enrolled suspensions to completion before
// returning".
func (e *Evaluator) execBlock(stmts []ast.Node, env *runtime.Environment) (any, error) {
	var spawned []*scheduler.Task
	for _, stmt := range stmts {
		res, err := stmt.Accept(e)
		if err != nil {
			_ = e.drain(spawned)
			return nil, err
		}
		if t, ok := res.(*scheduler.Task); ok {
			spawned = append(spawned, t)
			continue
		}
		if rs, ok := res.(returnSignal); ok {
			if derr := e.drain(spawned); derr != nil {
				return nil, derr
			}
			return rs, nil
		}
	}
	if err := e.drain(spawned); err != nil {
		return nil, err
	}
	return nil, nil
}

func (e *Evaluator) drain(tasks []*scheduler.Task) error {
	for _, t := range tasks {
		if _, err := t.Join(); err != nil {
			return err
		}
	}
	return nil
}

// evalAwaited evaluates node and, if the result is a bare suspension,
// joins it immediately — the "await inline" behavior Declaration,
// Assignment, and Print all share.
func (e *Evaluator) evalAwaited(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	res, err := node.Accept(e)
	if err != nil {
		return nil, err
	}
	return e.resolveAwaited(res)
}

func (e *Evaluator) resolveAwaited(res any) (runtime.Value, error) {
	switch v := res.(type) {
	case *scheduler.Task:
		return v.Join()
	case runtime.Value:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("evaluator: unexpected evaluation result of type %T", res)
	}
}
