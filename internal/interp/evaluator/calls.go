package evaluator

import (
	"fmt"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
	"github.com/cwbudde/go-veil/internal/interp/scheduler"
)

// VisitAsync enrolls Body as a named suspension running on its own
// goroutine against a private clone of the current environment, and
// returns the *scheduler.Task handle without joining it — the caller
// (execBlock, or evalAwaited if this Async is itself a Declaration's
// expression) decides whether to await it now or let the enclosing block
// drain it at the end.
func (e *Evaluator) VisitAsync(n *ast.Async) (any, error) {
	taskEnv := e.env.Clone()
	body := n.Body
	task := e.sched.Enroll(n.Name, func() (runtime.Value, error) {
		forked := e.fork(taskEnv)
		return forked.runBody(body, taskEnv)
	})
	return task, nil
}

// VisitAwait resolves Target against the scheduler and yields its
// result(s) directly — Await is always "awaited inline" by construction,
// since there is nothing further to suspend once the scheduler has
// returned a value.
func (e *Evaluator) VisitAwait(n *ast.Await) (any, error) {
	return e.sched.Await(n.Target)
}

func (e *Evaluator) VisitRoutine(n *ast.Routine) (any, error) {
	e.setSyncRoutine(n.Name, &runtime.CallableValue{
		Name:    n.Name,
		Params:  patternsToAny(n.Params),
		Body:    nodesToAny(n.Body),
		Env:     e.env.Clone(),
		IsAsync: false,
	})
	return nil, nil
}

func (e *Evaluator) VisitAsyncRoutine(n *ast.AsyncRoutine) (any, error) {
	e.setAsyncRoutine(n.Name, &runtime.CallableValue{
		Name:    n.Name,
		Params:  patternsToAny(n.Params),
		Body:    nodesToAny(n.Body),
		Env:     e.env.Clone(),
		IsAsync: true,
	})
	return nil, nil
}

// VisitCall resolves Callee, evaluates Args left to right in the current
// environment, and invokes the resolved callable. A sync callable's
// result is its concrete return value; an async callable's result is the
// *scheduler.Task representing its freshly enrolled run.
func (e *Evaluator) VisitCall(n *ast.Call) (any, error) {
	callable, err := e.resolveCallee(n)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalAwaited(a, e.env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.invoke(callable, args)
}

// resolveCallee implements the unified lookup order for a name-form call:
// the async routine table, then the sync routine table, then the
// environment (which covers AsyncLambdas and the built-in combinators,
// both ordinary CallableValue bindings). An expression-form call simply
// evaluates Callee and requires the result to be callable.
func (e *Evaluator) resolveCallee(n *ast.Call) (*runtime.CallableValue, error) {
	if n.IsName {
		if c, ok := e.getAsyncRoutine(n.CalleeID); ok {
			return c, nil
		}
		if c, ok := e.getSyncRoutine(n.CalleeID); ok {
			return c, nil
		}
		v, ok := e.env.Get(n.CalleeID)
		if !ok {
			return nil, runtime.NewUndefinedFunctionError(n.CalleeID)
		}
		c, ok := v.(*runtime.CallableValue)
		if !ok {
			return nil, runtime.NewNotCallableError(v)
		}
		return c, nil
	}
	v, err := e.evalAwaited(n.Callee, e.env)
	if err != nil {
		return nil, err
	}
	c, ok := v.(*runtime.CallableValue)
	if !ok {
		return nil, runtime.NewNotCallableError(v)
	}
	return c, nil
}

func (e *Evaluator) invoke(callable *runtime.CallableValue, args []runtime.Value) (any, error) {
	if callable.Builtin != nil {
		v, err := callable.Builtin(args)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	if callable.IsAsync {
		return e.invokeAsync(callable, args), nil
	}
	return e.invokeSync(callable, args)
}

// invokeAsync clones the callable's captured environment, binds
// parameters into the clone, and enrolls the body to run on its own
// goroutine — the same suspension shape as a bare Async statement, just
// produced by a call instead of by name.
func (e *Evaluator) invokeAsync(callable *runtime.CallableValue, args []runtime.Value) *scheduler.Task {
	taskEnv := callable.Env.Clone()
	return e.sched.Enroll("", func() (runtime.Value, error) {
		forked := e.fork(taskEnv)
		if err := bindParams(forked, callable, args, taskEnv); err != nil {
			return nil, err
		}
		return forked.runBody(callableBody(callable), taskEnv)
	})
}

// invokeSync runs callable to completion in place: it snapshots the
// caller's bindings, installs a copy of the callable's captured
// environment as the live one, binds parameters, runs the body, and
// restores the caller's snapshot before returning — the closure-call
// discipline described in environment.go's doc comment.
func (e *Evaluator) invokeSync(callable *runtime.CallableValue, args []runtime.Value) (any, error) {
	callerSnap := e.env.Snapshot()
	e.env.Restore(callable.Env.Snapshot())
	if err := bindParams(e, callable, args, e.env); err != nil {
		e.env.Restore(callerSnap)
		return nil, err
	}
	result, err := e.runBody(callableBody(callable), e.env)
	e.env.Restore(callerSnap)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// runBody executes a callable's body in env and reduces the result of
// execBlock to a single concrete value: the evaluated Return expression if
// one was hit (evaluated in env, before the caller restores anything), or
// null otherwise.
func (e *Evaluator) runBody(body []ast.Node, env *runtime.Environment) (runtime.Value, error) {
	res, err := e.execBlock(body, env)
	if err != nil {
		return nil, err
	}
	if rs, ok := res.(returnSignal); ok && rs.Expr != nil {
		return e.evalAwaited(rs.Expr, env)
	}
	return nil, nil
}

func bindParams(e *Evaluator, callable *runtime.CallableValue, args []runtime.Value, env *runtime.Environment) error {
	for i, p := range callable.Params {
		pattern, ok := p.(ast.Pattern)
		if !ok {
			return fmt.Errorf("evaluator: callable %q has a non-pattern parameter", callable.Name)
		}
		var v runtime.Value
		if i < len(args) {
			v = args[i]
		}
		if err := e.bind(pattern, v, env); err != nil {
			return err
		}
	}
	return nil
}

func patternsToAny(patterns []ast.Pattern) []any {
	out := make([]any, len(patterns))
	for i, p := range patterns {
		out[i] = p
	}
	return out
}

func nodesToAny(nodes []ast.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func callableBody(callable *runtime.CallableValue) []ast.Node {
	out := make([]ast.Node, len(callable.Body))
	for i, b := range callable.Body {
		out[i] = b.(ast.Node)
	}
	return out
}
