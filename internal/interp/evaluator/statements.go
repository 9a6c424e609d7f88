package evaluator

import (
	"fmt"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

func (e *Evaluator) VisitProgram(n *ast.Program) (any, error) { return e.execBlock(n.Body, e.env) }
func (e *Evaluator) VisitMain(n *ast.Main) (any, error)       { return e.execBlock(n.Body, e.env) }
func (e *Evaluator) VisitProg(n *ast.Prog) (any, error)       { return e.execBlock(n.Body, e.env) }
func (e *Evaluator) VisitLogic(n *ast.Logic) (any, error)     { return e.execBlock(n.Body, e.env) }

func (e *Evaluator) VisitTask(n *ast.Task) (any, error) {
	intentionName, toolName := "", ""
	if n.Intention != nil {
		intentionName = n.Intention.Name
	}
	if n.Tool != nil {
		toolName = n.Tool.Name
	}
	fmt.Fprintf(e.stdout, "[Task: %s] Tool=%s\n", intentionName, toolName)
	return e.VisitLogic(n.Logic)
}

func (e *Evaluator) VisitDeclaration(n *ast.Declaration) (any, error) {
	value, err := e.evalAwaited(n.Expr, e.env)
	if err != nil {
		return nil, err
	}
	for _, name := range PatternNames(n.Target) {
		if e.env.Has(name) {
			return nil, runtime.NewAlreadyDeclaredError(name)
		}
	}
	if err := e.bindWithRollback(n.Target, value, e.env); err != nil {
		return nil, err
	}
	return nil, nil
}

func (e *Evaluator) VisitAssignment(n *ast.Assignment) (any, error) {
	value, err := e.evalAwaited(n.Expr, e.env)
	if err != nil {
		return nil, err
	}
	for _, name := range PatternNames(n.Target) {
		if !e.env.Has(name) {
			return nil, runtime.NewNotDeclaredError(name)
		}
	}
	if err := e.bindWithRollback(n.Target, value, e.env); err != nil {
		return nil, err
	}
	return nil, nil
}

func (e *Evaluator) VisitPrint(n *ast.Print) (any, error) {
	value, err := e.evalAwaited(n.Expr, e.env)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.stdout, displayPrint(value))
	return nil, nil
}

func displayPrint(v runtime.Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

// VisitReturn never evaluates Expr itself — it hands the node back up as a
// returnSignal so the block that dispatched into it can evaluate Expr in
// the correct environment once it has decided to unwind.
func (e *Evaluator) VisitReturn(n *ast.Return) (any, error) {
	return returnSignal{Expr: n.Expr, Env: e.env}, nil
}

func (e *Evaluator) VisitIf(n *ast.If) (any, error) {
	cond, err := e.evalAwaited(n.Cond, e.env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(cond) {
		return e.execBlock(n.Then, e.env)
	}
	if n.Else != nil {
		return e.execBlock(n.Else, e.env)
	}
	return nil, nil
}

func (e *Evaluator) VisitLoop(n *ast.Loop) (any, error) {
	start, err := e.evalAwaited(n.Start, e.env)
	if err != nil {
		return nil, err
	}
	end, err := e.evalAwaited(n.End, e.env)
	if err != nil {
		return nil, err
	}
	startInt, ok := start.(*runtime.IntegerValue)
	if !ok {
		return nil, runtime.NewOperandTypeError("loop start", start, nil)
	}
	endInt, ok := end.(*runtime.IntegerValue)
	if !ok {
		return nil, runtime.NewOperandTypeError("loop end", end, nil)
	}
	for i := startInt.Value; i < endInt.Value; i++ {
		e.env.Define(n.Var, runtime.NewInteger(i))
		res, err := e.execBlock(n.Body, e.env)
		if err != nil {
			return nil, err
		}
		if rs, ok := res.(returnSignal); ok {
			return rs, nil
		}
	}
	return nil, nil
}

func (e *Evaluator) VisitTryCatch(n *ast.TryCatch) (any, error) {
	res, err := e.execBlock(n.Try, e.env)
	if err != nil {
		fmt.Fprintf(e.stdout, "[TryCatch] %s\n", err.Error())
		return e.execBlock(n.Catch, e.env)
	}
	return res, nil
}
