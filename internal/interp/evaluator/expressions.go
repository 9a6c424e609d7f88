package evaluator

import (
	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

func (e *Evaluator) VisitLiteral(n *ast.Literal) (any, error) {
	switch v := n.Value.(type) {
	case int64:
		return runtime.NewInteger(v), nil
	case int:
		return runtime.NewInteger(int64(v)), nil
	case float64:
		return runtime.NewFloat(v), nil
	case string:
		return runtime.NewString(v), nil
	case bool:
		return runtime.NewBoolean(v), nil
	case runtime.Value:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, runtime.NewOperandTypeError("literal", nil, nil)
	}
}

// VisitIdentifier looks Name up in the environment first; a name bound
// there by neither a declaration nor a builtin falls back to the async and
// then the sync routine table, so a routine can be passed as a value.
func (e *Evaluator) VisitIdentifier(n *ast.Identifier) (any, error) {
	v, ok := e.env.Get(n.Name)
	if !ok {
		if c, found := e.getAsyncRoutine(n.Name); found {
			return c, nil
		}
		if c, found := e.getSyncRoutine(n.Name); found {
			return c, nil
		}
		return nil, runtime.NewUndefinedVariableError(n.Name)
	}
	return v, nil
}

func (e *Evaluator) VisitUnaryOp(n *ast.UnaryOp) (any, error) {
	operand, err := e.evalAwaited(n.Operand, e.env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "+":
		switch v := operand.(type) {
		case *runtime.IntegerValue:
			return runtime.NewInteger(v.Value), nil
		case *runtime.FloatValue:
			return runtime.NewFloat(v.Value), nil
		}
	case "-":
		switch v := operand.(type) {
		case *runtime.IntegerValue:
			return runtime.NewInteger(-v.Value), nil
		case *runtime.FloatValue:
			return runtime.NewFloat(-v.Value), nil
		}
	default:
		return nil, runtime.NewUnsupportedOperatorError(n.Op)
	}
	return nil, runtime.NewOperandTypeError(n.Op, operand, nil)
}

// VisitAsyncLambda produces a CallableValue closing over the environment
// as it stands right now — the anonymous-function analogue of Routine /
// AsyncRoutine, except it never gets a name in either routine table: it is
// invoked either as the direct callee expression of a Call or, once bound
// in the environment, by name or as a combinator's function argument.
func (e *Evaluator) VisitAsyncLambda(n *ast.AsyncLambda) (any, error) {
	params := make([]any, len(n.Params))
	for i, p := range n.Params {
		params[i] = p
	}
	body := make([]any, len(n.Body))
	for i, s := range n.Body {
		body[i] = s
	}
	return &runtime.CallableValue{
		Params:  params,
		Body:    body,
		Env:     e.env.Clone(),
		IsAsync: true,
	}, nil
}
