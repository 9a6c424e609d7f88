package evaluator

import (
	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

// VisitBinaryOp evaluates both operands, then dispatches on Op. Arithmetic
// (+ - * /) works over INTEGER/FLOAT, with + also defined for STRING
// (concatenation) and SEQUENCE (append). Comparisons (== != < > <= >=)
// work over INTEGER/FLOAT/STRING. == and != accept any operands: numbers
// compare numerically, strings and booleans by value, sequences element by
// element, and two nils are equal; any other pair (including two mappings,
// callables or tasks) compares unequal.
func (e *Evaluator) VisitBinaryOp(n *ast.BinaryOp) (any, error) {
	left, err := e.evalAwaited(n.Left, e.env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalAwaited(n.Right, e.env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "+":
		return evalAdd(n.Op, left, right)
	case "-", "*", "/":
		return evalArith(n.Op, left, right)
	case "==":
		return runtime.NewBoolean(valuesEqual(left, right)), nil
	case "!=":
		return runtime.NewBoolean(!valuesEqual(left, right)), nil
	case "<", ">", "<=", ">=":
		return evalCompare(n.Op, left, right)
	default:
		return nil, runtime.NewUnsupportedOperatorError(n.Op)
	}
}

func evalAdd(op string, left, right runtime.Value) (runtime.Value, error) {
	switch l := left.(type) {
	case *runtime.IntegerValue:
		switch r := right.(type) {
		case *runtime.IntegerValue:
			return runtime.NewInteger(l.Value + r.Value), nil
		case *runtime.FloatValue:
			return runtime.NewFloat(float64(l.Value) + r.Value), nil
		}
	case *runtime.FloatValue:
		switch r := right.(type) {
		case *runtime.IntegerValue:
			return runtime.NewFloat(l.Value + float64(r.Value)), nil
		case *runtime.FloatValue:
			return runtime.NewFloat(l.Value + r.Value), nil
		}
	case *runtime.StringValue:
		if r, ok := right.(*runtime.StringValue); ok {
			return runtime.NewString(l.Value + r.Value), nil
		}
	case *runtime.SequenceValue:
		if r, ok := right.(*runtime.SequenceValue); ok {
			out := make([]runtime.Value, 0, len(l.Elements)+len(r.Elements))
			out = append(out, l.Elements...)
			out = append(out, r.Elements...)
			return &runtime.SequenceValue{Elements: out}, nil
		}
	}
	return nil, runtime.NewOperandTypeError(op, left, right)
}

func evalArith(op string, left, right runtime.Value) (runtime.Value, error) {
	li, lIsInt := left.(*runtime.IntegerValue)
	ri, rIsInt := right.(*runtime.IntegerValue)
	if lIsInt && rIsInt {
		switch op {
		case "-":
			return runtime.NewInteger(li.Value - ri.Value), nil
		case "*":
			return runtime.NewInteger(li.Value * ri.Value), nil
		case "/":
			if ri.Value == 0 {
				return nil, runtime.NewOperandTypeError(op, left, right)
			}
			return runtime.NewInteger(li.Value / ri.Value), nil
		}
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtime.NewOperandTypeError(op, left, right)
	}
	switch op {
	case "-":
		return runtime.NewFloat(lf - rf), nil
	case "*":
		return runtime.NewFloat(lf * rf), nil
	case "/":
		if rf == 0 {
			return nil, runtime.NewOperandTypeError(op, left, right)
		}
		return runtime.NewFloat(lf / rf), nil
	}
	return nil, runtime.NewUnsupportedOperatorError(op)
}

func evalCompare(op string, left, right runtime.Value) (runtime.Value, error) {
	if ls, ok := left.(*runtime.StringValue); ok {
		if rs, ok := right.(*runtime.StringValue); ok {
			return runtime.NewBoolean(compareOrdered(op, cmpString(ls.Value, rs.Value))), nil
		}
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtime.NewOperandTypeError(op, left, right)
	}
	return runtime.NewBoolean(compareOrdered(op, cmpFloat(lf, rf))), nil
}

func compareOrdered(op string, sign int) bool {
	switch op {
	case "<":
		return sign < 0
	case ">":
		return sign > 0
	case "<=":
		return sign <= 0
	case ">=":
		return sign >= 0
	}
	return false
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func asFloat(v runtime.Value) (float64, bool) {
	switch n := v.(type) {
	case *runtime.IntegerValue:
		return float64(n.Value), true
	case *runtime.FloatValue:
		return n.Value, true
	default:
		return 0, false
	}
}

func valuesEqual(left, right runtime.Value) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	switch l := left.(type) {
	case *runtime.IntegerValue:
		if lf, ok := asFloat(right); ok {
			return float64(l.Value) == lf
		}
	case *runtime.FloatValue:
		if rf, ok := asFloat(right); ok {
			return l.Value == rf
		}
	case *runtime.StringValue:
		if r, ok := right.(*runtime.StringValue); ok {
			return l.Value == r.Value
		}
	case *runtime.BooleanValue:
		if r, ok := right.(*runtime.BooleanValue); ok {
			return l.Value == r.Value
		}
	case *runtime.SequenceValue:
		r, ok := right.(*runtime.SequenceValue)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}
