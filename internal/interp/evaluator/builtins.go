package evaluator

import "github.com/cwbudde/go-veil/internal/interp/runtime"

// registerBuiltins pre-registers map/filter/reduce as ordinary environment
// values — CallableValues with Builtin set rather than a Body/Env pair —
// so a user routine calls them exactly like any other closure, through
// the same resolveCallee/invoke path. Each accepts either a synchronous or
// asynchronous callable as its function argument; callFn joins an async
// result immediately, since a combinator needs a concrete value before it
// can continue.
func registerBuiltins(e *Evaluator) {
	e.env.Define("map", &runtime.CallableValue{Name: "map", Builtin: builtinMap(e)})
	e.env.Define("filter", &runtime.CallableValue{Name: "filter", Builtin: builtinFilter(e)})
	e.env.Define("reduce", &runtime.CallableValue{Name: "reduce", Builtin: builtinReduce(e)})
}

func builtinMap(e *Evaluator) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		seq, fn, err := seqAndFn(args, "map")
		if err != nil {
			return nil, err
		}
		out := make([]runtime.Value, len(seq.Elements))
		for i, elem := range seq.Elements {
			v, err := callFn(e, fn, []runtime.Value{elem})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &runtime.SequenceValue{Elements: out}, nil
	}
}

func builtinFilter(e *Evaluator) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		seq, fn, err := seqAndFn(args, "filter")
		if err != nil {
			return nil, err
		}
		var out []runtime.Value
		for _, elem := range seq.Elements {
			keep, err := callFn(e, fn, []runtime.Value{elem})
			if err != nil {
				return nil, err
			}
			if runtime.Truthy(keep) {
				out = append(out, elem)
			}
		}
		return &runtime.SequenceValue{Elements: out}, nil
	}
}

func builtinReduce(e *Evaluator) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 3 {
			return nil, runtime.NewOperandTypeError("reduce", nil, nil)
		}
		seq, ok := args[0].(*runtime.SequenceValue)
		if !ok {
			return nil, runtime.NewDestructureShapeError("sequence", args[0])
		}
		fn, ok := args[1].(*runtime.CallableValue)
		if !ok {
			return nil, runtime.NewNotCallableError(args[1])
		}
		acc := args[2]
		for _, elem := range seq.Elements {
			next, err := callFn(e, fn, []runtime.Value{acc, elem})
			if err != nil {
				return nil, err
			}
			acc = next
		}
		return acc, nil
	}
}

func seqAndFn(args []runtime.Value, op string) (*runtime.SequenceValue, *runtime.CallableValue, error) {
	if len(args) != 2 {
		return nil, nil, runtime.NewOperandTypeError(op, nil, nil)
	}
	seq, ok := args[0].(*runtime.SequenceValue)
	if !ok {
		return nil, nil, runtime.NewDestructureShapeError("sequence", args[0])
	}
	fn, ok := args[1].(*runtime.CallableValue)
	if !ok {
		return nil, nil, runtime.NewNotCallableError(args[1])
	}
	return seq, fn, nil
}

// callFn invokes fn with args, awaiting inline if the call produces a
// suspended computation (fn is async).
func callFn(e *Evaluator, fn *runtime.CallableValue, args []runtime.Value) (runtime.Value, error) {
	res, err := e.invoke(fn, args)
	if err != nil {
		return nil, err
	}
	return e.resolveAwaited(res)
}
