package evaluator

import (
	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

// PatternNames returns every name a pattern would bind, in the order the
// binder would define them. Declaration and Assignment use this to check
// their "all names absent" / "all names present" invariants before
// touching the environment.
func PatternNames(pattern ast.Pattern) []string {
	var names []string
	collectPatternNames(pattern, &names)
	return names
}

func collectPatternNames(pattern ast.Pattern, out *[]string) {
	switch p := pattern.(type) {
	case *ast.Wildcard:
	case *ast.NamePattern:
		*out = append(*out, p.Name)
	case *ast.SequencePattern:
		for _, el := range p.Elements {
			collectPatternNames(el, out)
		}
	case *ast.ObjectPattern:
		for _, slot := range p.Slots {
			if slot.Nested != nil {
				collectPatternNames(slot.Nested, out)
				continue
			}
			*out = append(*out, slot.Name)
			if slot.Alias != "" {
				*out = append(*out, slot.Alias)
			}
		}
	case *ast.DestructureSlot:
		*out = append(*out, p.Name)
	case *ast.AliasSlot:
		*out = append(*out, p.Name, p.Alias)
	case *ast.RestSlot:
		*out = append(*out, p.Name)
	}
}

// bind recursively matches pattern against value, defining names directly
// into env as it goes (so a later slot's default expression can observe an
// earlier slot's binding, matching the source matcher's behavior). It
// returns nil on full success; on structural failure it returns one of
// runtime's typed shape errors (*DestructureShapeError, *MissingKeyError)
// — callers distinguish "this case just doesn't match" (Match, via the
// Is*Error predicates) from "there is no fallback, surface it"
// (Declaration/Assignment, which simply propagate whatever bind returns).
// Any other error (from evaluating a default expression) is always fatal.
//
// bind does not undo a *partial* application of pattern itself: names bound
// before a failing slot stay defined in env. Callers that need
// all-or-nothing semantics take an Environment snapshot before calling bind
// and restore it when bind returns a non-nil error.
func (e *Evaluator) bind(pattern ast.Pattern, value runtime.Value, env *runtime.Environment) error {
	switch p := pattern.(type) {
	case *ast.Wildcard:
		return nil

	case *ast.NamePattern:
		env.Define(p.Name, value)
		return nil

	case *ast.SequencePattern:
		return e.bindSequence(p, value, env)

	case *ast.ObjectPattern:
		return e.bindObject(p, value, env)

	case *ast.DestructureSlot:
		v, err := e.withDefault(value, p.Default, env)
		if err != nil {
			return err
		}
		env.Define(p.Name, v)
		return nil

	case *ast.AliasSlot:
		v, err := e.withDefault(value, p.Default, env)
		if err != nil {
			return err
		}
		env.Define(p.Name, v)
		env.Define(p.Alias, v)
		return nil

	case *ast.RestSlot:
		env.Define(p.Name, restValue(value))
		return nil

	default:
		return runtime.NewDestructureShapeError("pattern", value)
	}
}

// withDefault substitutes defaultExpr's evaluated value when value is nil
// (the "missing" sentinel), otherwise passes value through unchanged.
func (e *Evaluator) withDefault(value runtime.Value, defaultExpr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if value != nil || defaultExpr == nil {
		return value, nil
	}
	return e.evalAwaited(defaultExpr, env)
}

func restValue(value runtime.Value) *runtime.SequenceValue {
	if value == nil {
		return &runtime.SequenceValue{}
	}
	if seq, ok := value.(*runtime.SequenceValue); ok {
		return seq.Copy()
	}
	return &runtime.SequenceValue{Elements: []runtime.Value{value}}
}

func (e *Evaluator) bindSequence(p *ast.SequencePattern, value runtime.Value, env *runtime.Environment) error {
	var elems []runtime.Value
	switch v := value.(type) {
	case nil:
		elems = nil
	case *runtime.SequenceValue:
		elems = v.Elements
	default:
		return runtime.NewDestructureShapeError("sequence", value)
	}

	for i, sub := range p.Elements {
		if rest, ok := sub.(*ast.RestSlot); ok {
			var tail []runtime.Value
			if i < len(elems) {
				tail = append(tail, elems[i:]...)
			}
			env.Define(rest.Name, &runtime.SequenceValue{Elements: tail})
			return nil
		}
		var elemVal runtime.Value
		if i < len(elems) {
			elemVal = elems[i]
		}
		if err := e.bind(sub, elemVal, env); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) bindObject(p *ast.ObjectPattern, value runtime.Value, env *runtime.Environment) error {
	mp, ok := value.(*runtime.MappingValue)
	if !ok {
		return runtime.NewDestructureShapeError("mapping", value)
	}
	for _, slot := range p.Slots {
		v, present := mp.Get(slot.Key)
		if !present {
			if slot.Default == nil {
				return runtime.NewMissingKeyError(slot.Key)
			}
			dv, err := e.evalAwaited(slot.Default, env)
			if err != nil {
				return err
			}
			v = dv
		}
		if slot.Nested != nil {
			if err := e.bind(slot.Nested, v, env); err != nil {
				return err
			}
			continue
		}
		env.Define(slot.Name, v)
		if slot.Alias != "" {
			env.Define(slot.Alias, v)
		}
	}
	return nil
}

// bindWithRollback wraps bind with snapshot/restore: on failure, env is
// left byte-identical to how it was found, satisfying the binder
// totality property for Declaration, Assignment, and parameter binding.
func (e *Evaluator) bindWithRollback(pattern ast.Pattern, value runtime.Value, env *runtime.Environment) error {
	snap := env.Snapshot()
	if err := e.bind(pattern, value, env); err != nil {
		env.Restore(snap)
		return err
	}
	return nil
}
