package evaluator

import (
	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

// VisitMatch evaluates Expr once, then tries each Case in order: a case's
// Pattern is attempted against the matched value with the environment
// snapshotted first; a structural mismatch (or a failed Guard) restores
// that snapshot and moves to the next case; any other error from
// evaluating a default or the guard aborts Match entirely. The first case
// whose pattern and guard both succeed runs its Body with its bindings
// still in place.
func (e *Evaluator) VisitMatch(n *ast.Match) (any, error) {
	value, err := e.evalAwaited(n.Expr, e.env)
	if err != nil {
		return nil, err
	}
	for _, c := range n.Cases {
		snap := e.env.Snapshot()
		if err := e.bind(c.Pattern, value, e.env); err != nil {
			if runtime.IsDestructureShapeError(err) || runtime.IsMissingKeyError(err) {
				e.env.Restore(snap)
				continue
			}
			return nil, err
		}
		if c.Guard != nil {
			guardVal, err := e.evalAwaited(c.Guard, e.env)
			if err != nil {
				e.env.Restore(snap)
				return nil, err
			}
			if !runtime.Truthy(guardVal) {
				e.env.Restore(snap)
				continue
			}
		}
		return e.execBlock(c.Body, e.env)
	}
	return nil, nil
}
