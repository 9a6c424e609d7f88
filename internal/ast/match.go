package ast

// Case is one arm of a Match: Pattern must succeed against the matched
// value, Guard (if present) must then evaluate truthy in the
// pattern-extended environment, and only then does Body run.
type Case struct {
	Pattern Pattern
	Guard   Node // nil when the case has no guard
	Body    []Node
}

// Match evaluates Expr once and tries each Case in order; the first whose
// pattern (and guard, if any) succeeds runs its body. If no case matches,
// Match is a no-op.
type Match struct {
	Expr  Node
	Cases []Case
}

func (n *Match) Accept(v Visitor) (any, error) { return v.VisitMatch(n) }
