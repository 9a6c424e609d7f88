package ast

// Declaration introduces a new binding: Target is matched against the
// evaluated Expr via the Binder. The spec requires Target's names to be
// absent from the current scope; the evaluator, not this node, enforces
// that.
type Declaration struct {
	Target Pattern
	Expr   Node
}

func (n *Declaration) Accept(v Visitor) (any, error) { return v.VisitDeclaration(n) }

// Assignment behaves like Declaration except every name Target binds must
// already exist in the current scope.
type Assignment struct {
	Target Pattern
	Expr   Node
}

func (n *Assignment) Accept(v Visitor) (any, error) { return v.VisitAssignment(n) }

// Print evaluates Expr and writes its value as a single standard-output
// line.
type Print struct {
	Expr Node
}

func (n *Print) Accept(v Visitor) (any, error) { return v.VisitPrint(n) }

// Return unwinds the enclosing routine or async block. The evaluator never
// evaluates Expr itself when it encounters a Return node mid-block — the
// block that dispatched into the Return evaluates Expr, in the routine's
// own environment, once it decides to unwind.
type Return struct {
	Expr Node
}

func (n *Return) Accept(v Visitor) (any, error) { return v.VisitReturn(n) }

// If executes Then when Cond is truthy, Else (if present) otherwise.
type If struct {
	Cond Node
	Then []Node
	Else []Node // nil when there is no else arm
}

func (n *If) Accept(v Visitor) (any, error) { return v.VisitIf(n) }

// Loop is a half-open integer range loop: Start and End are evaluated once,
// and Var is bound (and may be mutated by Body) to each integer in
// [Start, End).
type Loop struct {
	Var   string
	Start Node
	End   Node
	Body  []Node
}

func (n *Loop) Accept(v Visitor) (any, error) { return v.VisitLoop(n) }

// TryCatch runs Try; any error aborts it, is reported as a single-line
// diagnostic, and Catch then runs.
type TryCatch struct {
	Try   []Node
	Catch []Node
}

func (n *TryCatch) Accept(v Visitor) (any, error) { return v.VisitTryCatch(n) }
