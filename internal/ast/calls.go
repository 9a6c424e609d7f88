package ast

// Async names (or leaves anonymous) a block that runs as a cooperative
// task. If Name is empty, the scheduler synthesizes one (task_<id>).
type Async struct {
	Name string
	Body []Node
}

func (n *Async) Accept(v Visitor) (any, error) { return v.VisitAsync(n) }

// AwaitTarget is the shape of an Await's target: a single task name, a flat
// list of names (joined await), or a list that itself contains nested
// AwaitTargets (recursive joined await). Exactly one of Name/Flat/Nested is
// populated.
type AwaitTarget struct {
	Name   string
	Flat   []string
	Nested []AwaitTarget
}

// Await suspends until Target's task(s) complete and yields their result(s).
type Await struct {
	Target AwaitTarget
}

func (n *Await) Accept(v Visitor) (any, error) { return v.VisitAwait(n) }

// Routine is a named synchronous callable.
type Routine struct {
	Name   string
	Params []Pattern
	Body   []Node
}

func (n *Routine) Accept(v Visitor) (any, error) { return v.VisitRoutine(n) }

// AsyncRoutine is a named callable whose call produces a suspended
// computation (a task), rather than running to completion synchronously.
type AsyncRoutine struct {
	Name   string
	Params []Pattern
	Body   []Node
}

func (n *AsyncRoutine) Accept(v Visitor) (any, error) { return v.VisitAsyncRoutine(n) }

// Call invokes Callee with Args. Callee is either a bare name (resolved
// against the async routines table, then the sync routines table, then the
// environment) or an arbitrary expression that must evaluate to a callable.
type Call struct {
	Callee   Node // *Identifier for a name-form call, any expression otherwise
	CalleeID string
	IsName   bool
	Args     []Node
}

func (n *Call) Accept(v Visitor) (any, error) { return v.VisitCall(n) }

// NewNameCall builds a Call whose callee is resolved by name through the
// routine-table-then-environment lookup order.
func NewNameCall(name string, args ...Node) *Call {
	return &Call{IsName: true, CalleeID: name, Args: args}
}

// NewExprCall builds a Call whose callee is an arbitrary expression.
func NewExprCall(callee Node, args ...Node) *Call {
	return &Call{Callee: callee, Args: args}
}
