// Package ast defines the Abstract Syntax Tree node types for the veil
// scripting language. Nodes carry only structural fields: no lexer token,
// no source position, and no static type is attached to them, since no
// lexer or parser ships in this repository — drivers build trees directly
// with the node constructors below and hand the root to the evaluator.
package ast

// Node is the base interface every AST node implements. Dispatch is by
// double-dispatch (visitor pattern): a node's Accept method calls back into
// the matching Visit method on v, mirroring the source interpreter's
// node.accept(self) convention.
type Node interface {
	Accept(v Visitor) (any, error)
}

// Visitor is implemented by the evaluator. Each method receives one node
// kind and returns either a runtime value (wrapped in any), a suspended
// computation, the Return sentinel, or an error. A Visitor that does not
// recognize a node kind has no fallback in Go — the compiler enforces that
// every kind listed in this interface is handled, which is the tagged-sum
// analogue of the source's "kind not handled" visitor fallthrough.
type Visitor interface {
	VisitProgram(*Program) (any, error)
	VisitMain(*Main) (any, error)
	VisitProg(*Prog) (any, error)
	VisitTask(*Task) (any, error)
	VisitLogic(*Logic) (any, error)

	VisitDeclaration(*Declaration) (any, error)
	VisitAssignment(*Assignment) (any, error)
	VisitPrint(*Print) (any, error)
	VisitReturn(*Return) (any, error)
	VisitIf(*If) (any, error)
	VisitLoop(*Loop) (any, error)
	VisitTryCatch(*TryCatch) (any, error)

	VisitAsync(*Async) (any, error)
	VisitAwait(*Await) (any, error)
	VisitRoutine(*Routine) (any, error)
	VisitAsyncRoutine(*AsyncRoutine) (any, error)
	VisitCall(*Call) (any, error)
	VisitMatch(*Match) (any, error)

	VisitBinaryOp(*BinaryOp) (any, error)
	VisitUnaryOp(*UnaryOp) (any, error)
	VisitLiteral(*Literal) (any, error)
	VisitIdentifier(*Identifier) (any, error)
	VisitAsyncLambda(*AsyncLambda) (any, error)
}

// Program is one of the three admissible root nodes (alongside Main and
// Prog). Drivers in imperative mode build a Program and pass it to the
// evaluator's single entrypoint.
type Program struct {
	Body []Node
}

func (n *Program) Accept(v Visitor) (any, error) { return v.VisitProgram(n) }

// Main is an alternative root node with identical execution semantics to
// Program; the source exposes both spellings for the same construct.
type Main struct {
	Body []Node
}

func (n *Main) Accept(v Visitor) (any, error) { return v.VisitMain(n) }

// Prog is a named root node, used by drivers that want the program itself
// to carry an identifying name (for diagnostics, not for evaluation).
type Prog struct {
	Name string
	Body []Node
}

func (n *Prog) Accept(v Visitor) (any, error) { return v.VisitProg(n) }
