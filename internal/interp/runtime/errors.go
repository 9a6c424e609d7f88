package runtime

import "fmt"

// ============================================================================
// Evaluator Error Types
// ============================================================================
//
// These mirror the error kinds spec.md §7 enumerates: lookup errors
// (undefined variable/function), binding errors (already/not declared,
// destructure shape mismatch, missing key), operator errors (unsupported
// operator, incompatible operands), and the non-fatal await diagnostic
// (handled separately — it never becomes one of these, since an unresolved
// await name yields null rather than erroring).
// ============================================================================

// UndefinedVariableError is raised when an Identifier names an unbound
// variable.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// NewUndefinedVariableError builds an UndefinedVariableError.
func NewUndefinedVariableError(name string) error {
	return &UndefinedVariableError{Name: name}
}

// UndefinedFunctionError is raised when a name-form Call does not resolve
// in the async table, the sync table, or the environment.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("Undefined function '%s'", e.Name)
}

// NewUndefinedFunctionError builds an UndefinedFunctionError.
func NewUndefinedFunctionError(name string) error {
	return &UndefinedFunctionError{Name: name}
}

// AlreadyDeclaredError is raised when Declaration targets a name already
// bound in the current scope.
type AlreadyDeclaredError struct {
	Name string
}

func (e *AlreadyDeclaredError) Error() string {
	return fmt.Sprintf("Variable '%s' already declared", e.Name)
}

// NewAlreadyDeclaredError builds an AlreadyDeclaredError.
func NewAlreadyDeclaredError(name string) error {
	return &AlreadyDeclaredError{Name: name}
}

// NotDeclaredError is raised when Assignment targets a name absent from the
// current scope.
type NotDeclaredError struct {
	Name string
}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf("Variable '%s' not declared", e.Name)
}

// NewNotDeclaredError builds a NotDeclaredError.
func NewNotDeclaredError(name string) error {
	return &NotDeclaredError{Name: name}
}

// DestructureShapeError is raised when a sequence pattern is matched
// against a non-sequence, or an object pattern against a non-mapping.
type DestructureShapeError struct {
	Expected string // "sequence" or "mapping"
	Got      Value
}

func (e *DestructureShapeError) Error() string {
	gotType := "nil"
	if e.Got != nil {
		gotType = e.Got.Type()
	}
	return fmt.Sprintf("cannot destructure %s as a %s", gotType, e.Expected)
}

// NewDestructureShapeError builds a DestructureShapeError.
func NewDestructureShapeError(expected string, got Value) error {
	return &DestructureShapeError{Expected: expected, Got: got}
}

// MissingKeyError is raised when an ObjectPattern slot has no default and
// its key is absent from the matched mapping.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key '%s'", e.Key)
}

// NewMissingKeyError builds a MissingKeyError.
func NewMissingKeyError(key string) error {
	return &MissingKeyError{Key: key}
}

// UnsupportedOperatorError is raised when BinaryOp or UnaryOp name an
// operator outside the supported set.
type UnsupportedOperatorError struct {
	Op string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("Unsupported operator: %s", e.Op)
}

// NewUnsupportedOperatorError builds an UnsupportedOperatorError.
func NewUnsupportedOperatorError(op string) error {
	return &UnsupportedOperatorError{Op: op}
}

// OperandTypeError is raised when an operator is applied to operand types
// it cannot combine (e.g. "+" between a sequence and a boolean).
type OperandTypeError struct {
	Op    string
	Left  Value
	Right Value
}

func (e *OperandTypeError) Error() string {
	leftType, rightType := "nil", "nil"
	if e.Left != nil {
		leftType = e.Left.Type()
	}
	if e.Right != nil {
		rightType = e.Right.Type()
	}
	return fmt.Sprintf("arithmetic on incompatible operands: %s %s %s", leftType, e.Op, rightType)
}

// NewOperandTypeError builds an OperandTypeError.
func NewOperandTypeError(op string, left, right Value) error {
	return &OperandTypeError{Op: op, Left: left, Right: right}
}

// NotCallableError is raised when a Call's resolved callee value does not
// implement callable semantics.
type NotCallableError struct {
	Got Value
}

func (e *NotCallableError) Error() string {
	gotType := "nil"
	if e.Got != nil {
		gotType = e.Got.Type()
	}
	return fmt.Sprintf("value of type %s is not callable", gotType)
}

// NewNotCallableError builds a NotCallableError.
func NewNotCallableError(got Value) error {
	return &NotCallableError{Got: got}
}

// ============================================================================
// Error Checking Utilities
// ============================================================================

// IsUndefinedVariableError reports whether err is an UndefinedVariableError.
func IsUndefinedVariableError(err error) bool {
	_, ok := err.(*UndefinedVariableError)
	return ok
}

// IsUndefinedFunctionError reports whether err is an UndefinedFunctionError.
func IsUndefinedFunctionError(err error) bool {
	_, ok := err.(*UndefinedFunctionError)
	return ok
}

// IsAlreadyDeclaredError reports whether err is an AlreadyDeclaredError.
func IsAlreadyDeclaredError(err error) bool {
	_, ok := err.(*AlreadyDeclaredError)
	return ok
}

// IsNotDeclaredError reports whether err is a NotDeclaredError.
func IsNotDeclaredError(err error) bool {
	_, ok := err.(*NotDeclaredError)
	return ok
}

// IsDestructureShapeError reports whether err is a DestructureShapeError.
func IsDestructureShapeError(err error) bool {
	_, ok := err.(*DestructureShapeError)
	return ok
}

// IsMissingKeyError reports whether err is a MissingKeyError.
func IsMissingKeyError(err error) bool {
	_, ok := err.(*MissingKeyError)
	return ok
}

// IsUnsupportedOperatorError reports whether err is an
// UnsupportedOperatorError.
func IsUnsupportedOperatorError(err error) bool {
	_, ok := err.(*UnsupportedOperatorError)
	return ok
}

// IsOperandTypeError reports whether err is an OperandTypeError.
func IsOperandTypeError(err error) bool {
	_, ok := err.(*OperandTypeError)
	return ok
}

// IsNotCallableError reports whether err is a NotCallableError.
func IsNotCallableError(err error) bool {
	_, ok := err.(*NotCallableError)
	return ok
}
