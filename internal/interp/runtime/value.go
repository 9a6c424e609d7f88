// Package runtime provides the core runtime value system and environment
// model for the veil evaluator: the tagged value union, the snapshot-based
// environment, and the error taxonomy errors surfaced by evaluation carry.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is implemented by every runtime value kind: integer, float,
// boolean, string, sequence, mapping, task handle, and callable.
type Value interface {
	// Type returns the type name of the value (e.g. "INTEGER", "STRING"),
	// used in diagnostics.
	Type() string
	// String returns the value's display representation, used by Print and
	// by diagnostics.
	String() string
}

// IntegerValue is a signed 64-bit integer.
type IntegerValue struct {
	Value int64
}

func (v *IntegerValue) Type() string   { return "INTEGER" }
func (v *IntegerValue) String() string { return strconv.FormatInt(v.Value, 10) }

// FloatValue is a 64-bit floating point number.
type FloatValue struct {
	Value float64
}

func (v *FloatValue) Type() string   { return "FLOAT" }
func (v *FloatValue) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// BooleanValue is a boolean.
type BooleanValue struct {
	Value bool
}

func (v *BooleanValue) Type() string   { return "BOOLEAN" }
func (v *BooleanValue) String() string { return strconv.FormatBool(v.Value) }

// StringValue is a string.
type StringValue struct {
	Value string
}

func (v *StringValue) Type() string   { return "STRING" }
func (v *StringValue) String() string { return v.Value }

// SequenceValue is an ordered, 0-indexed list of values.
type SequenceValue struct {
	Elements []Value
}

func (v *SequenceValue) Type() string { return "SEQUENCE" }
func (v *SequenceValue) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = displayOf(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Copy returns a shallow copy of the sequence's backing slice, so that
// rest-slot binding and destructuring never alias the original value's
// storage.
func (v *SequenceValue) Copy() *SequenceValue {
	out := make([]Value, len(v.Elements))
	copy(out, v.Elements)
	return &SequenceValue{Elements: out}
}

// MappingValue is a string-keyed mapping with stable insertion order, used
// both as a general runtime value and as the shape ObjectPattern matches
// against.
type MappingValue struct {
	keys   []string
	values map[string]Value
}

// NewMapping builds an empty MappingValue; Set adds keys in insertion
// order.
func NewMapping() *MappingValue {
	return &MappingValue{values: make(map[string]Value)}
}

func (v *MappingValue) Type() string { return "MAPPING" }

func (v *MappingValue) String() string {
	parts := make([]string, 0, len(v.keys))
	for _, k := range v.keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, displayOf(v.values[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get looks up key, reporting whether it is present.
func (v *MappingValue) Get(key string) (Value, bool) {
	val, ok := v.values[key]
	return val, ok
}

// Set inserts or overwrites key. Insertion order is preserved for existing
// keys; a new key is appended.
func (v *MappingValue) Set(key string, val Value) {
	if _, exists := v.values[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.values[key] = val
}

// Keys returns the mapping's keys in insertion order.
func (v *MappingValue) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Len reports the number of entries.
func (v *MappingValue) Len() int { return len(v.keys) }

// TaskValue is an opaque handle to an enrolled suspension, retrievable by
// name from the scheduler. Join is supplied by the scheduler package at
// construction time so that runtime does not need to depend on it.
type TaskValue struct {
	Name string
	Join func() (Value, error)
}

func (v *TaskValue) Type() string   { return "TASK" }
func (v *TaskValue) String() string { return "<task " + v.Name + ">" }

// CallableValue is a closure: synchronous or asynchronous routine /
// lambda, capturing the environment at its definition site. Params and
// Body hold ast.Pattern and ast.Node elements respectively, typed as any
// here so that this package (which the ast package's Visitor results flow
// into) does not import ast back; the evaluator, which imports both
// packages, type-asserts them at call time.
type CallableValue struct {
	Name    string
	Params  []any
	Body    []any
	Env     *Environment
	IsAsync bool

	// Builtin, when non-nil, overrides Body/Env/Params for built-in
	// combinators (map/filter/reduce) that are registered as ordinary
	// environment values rather than special syntax.
	Builtin func(args []Value) (Value, error)
}

func (v *CallableValue) Type() string { return "CALLABLE" }
func (v *CallableValue) String() string {
	if v.Name != "" {
		return "<callable " + v.Name + ">"
	}
	return "<callable>"
}

// Truthy centralizes the truthiness coercion used by If, Match guards, and
// the filter combinator: integers are true iff non-zero, strings iff
// non-empty, sequences/mappings iff non-empty, booleans at face value.
// Floats follow the integer rule. A nil value is falsey.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case *BooleanValue:
		return val.Value
	case *IntegerValue:
		return val.Value != 0
	case *FloatValue:
		return val.Value != 0
	case *StringValue:
		return val.Value != ""
	case *SequenceValue:
		return len(val.Elements) > 0
	case *MappingValue:
		return val.Len() > 0
	default:
		return true
	}
}

func displayOf(v Value) string {
	if v == nil {
		return "null"
	}
	if s, ok := v.(*StringValue); ok {
		return strconv.Quote(s.Value)
	}
	return v.String()
}
