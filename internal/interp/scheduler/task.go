// Package scheduler implements the cooperative task registry: named
// suspensions started on their own goroutine, a bounded worker pool for
// blocking offload, and the single/flat/nested Await join semantics.
package scheduler

import "github.com/cwbudde/go-veil/internal/interp/runtime"

// Task is a handle to one enrolled suspension. Join blocks until the
// suspension's goroutine has produced a result (or an error), and is safe
// to call more than once — repeated Joins on the same Task all observe the
// same outcome.
type Task struct {
	Name string
	done chan struct{}
	result runtime.Value
	err    error
}

// Join waits for the task to complete and returns its result.
func (t *Task) Join() (runtime.Value, error) {
	<-t.done
	return t.result, t.err
}

// AsValue wraps t as a runtime.TaskValue whose Join delegates to t.Join.
// The evaluator does not call it: it joins a *Task inline wherever a value
// is needed (a Declaration's expression, a call argument, Print).
func (t *Task) AsValue() *runtime.TaskValue {
	return &runtime.TaskValue{Name: t.Name, Join: t.Join}
}
