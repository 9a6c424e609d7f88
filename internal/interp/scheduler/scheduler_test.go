package scheduler

import (
	"errors"
	"io"
	"testing"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

func TestEnrollAndAwaitSingle(t *testing.T) {
	s := New(2, io.Discard)
	defer s.Close()

	s.Enroll("A", func() (runtime.Value, error) { return runtime.NewInteger(7), nil })

	v, err := s.Await(ast.AwaitTarget{Name: "A"})
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	iv, ok := v.(*runtime.IntegerValue)
	if !ok || iv.Value != 7 {
		t.Fatalf("expected IntegerValue(7), got %#v", v)
	}
}

func TestAwaitUnknownNameReturnsNil(t *testing.T) {
	s := New(2, io.Discard)
	defer s.Close()

	v, err := s.Await(ast.AwaitTarget{Name: "nope"})
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil for an unknown task name, got %#v", v)
	}
}

// Flat Await joins concurrently but the result order matches the name
// order given, regardless of which task actually finishes first.
func TestAwaitFlatPreservesNameOrder(t *testing.T) {
	s := New(4, io.Discard)
	defer s.Close()

	fast := make(chan struct{})
	s.Enroll("slow", func() (runtime.Value, error) {
		<-fast
		return runtime.NewInteger(1), nil
	})
	s.Enroll("fast", func() (runtime.Value, error) {
		close(fast)
		return runtime.NewInteger(2), nil
	})

	v, err := s.Await(ast.AwaitTarget{Flat: []string{"slow", "fast"}})
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	seq, ok := v.(*runtime.SequenceValue)
	if !ok || len(seq.Elements) != 2 {
		t.Fatalf("expected a 2-element sequence, got %#v", v)
	}
	if seq.Elements[0].(*runtime.IntegerValue).Value != 1 {
		t.Errorf("expected first element to be slow's result (1), got %v", seq.Elements[0])
	}
	if seq.Elements[1].(*runtime.IntegerValue).Value != 2 {
		t.Errorf("expected second element to be fast's result (2), got %v", seq.Elements[1])
	}
}

func TestAwaitFlatPropagatesError(t *testing.T) {
	s := New(4, io.Discard)
	defer s.Close()

	boom := errors.New("boom")
	s.Enroll("ok", func() (runtime.Value, error) { return runtime.NewInteger(1), nil })
	s.Enroll("bad", func() (runtime.Value, error) { return nil, boom })

	_, err := s.Await(ast.AwaitTarget{Flat: []string{"ok", "bad"}})
	if err == nil {
		t.Fatal("expected an error from the failing task to propagate")
	}
}

func TestAwaitNestedRecurses(t *testing.T) {
	s := New(4, io.Discard)
	defer s.Close()

	s.Enroll("A", func() (runtime.Value, error) { return runtime.NewInteger(1), nil })
	s.Enroll("B", func() (runtime.Value, error) { return runtime.NewInteger(2), nil })
	s.Enroll("C", func() (runtime.Value, error) { return runtime.NewInteger(3), nil })

	v, err := s.Await(ast.AwaitTarget{Nested: []ast.AwaitTarget{
		{Name: "A"},
		{Flat: []string{"B", "C"}},
	}})
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	seq, ok := v.(*runtime.SequenceValue)
	if !ok || len(seq.Elements) != 2 {
		t.Fatalf("expected a 2-element outer sequence, got %#v", v)
	}
	if seq.Elements[0].(*runtime.IntegerValue).Value != 1 {
		t.Errorf("expected first element 1, got %v", seq.Elements[0])
	}
	inner, ok := seq.Elements[1].(*runtime.SequenceValue)
	if !ok || len(inner.Elements) != 2 {
		t.Fatalf("expected a nested 2-element sequence, got %#v", seq.Elements[1])
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	s := New(2, io.Discard)
	defer s.Close()

	task := s.Enroll("once", func() (runtime.Value, error) { return runtime.NewInteger(9), nil })
	v1, err1 := task.Join()
	v2, err2 := task.Join()
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if v1.(*runtime.IntegerValue).Value != v2.(*runtime.IntegerValue).Value {
		t.Errorf("repeated Join calls should observe the same result")
	}
}

func TestWorkerPoolRunsOffloadedJob(t *testing.T) {
	s := New(2, io.Discard)
	defer s.Close()

	task := s.Offload("job", func() (runtime.Value, error) { return runtime.NewString("done"), nil })
	v, err := task.Join()
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if v.(*runtime.StringValue).Value != "done" {
		t.Errorf("expected offloaded job's result, got %v", v)
	}
}
