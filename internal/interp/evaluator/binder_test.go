package evaluator

import (
	"testing"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

func TestPatternNamesCollectsAllBindableNames(t *testing.T) {
	seq, err := ast.NewSequencePattern([]ast.Pattern{
		&ast.NamePattern{Name: "x"},
		&ast.RestSlot{Name: "rest"},
	})
	if err != nil {
		t.Fatalf("NewSequencePattern: %v", err)
	}
	names := PatternNames(seq)
	want := []string{"x", "rest"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBindWithRollbackLeavesEnvUnchangedOnFailure(t *testing.T) {
	ev := New()
	defer ev.Close()
	env := runtime.NewEnvironment()
	env.Define("existing", runtime.NewInteger(1))
	snapBefore := env.Snapshot()

	pattern := &ast.ObjectPattern{Slots: []ast.ObjectSlot{{Key: "missing", Name: "x"}}}
	err := ev.bindWithRollback(pattern, runtime.NewMapping(), env)
	if err == nil {
		t.Fatal("expected a missing-key error")
	}
	if env.Has("x") {
		t.Error("expected the failed binding to leave no trace")
	}
	if env.Len() != len(snapBefore) {
		t.Errorf("expected env to be restored to its original shape, got len %d want %d", env.Len(), len(snapBefore))
	}
}

func TestBindSequenceRestSlotAbsorbsTail(t *testing.T) {
	ev := New()
	defer ev.Close()
	env := runtime.NewEnvironment()

	seq, err := ast.NewSequencePattern([]ast.Pattern{
		&ast.NamePattern{Name: "head"},
		&ast.RestSlot{Name: "tail"},
	})
	if err != nil {
		t.Fatalf("NewSequencePattern: %v", err)
	}
	value := &runtime.SequenceValue{Elements: []runtime.Value{
		runtime.NewInteger(1), runtime.NewInteger(2), runtime.NewInteger(3),
	}}
	if err := ev.bind(seq, value, env); err != nil {
		t.Fatalf("bind: %v", err)
	}
	head, _ := env.Get("head")
	if head.(*runtime.IntegerValue).Value != 1 {
		t.Errorf("expected head=1, got %v", head)
	}
	tail, _ := env.Get("tail")
	tailSeq := tail.(*runtime.SequenceValue)
	if len(tailSeq.Elements) != 2 {
		t.Fatalf("expected tail to absorb the remaining 2 elements, got %d", len(tailSeq.Elements))
	}
}

func TestBindObjectSlotDefaultAppliesWhenKeyMissing(t *testing.T) {
	ev := New()
	defer ev.Close()
	env := runtime.NewEnvironment()

	pattern := &ast.ObjectPattern{Slots: []ast.ObjectSlot{
		{Key: "missing", Name: "x", Default: &ast.Literal{Value: int64(7)}},
	}}
	if err := ev.bind(pattern, runtime.NewMapping(), env); err != nil {
		t.Fatalf("bind: %v", err)
	}
	v, ok := env.Get("x")
	if !ok || v.(*runtime.IntegerValue).Value != 7 {
		t.Fatalf("expected x=7 from the default, got %#v", v)
	}
}

func TestBindSequenceAgainstNonSequenceIsShapeError(t *testing.T) {
	ev := New()
	defer ev.Close()
	env := runtime.NewEnvironment()

	seq, _ := ast.NewSequencePattern([]ast.Pattern{&ast.NamePattern{Name: "x"}})
	err := ev.bind(seq, runtime.NewInteger(1), env)
	if !runtime.IsDestructureShapeError(err) {
		t.Fatalf("expected a DestructureShapeError, got %v", err)
	}
}
