package runtime

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", nil, false},
		{"true", NewBoolean(true), true},
		{"false", NewBoolean(false), false},
		{"zero int", NewInteger(0), false},
		{"nonzero int", NewInteger(1), true},
		{"empty string", NewString(""), false},
		{"nonempty string", NewString("x"), true},
		{"empty sequence", &SequenceValue{}, false},
		{"nonempty sequence", &SequenceValue{Elements: []Value{NewInteger(1)}}, true},
		{"empty mapping", NewMapping(), false},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%s) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMappingPreservesInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("b", NewInteger(2))
	m.Set("a", NewInteger(1))
	m.Set("b", NewInteger(20)) // overwrite must not move "b"

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("expected insertion order [b a], got %v", keys)
	}
	v, ok := m.Get("b")
	if !ok || v.(*IntegerValue).Value != 20 {
		t.Errorf("expected overwritten b=20, got %v", v)
	}
}

func TestSequenceCopyDoesNotAliasBackingArray(t *testing.T) {
	orig := &SequenceValue{Elements: []Value{NewInteger(1), NewInteger(2)}}
	cp := orig.Copy()
	cp.Elements[0] = NewInteger(99)

	if orig.Elements[0].(*IntegerValue).Value == 99 {
		t.Error("expected Copy to return an independent backing slice")
	}
}

func TestBooleanSingletons(t *testing.T) {
	if NewBoolean(true) != NewBoolean(true) {
		t.Error("expected NewBoolean(true) to return the same singleton instance")
	}
	if NewBoolean(false) != NewBoolean(false) {
		t.Error("expected NewBoolean(false) to return the same singleton instance")
	}
}

func TestValueStringRepresentations(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewInteger(42), "42"},
		{NewFloat(1.5), "1.5"},
		{NewBoolean(true), "true"},
		{NewString("hi"), "hi"},
		{&SequenceValue{Elements: []Value{NewInteger(1), NewString("x")}}, `[1, "x"]`},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
