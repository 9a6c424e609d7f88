package vm

import "testing"

func TestUpdateFlagsZeroResult(t *testing.T) {
	s := New(16)
	s.updateFlags(0, 32)
	if !s.Flags.ZF {
		t.Errorf("expected ZF=true for a zero result")
	}
	if s.Flags.SF {
		t.Errorf("expected SF=false for a zero result")
	}
	if s.Flags.OF || s.Flags.AF {
		t.Errorf("expected OF=AF=false always")
	}
}

func TestUpdateFlagsSignBit(t *testing.T) {
	s := New(16)
	s.updateFlags(0x80000000, 32)
	if !s.Flags.SF {
		t.Errorf("expected SF=true when bit31 is set")
	}
	if s.Flags.ZF {
		t.Errorf("expected ZF=false for a non-zero result")
	}
}

func TestUpdateFlagsCarryOnTruncation(t *testing.T) {
	s := New(16)
	s.updateFlags(uint64(1)<<32, 32) // one bit beyond a 32-bit width
	if !s.Flags.CF {
		t.Errorf("expected CF=true when the result does not fit in width bits")
	}
	if !s.Flags.ZF {
		t.Errorf("expected ZF=true since the truncated low 32 bits are zero")
	}
}

func TestUpdateFlagsParityEvenPopcount(t *testing.T) {
	s := New(16)
	s.updateFlags(0x03, 32) // low byte 0b00000011, two set bits: even
	if !s.Flags.PF {
		t.Errorf("expected PF=true for an even popcount of the low byte")
	}

	s.updateFlags(0x01, 32) // low byte 0b00000001, one set bit: odd
	if s.Flags.PF {
		t.Errorf("expected PF=false for an odd popcount of the low byte")
	}
}

func TestConditionsTableHasSixteenEntries(t *testing.T) {
	if len(conditions) != 16 {
		t.Fatalf("expected exactly 16 conditions, got %d", len(conditions))
	}
	seen := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		if seen[c.Name] {
			t.Errorf("duplicate condition name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestConditionJEMatchesZF(t *testing.T) {
	for _, c := range conditions {
		if c.Name != "JE" {
			continue
		}
		if !c.Eval(Flags{ZF: true}) {
			t.Errorf("JE should be taken when ZF=true")
		}
		if c.Eval(Flags{ZF: false}) {
			t.Errorf("JE should not be taken when ZF=false")
		}
		return
	}
	t.Fatal("JE condition not found")
}
