package vm

import "testing"

func TestPushPopRoundTrip(t *testing.T) {
	s := New(64)
	espBefore := s.Registers[ESP]

	s.Push(0xDEADBEEF)
	if s.Registers[ESP] != espBefore-4 {
		t.Fatalf("expected ESP to drop by 4 after Push, got delta %d", int64(s.Registers[ESP])-int64(espBefore))
	}

	got := s.Pop()
	if got != 0xDEADBEEF {
		t.Fatalf("expected popped value 0xDEADBEEF, got 0x%X", got)
	}
	if s.Registers[ESP] != espBefore {
		t.Fatalf("expected ESP restored after Pop, got 0x%X want 0x%X", s.Registers[ESP], espBefore)
	}
}

func TestMemoryOutsideTouchedWindowUnchanged(t *testing.T) {
	s := New(64)
	for i := range s.Memory {
		s.Memory[i] = 0xAA
	}

	s.WriteU32(16, 0x11223344)

	for i, b := range s.Memory {
		if i >= 16 && i < 20 {
			continue
		}
		if b != 0xAA {
			t.Fatalf("byte %d outside the written window changed to 0x%02X", i, b)
		}
	}
}

func TestReadWriteOutOfRangeIsSafe(t *testing.T) {
	s := New(16)
	if got := s.ReadU32(100); got != 0 {
		t.Errorf("expected out-of-range ReadU32 to return 0, got %d", got)
	}
	if got := s.ReadU8(100); got != 0 {
		t.Errorf("expected out-of-range ReadU8 to return 0, got %d", got)
	}
	s.WriteU32(100, 0xFF) // must not panic
	s.WriteU8(100, 0xFF)  // must not panic
}

func TestReadWriteU8RoundTrip(t *testing.T) {
	s := New(16)
	s.WriteU8(4, 0x7F)
	if got := s.ReadU8(4); got != 0x7F {
		t.Fatalf("expected 0x7F, got 0x%X", got)
	}
}
