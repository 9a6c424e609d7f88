package vm

import "testing"

func TestNewDefaultsMemorySize(t *testing.T) {
	s := New(0)
	if len(s.Memory) != DefaultMemorySize {
		t.Fatalf("expected memory size %d, got %d", DefaultMemorySize, len(s.Memory))
	}
	if s.Registers[ESP] != uint32(DefaultMemorySize)-4 {
		t.Fatalf("expected ESP = memSize-4, got 0x%X", s.Registers[ESP])
	}
}

func TestNewCustomSize(t *testing.T) {
	s := New(256)
	if len(s.Memory) != 256 {
		t.Fatalf("expected memory size 256, got %d", len(s.Memory))
	}
	if s.Registers[ESP] != 252 {
		t.Fatalf("expected ESP = 252, got %d", s.Registers[ESP])
	}
}

func TestRegisterString(t *testing.T) {
	cases := map[Register]string{EAX: "EAX", ESP: "ESP", registerCount: "R8"}
	for reg, want := range cases {
		if got := reg.String(); got != want {
			t.Errorf("Register(%d).String() = %q, want %q", reg, got, want)
		}
	}
}

func TestDumpReportsRegistersAndFlags(t *testing.T) {
	s := New(64)
	s.Registers[EAX] = 42
	s.Flags.ZF = true

	registers, flags := s.Dump()
	if registers["EAX"] != 42 {
		t.Errorf("expected EAX = 42 in dump, got %d", registers["EAX"])
	}
	if !flags["ZF"] {
		t.Errorf("expected ZF = true in dump")
	}
	if flags["CF"] {
		t.Errorf("expected CF = false in dump")
	}
}

// Scenario S5: EAX=7, EBX=3; ADD gives EAX=10, ZF=0, SF=0; INC gives EAX=11.
func TestScenarioS5(t *testing.T) {
	s := New(DefaultMemorySize)
	s.Registers[EAX] = 7
	s.Registers[EBX] = 3

	s.Execute(0x0B) // ADD eax, ebx
	if s.Registers[EAX] != 10 {
		t.Fatalf("after ADD: expected EAX=10, got %d", s.Registers[EAX])
	}
	if s.Flags.ZF || s.Flags.SF {
		t.Fatalf("after ADD: expected ZF=0 SF=0, got ZF=%v SF=%v", s.Flags.ZF, s.Flags.SF)
	}

	s.Execute(0x78) // INC eax
	if s.Registers[EAX] != 11 {
		t.Fatalf("after INC: expected EAX=11, got %d", s.Registers[EAX])
	}
}

// Scenario S6: with EIP=0x100, CALL rel32 pushes EIP and advances it by 4;
// RET restores EIP and ESP.
func TestScenarioS6(t *testing.T) {
	s := New(DefaultMemorySize)
	s.EIP = 0x100
	espBefore := s.Registers[ESP]

	s.Execute(0x30) // CALL rel32
	if s.EIP != 0x104 {
		t.Fatalf("after CALL: expected EIP=0x104, got 0x%X", s.EIP)
	}
	if s.Registers[ESP] != espBefore-4 {
		t.Fatalf("after CALL: expected ESP to drop by 4, got delta %d", int64(s.Registers[ESP])-int64(espBefore))
	}
	if got := s.ReadU32(s.Registers[ESP]); got != 0x100 {
		t.Fatalf("after CALL: expected stacked return address 0x100, got 0x%X", got)
	}

	s.Execute(0x32) // RET
	if s.EIP != 0x100 {
		t.Fatalf("after RET: expected EIP=0x100, got 0x%X", s.EIP)
	}
	if s.Registers[ESP] != espBefore {
		t.Fatalf("after RET: expected ESP restored to 0x%X, got 0x%X", espBefore, s.Registers[ESP])
	}
}
