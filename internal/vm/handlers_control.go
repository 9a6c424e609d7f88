package vm

import "fmt"

// Control flow group, opcodes 0x2E-0x3F. JMP/CALL model control transfers
// as a bump of EIP by the operand's width rather than decoding a real
// displacement (per the spec's "bump-by-width" resolution of this open
// question). The first six of the sixteen Jcc conditions live here; the
// rest continue in the language-ops group where there is room.
func init() {
	register(0x2E, func(s *State) string {
		s.EIP += 1
		return fmt.Sprintf("jmp rel8 -> eip=0x%X", s.EIP)
	})
	register(0x2F, func(s *State) string {
		s.EIP += 4
		return fmt.Sprintf("jmp rel32 -> eip=0x%X", s.EIP)
	})
	register(0x30, func(s *State) string {
		s.Push(s.EIP)
		s.EIP += 4
		return fmt.Sprintf("call rel32 -> eip=0x%X", s.EIP)
	})
	register(0x31, func(s *State) string {
		s.Push(s.EIP)
		s.EIP += 1
		return fmt.Sprintf("call rel8 -> eip=0x%X", s.EIP)
	})
	register(0x32, func(s *State) string {
		s.EIP = s.Pop()
		return fmt.Sprintf("ret -> eip=0x%X", s.EIP)
	})
	register(0x33, func(s *State) string {
		s.EIP = s.Pop()
		s.Registers[ESP] += 2
		return fmt.Sprintf("ret imm16 -> eip=0x%X", s.EIP)
	})
	register(0x34, func(s *State) string {
		s.Push(s.EIP)
		s.EIP = 0x80
		return "int 0x80"
	})
	register(0x35, func(s *State) string {
		s.Push(s.EIP)
		s.EIP = 0xCC
		return "int3"
	})
	register(0x36, func(s *State) string {
		s.EIP = s.Pop()
		return fmt.Sprintf("iret -> eip=0x%X", s.EIP)
	})
	register(0x37, func(s *State) string {
		s.Registers[ECX]--
		if s.Registers[ECX] != 0 {
			s.EIP += 1
			return "loop taken"
		}
		return "loop not taken"
	})
	register(0x38, func(s *State) string {
		s.Registers[ECX]--
		if s.Registers[ECX] != 0 && s.Flags.ZF {
			s.EIP += 1
			return "loope taken"
		}
		return "loope not taken"
	})
	register(0x39, func(s *State) string {
		s.Registers[ECX]--
		if s.Registers[ECX] != 0 && !s.Flags.ZF {
			s.EIP += 1
			return "loopne taken"
		}
		return "loopne not taken"
	})

	for i, name := range []string{"JE", "JNE", "JS", "JNS", "JB", "JAE"} {
		registerJcc(uint8(0x3A+i), name)
	}
}

// registerJcc installs a conditional-branch handler for the named
// condition (looked up in the shared conditions table).
func registerJcc(opcode uint8, name string) {
	var cond condition
	for _, c := range conditions {
		if c.Name == name {
			cond = c
			break
		}
	}
	register(opcode, func(s *State) string {
		if cond.Eval(s.Flags) {
			s.EIP += 1
			return fmt.Sprintf("%s taken", cond.Name)
		}
		return fmt.Sprintf("%s not taken", cond.Name)
	})
}
