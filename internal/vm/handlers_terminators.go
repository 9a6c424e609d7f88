package vm

// Terminators group, opcodes 0x40-0x53: HLT and the misc control/flag
// toggles that accompany it in a conventional one-byte opcode map. None of
// these are named in the spec's representative semantics beyond the group
// label, so semantics here are the obvious ones for each mnemonic.
func init() {
	register(0x40, func(s *State) string {
		s.Halted = true
		return "hlt"
	})
	register(0x41, func(s *State) string {
		return "nop (fpu)"
	})
	register(0x42, func(s *State) string {
		return "wait"
	})
	register(0x43, func(s *State) string {
		return "cli"
	})
	register(0x44, func(s *State) string {
		return "sti"
	})
	register(0x45, func(s *State) string {
		s.Flags.CF = false
		return "clc"
	})
	register(0x46, func(s *State) string {
		s.Flags.CF = true
		return "stc"
	})
	register(0x47, func(s *State) string {
		return "cld"
	})
	register(0x48, func(s *State) string {
		return "std"
	})
	register(0x49, func(s *State) string {
		s.Flags.CF = !s.Flags.CF
		return "cmc"
	})
	register(0x4A, func(s *State) string {
		for _, r := range []Register{EAX, ECX, EDX, EBX, ESP, EBP, ESI, EDI} {
			s.Push(s.Registers[r])
		}
		return "pusha"
	})
	register(0x4B, func(s *State) string {
		for _, r := range []Register{EDI, ESI, EBP, ESP, EBX, EDX, ECX, EAX} {
			if r == ESP {
				s.Pop()
				continue
			}
			s.Registers[r] = s.Pop()
		}
		return "popa"
	})
	register(0x4C, func(s *State) string {
		s.Push(s.Registers[EBP])
		s.Registers[EBP] = s.Registers[ESP]
		return "enter"
	})
	register(0x4D, func(s *State) string {
		s.Registers[ESP] = s.Registers[EBP]
		s.Registers[EBP] = s.Pop()
		return "leave"
	})
	register(0x4E, func(s *State) string {
		addr := s.Registers[EBX] + s.Registers[EAX]&0xFF
		s.Registers[EAX] = s.Registers[EAX]&^0xFF | uint32(s.ReadU8(addr))
		return "xlat"
	})
	register(0x4F, func(s *State) string {
		return "bound (unchecked)"
	})
	register(0x50, func(s *State) string {
		return "arpl (unchecked)"
	})
	register(0x51, func(s *State) string {
		return "lock prefix"
	})
	register(0x52, func(s *State) string {
		return "rep prefix"
	})
	register(0x53, func(s *State) string {
		return "esc"
	})
}
