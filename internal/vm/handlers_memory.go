package vm

import "fmt"

// Memory group, opcodes 0x00-0x0A: the stack and basic register/memory
// movement primitives every other group builds on.
func init() {
	register(0x00, func(s *State) string {
		return "nop"
	})
	register(0x01, func(s *State) string {
		s.Push(s.Registers[EAX])
		return "push eax"
	})
	register(0x02, func(s *State) string {
		s.Registers[EAX] = s.Pop()
		return fmt.Sprintf("pop eax -> 0x%08X", s.Registers[EAX])
	})
	register(0x03, func(s *State) string {
		s.Push(s.Registers[EBX])
		return "push ebx"
	})
	register(0x04, func(s *State) string {
		s.Registers[EBX] = s.Pop()
		return fmt.Sprintf("pop ebx -> 0x%08X", s.Registers[EBX])
	})
	register(0x05, func(s *State) string {
		s.Registers[EAX] = s.Registers[EBX]
		return "mov eax, ebx"
	})
	register(0x06, func(s *State) string {
		s.Registers[EBX] = s.Registers[EAX]
		return "mov ebx, eax"
	})
	register(0x07, func(s *State) string {
		s.Registers[EAX] = s.ReadU32(s.Registers[ESI])
		return fmt.Sprintf("mov eax, [esi] -> 0x%08X", s.Registers[EAX])
	})
	register(0x08, func(s *State) string {
		s.WriteU32(s.Registers[EDI], s.Registers[EAX])
		return "mov [edi], eax"
	})
	register(0x09, func(s *State) string {
		s.Registers[EDI] = s.Registers[ESI]
		return "lea edi, [esi]"
	})
	register(0x0A, func(s *State) string {
		s.Registers[EAX], s.Registers[EBX] = s.Registers[EBX], s.Registers[EAX]
		return "xchg eax, ebx"
	})
}
