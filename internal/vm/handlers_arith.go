package vm

import "fmt"

// Arithmetic group, opcodes 0x0B-0x1A. ADD/SUB/MUL/IMUL/DIV/IDIV compute on
// EAX/EBX (or EDX:EAX for the wide forms), matching the spec's
// representative semantics; DIV/IDIV by zero halts rather than computing a
// result.
func init() {
	register(0x0B, func(s *State) string {
		r := uint64(s.Registers[EAX]) + uint64(s.Registers[EBX])
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return fmt.Sprintf("add eax, ebx -> 0x%08X", s.Registers[EAX])
	})
	register(0x0C, func(s *State) string {
		r := uint64(s.Registers[EAX]) - uint64(s.Registers[EBX])
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return fmt.Sprintf("sub eax, ebx -> 0x%08X", s.Registers[EAX])
	})
	register(0x0D, func(s *State) string {
		wide := uint64(s.Registers[EAX]) * uint64(s.Registers[EBX])
		s.Registers[EAX] = uint32(wide)
		s.Registers[EDX] = uint32(wide >> 32)
		s.updateFlags(wide, 32)
		return fmt.Sprintf("mul ebx -> edx:eax = 0x%08X:%08X", s.Registers[EDX], s.Registers[EAX])
	})
	register(0x0E, func(s *State) string {
		wide := int64(int32(s.Registers[EAX])) * int64(int32(s.Registers[EBX]))
		s.Registers[EAX] = uint32(wide)
		s.Registers[EDX] = uint32(wide >> 32)
		s.updateFlags(uint64(wide), 32)
		return fmt.Sprintf("imul ebx -> edx:eax = 0x%08X:%08X", s.Registers[EDX], s.Registers[EAX])
	})
	register(0x0F, func(s *State) string {
		if s.Registers[EBX] == 0 {
			s.Halted = true
			return "div ebx -> divide by zero, halted"
		}
		dividend := uint64(s.Registers[EDX])<<32 | uint64(s.Registers[EAX])
		divisor := uint64(s.Registers[EBX])
		s.Registers[EAX] = uint32(dividend / divisor)
		s.Registers[EDX] = uint32(dividend % divisor)
		return fmt.Sprintf("div ebx -> eax=0x%08X edx=0x%08X", s.Registers[EAX], s.Registers[EDX])
	})
	register(0x10, func(s *State) string {
		if s.Registers[EBX] == 0 {
			s.Halted = true
			return "idiv ebx -> divide by zero, halted"
		}
		dividend := int64(int32(s.Registers[EDX]))<<32 | int64(uint64(s.Registers[EAX]))
		divisor := int64(int32(s.Registers[EBX]))
		s.Registers[EAX] = uint32(dividend / divisor)
		s.Registers[EDX] = uint32(dividend % divisor)
		return fmt.Sprintf("idiv ebx -> eax=0x%08X edx=0x%08X", s.Registers[EAX], s.Registers[EDX])
	})
	register(0x11, func(s *State) string {
		r := uint64(s.Registers[EAX]) - 1
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return "dec eax"
	})
	register(0x12, func(s *State) string {
		r := uint64(-int64(int32(s.Registers[EAX])))
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return "neg eax"
	})
	register(0x13, func(s *State) string {
		carry := uint64(0)
		if s.Flags.CF {
			carry = 1
		}
		r := uint64(s.Registers[EAX]) + uint64(s.Registers[EBX]) + carry
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return "adc eax, ebx"
	})
	register(0x14, func(s *State) string {
		carry := uint64(0)
		if s.Flags.CF {
			carry = 1
		}
		r := uint64(s.Registers[EAX]) - uint64(s.Registers[EBX]) - carry
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return "sbb eax, ebx"
	})
	register(0x15, func(s *State) string {
		r := uint64(s.Registers[EAX]) - uint64(s.Registers[EBX])
		s.updateFlags(r, 32)
		return "cmp eax, ebx"
	})
	register(0x16, func(s *State) string {
		r := uint64(s.Registers[EAX] & s.Registers[EBX])
		s.updateFlags(r, 32)
		return "test eax, ebx"
	})
	register(0x17, func(s *State) string {
		r := uint64(s.Registers[EBX]) + 1
		s.updateFlags(r, 32)
		s.Registers[EBX] = uint32(r)
		return "inc ebx"
	})
	register(0x18, func(s *State) string {
		r := uint64(s.Registers[EBX]) - 1
		s.updateFlags(r, 32)
		s.Registers[EBX] = uint32(r)
		return "dec ebx"
	})
	register(0x19, func(s *State) string {
		r := uint64(s.Registers[ECX]) + uint64(s.Registers[EDX])
		s.updateFlags(r, 32)
		s.Registers[ECX] = uint32(r)
		return "add ecx, edx"
	})
	register(0x1A, func(s *State) string {
		r := uint64(s.Registers[ECX]) - uint64(s.Registers[EDX])
		s.updateFlags(r, 32)
		s.Registers[ECX] = uint32(r)
		return "sub ecx, edx"
	})
}
