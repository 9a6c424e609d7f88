package vm

// Logic group, opcodes 0x1B-0x2D: bitwise and shift operations on EAX/EBX,
// plus a second set on EBX/ECX so the table isn't a single register pair
// repeated nineteen times. SAR preserves the sign bit; SHL/SHR do not.
func init() {
	register(0x1B, func(s *State) string {
		r := s.Registers[EAX] & s.Registers[EBX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "and eax, ebx"
	})
	register(0x1C, func(s *State) string {
		r := s.Registers[EAX] | s.Registers[EBX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "or eax, ebx"
	})
	register(0x1D, func(s *State) string {
		r := s.Registers[EAX] ^ s.Registers[EBX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "xor eax, ebx"
	})
	register(0x1E, func(s *State) string {
		r := ^s.Registers[EAX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "not eax"
	})
	register(0x1F, func(s *State) string {
		r := uint64(s.Registers[EAX]) << 1
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return "shl eax, 1"
	})
	register(0x20, func(s *State) string {
		r := s.Registers[EAX] >> 1
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "shr eax, 1"
	})
	register(0x21, func(s *State) string {
		r := uint32(int32(s.Registers[EAX]) >> 1)
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "sar eax, 1"
	})
	register(0x22, func(s *State) string {
		v := s.Registers[EAX]
		r := v<<1 | v>>31
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "rol eax, 1"
	})
	register(0x23, func(s *State) string {
		v := s.Registers[EAX]
		r := v>>1 | v<<31
		s.updateFlags(uint64(r), 32)
		s.Registers[EAX] = r
		return "ror eax, 1"
	})
	register(0x24, func(s *State) string {
		r := s.Registers[EBX] & s.Registers[ECX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EBX] = r
		return "and ebx, ecx"
	})
	register(0x25, func(s *State) string {
		r := s.Registers[EBX] | s.Registers[ECX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EBX] = r
		return "or ebx, ecx"
	})
	register(0x26, func(s *State) string {
		r := s.Registers[EBX] ^ s.Registers[ECX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EBX] = r
		return "xor ebx, ecx"
	})
	register(0x27, func(s *State) string {
		r := uint64(s.Registers[EBX]) << 1
		s.updateFlags(r, 32)
		s.Registers[EBX] = uint32(r)
		return "shl ebx, 1"
	})
	register(0x28, func(s *State) string {
		r := s.Registers[EBX] >> 1
		s.updateFlags(uint64(r), 32)
		s.Registers[EBX] = r
		return "shr ebx, 1"
	})
	register(0x29, func(s *State) string {
		r := uint32(int32(s.Registers[EBX]) >> 1)
		s.updateFlags(uint64(r), 32)
		s.Registers[EBX] = r
		return "sar ebx, 1"
	})
	register(0x2A, func(s *State) string {
		r := ^s.Registers[EBX]
		s.updateFlags(uint64(r), 32)
		s.Registers[EBX] = r
		return "not ebx"
	})
	register(0x2B, func(s *State) string {
		r := s.Registers[EBX] & s.Registers[ECX]
		s.updateFlags(uint64(r), 32)
		return "test ebx, ecx"
	})
	register(0x2C, func(s *State) string {
		r := uint64(s.Registers[EBX]) - uint64(s.Registers[ECX])
		s.updateFlags(r, 32)
		return "cmp ebx, ecx"
	})
	register(0x2D, func(s *State) string {
		s.Registers[EBX], s.Registers[ECX] = s.Registers[ECX], s.Registers[EBX]
		return "xchg ebx, ecx"
	})
}
