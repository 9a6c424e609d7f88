package vm

import "fmt"

// Language ops group, opcodes 0x54-0x8F (of the 0x54-0xBB reference range):
// string primitives, flag transfers, the full SETcc family, the remaining
// ten Jcc conditions that didn't fit in the control-flow group, INC (at its
// spec-anchored 0x78), and CBW/CWD/CALLF recovered from original_source's
// executor beyond the distilled spec's representative-semantics list.
func init() {
	register(0x54, func(s *State) string { // MOVSB
		s.WriteU8(s.Registers[EDI], s.ReadU8(s.Registers[ESI]))
		s.Registers[ESI]++
		s.Registers[EDI]++
		return "movsb"
	})
	register(0x55, func(s *State) string { // MOVSD
		s.WriteU32(s.Registers[EDI], s.ReadU32(s.Registers[ESI]))
		s.Registers[ESI] += 4
		s.Registers[EDI] += 4
		return "movsd"
	})
	register(0x56, func(s *State) string { // CMPSB
		r := uint64(s.ReadU8(s.Registers[ESI])) - uint64(s.ReadU8(s.Registers[EDI]))
		s.updateFlags(r, 8)
		s.Registers[ESI]++
		s.Registers[EDI]++
		return "cmpsb"
	})
	register(0x57, func(s *State) string { // CMPSD
		r := uint64(s.ReadU32(s.Registers[ESI])) - uint64(s.ReadU32(s.Registers[EDI]))
		s.updateFlags(r, 32)
		s.Registers[ESI] += 4
		s.Registers[EDI] += 4
		return "cmpsd"
	})
	register(0x58, func(s *State) string { // SCASB
		al := uint8(s.Registers[EAX])
		r := uint64(al) - uint64(s.ReadU8(s.Registers[EDI]))
		s.updateFlags(r, 8)
		s.Registers[EDI]++
		return "scasb"
	})
	register(0x59, func(s *State) string { // SCASD
		r := uint64(s.Registers[EAX]) - uint64(s.ReadU32(s.Registers[EDI]))
		s.updateFlags(r, 32)
		s.Registers[EDI] += 4
		return "scasd"
	})
	register(0x5A, func(s *State) string { // LODSB
		b := s.ReadU8(s.Registers[ESI])
		s.Registers[EAX] = s.Registers[EAX]&^0xFF | uint32(b)
		s.Registers[ESI]++
		return "lodsb"
	})
	register(0x5B, func(s *State) string { // LODSD
		s.Registers[EAX] = s.ReadU32(s.Registers[ESI])
		s.Registers[ESI] += 4
		return "lodsd"
	})
	register(0x5C, func(s *State) string { // STOSB
		s.WriteU8(s.Registers[EDI], uint8(s.Registers[EAX]))
		s.Registers[EDI]++
		return "stosb"
	})
	register(0x5D, func(s *State) string { // STOSD
		s.WriteU32(s.Registers[EDI], s.Registers[EAX])
		s.Registers[EDI] += 4
		return "stosd"
	})

	register(0x5E, func(s *State) string { // PUSHF
		s.Push(s.packFlags())
		return "pushf"
	})
	register(0x5F, func(s *State) string { // POPF
		s.unpackFlags(s.Pop())
		return "popf"
	})
	register(0x60, func(s *State) string { // SAHF
		ah := uint8(s.Registers[EAX] >> 8)
		s.Flags.SF = ah&0x80 != 0
		s.Flags.ZF = ah&0x40 != 0
		s.Flags.AF = ah&0x10 != 0
		s.Flags.PF = ah&0x04 != 0
		s.Flags.CF = ah&0x01 != 0
		return "sahf"
	})
	register(0x61, func(s *State) string { // LAHF
		var ah uint32
		if s.Flags.SF {
			ah |= 0x80
		}
		if s.Flags.ZF {
			ah |= 0x40
		}
		if s.Flags.AF {
			ah |= 0x10
		}
		if s.Flags.PF {
			ah |= 0x04
		}
		ah |= 0x02
		if s.Flags.CF {
			ah |= 0x01
		}
		s.Registers[EAX] = s.Registers[EAX]&0xFFFF00FF | ah<<8
		return "lahf"
	})

	setccNames := []string{"JE", "JNE", "JS", "JNS", "JO", "JNO", "JB", "JAE", "JBE", "JA", "JL", "JGE", "JLE", "JG", "JP", "JNP"}
	for i, name := range setccNames {
		registerSetcc(uint8(0x62+i), name)
	}

	for i, name := range []string{"JO", "JNO", "JBE", "JA", "JL", "JGE"} {
		registerJcc(uint8(0x72+i), name)
	}

	register(0x78, func(s *State) string { // INC (spec anchor: EAX)
		r := uint64(s.Registers[EAX]) + 1
		s.updateFlags(r, 32)
		s.Registers[EAX] = uint32(r)
		return fmt.Sprintf("inc eax -> 0x%08X", s.Registers[EAX])
	})

	for i, name := range []string{"JLE", "JG", "JP", "JNP"} {
		registerJcc(uint8(0x79+i), name)
	}

	register(0x7D, func(s *State) string { // CBW
		al := int8(s.Registers[EAX])
		s.Registers[EAX] = s.Registers[EAX]&0xFFFF0000 | uint32(uint16(int16(al)))
		return "cbw"
	})
	register(0x7E, func(s *State) string { // CWD
		ax := int16(s.Registers[EAX])
		if ax < 0 {
			s.Registers[EDX] = 0xFFFFFFFF
		} else {
			s.Registers[EDX] = 0
		}
		return "cwd"
	})
	register(0x7F, func(s *State) string { // CALLF
		s.Push(s.EIP)
		s.EIP = 0xF0000000
		return "callf -> far vector"
	})

	register(0x80, func(s *State) string {
		r := uint64(s.Registers[ESI]) + uint64(s.Registers[EDI])
		s.updateFlags(r, 32)
		s.Registers[ESI] = uint32(r)
		return "add esi, edi"
	})
	register(0x81, func(s *State) string {
		r := uint64(s.Registers[ESI]) - uint64(s.Registers[EDI])
		s.updateFlags(r, 32)
		s.Registers[ESI] = uint32(r)
		return "sub esi, edi"
	})
	register(0x82, func(s *State) string {
		s.Registers[ESI] = s.Registers[EDI]
		return "mov esi, edi"
	})
	register(0x83, func(s *State) string {
		s.Registers[EDI] = s.Registers[ESI]
		return "mov edi, esi"
	})
	register(0x84, func(s *State) string {
		s.Push(s.Registers[ECX])
		return "push ecx"
	})
	register(0x85, func(s *State) string {
		s.Registers[ECX] = s.Pop()
		return "pop ecx"
	})
	register(0x86, func(s *State) string {
		s.Push(s.Registers[EDX])
		return "push edx"
	})
	register(0x87, func(s *State) string {
		s.Registers[EDX] = s.Pop()
		return "pop edx"
	})
	register(0x88, func(s *State) string {
		r := uint64(s.Registers[ECX]) + 1
		s.updateFlags(r, 32)
		s.Registers[ECX] = uint32(r)
		return "inc ecx"
	})
	register(0x89, func(s *State) string {
		r := uint64(s.Registers[ECX]) - 1
		s.updateFlags(r, 32)
		s.Registers[ECX] = uint32(r)
		return "dec ecx"
	})
	register(0x8A, func(s *State) string {
		r := uint64(s.Registers[EDX]) + 1
		s.updateFlags(r, 32)
		s.Registers[EDX] = uint32(r)
		return "inc edx"
	})
	register(0x8B, func(s *State) string {
		r := uint64(s.Registers[EDX]) - 1
		s.updateFlags(r, 32)
		s.Registers[EDX] = uint32(r)
		return "dec edx"
	})
	register(0x8C, func(s *State) string {
		r := s.Registers[ESI] & s.Registers[EDI]
		s.updateFlags(uint64(r), 32)
		s.Registers[ESI] = r
		return "and esi, edi"
	})
	register(0x8D, func(s *State) string {
		r := s.Registers[ESI] | s.Registers[EDI]
		s.updateFlags(uint64(r), 32)
		s.Registers[ESI] = r
		return "or esi, edi"
	})
	register(0x8E, func(s *State) string {
		r := s.Registers[ESI] ^ s.Registers[EDI]
		s.updateFlags(uint64(r), 32)
		s.Registers[ESI] = r
		return "xor esi, edi"
	})
	register(0x8F, func(s *State) string {
		r := uint64(s.Registers[ESI]) - uint64(s.Registers[EDI])
		s.updateFlags(r, 32)
		return "cmp esi, edi"
	})
}

// registerSetcc installs a SETcc handler: it writes 0 or 1 to the low byte
// of EAX based on the same condition predicates as Jcc.
func registerSetcc(opcode uint8, name string) {
	var cond condition
	for _, c := range conditions {
		if c.Name == name {
			cond = c
			break
		}
	}
	register(opcode, func(s *State) string {
		var v uint32
		if cond.Eval(s.Flags) {
			v = 1
		}
		s.Registers[EAX] = s.Registers[EAX]&^0xFF | v
		return fmt.Sprintf("set%s -> al=%d", cond.Name[1:], v)
	})
}

// packFlags encodes the six flags as a word, bit i holding the i-th flag in
// Flags' declaration order (ZF, CF, SF, OF, PF, AF).
func (s *State) packFlags() uint32 {
	var w uint32
	if s.Flags.ZF {
		w |= 1 << 0
	}
	if s.Flags.CF {
		w |= 1 << 1
	}
	if s.Flags.SF {
		w |= 1 << 2
	}
	if s.Flags.OF {
		w |= 1 << 3
	}
	if s.Flags.PF {
		w |= 1 << 4
	}
	if s.Flags.AF {
		w |= 1 << 5
	}
	return w
}

func (s *State) unpackFlags(w uint32) {
	s.Flags.ZF = w&(1<<0) != 0
	s.Flags.CF = w&(1<<1) != 0
	s.Flags.SF = w&(1<<2) != 0
	s.Flags.OF = w&(1<<3) != 0
	s.Flags.PF = w&(1<<4) != 0
	s.Flags.AF = w&(1<<5) != 0
}
