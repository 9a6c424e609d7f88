package vm

import "math/bits"

// updateFlags applies the flag-update discipline for an arithmetic or
// logical result at the given bit width: ZF/SF/CF/PF are computed, OF and
// AF are always cleared.
func (s *State) updateFlags(result uint64, width uint) {
	mask := uint64(1)<<width - 1
	signBit := uint64(1) << (width - 1)
	truncated := result & mask

	s.Flags.ZF = truncated == 0
	s.Flags.SF = truncated&signBit != 0
	s.Flags.CF = result != truncated
	s.Flags.PF = bits.OnesCount8(uint8(truncated&0xFF))%2 == 0
	s.Flags.OF = false
	s.Flags.AF = false
}

// condition is a named predicate over the flag set, shared by the Jcc and
// SETcc families (the spec defines both over the identical table).
type condition struct {
	Name string
	Eval func(Flags) bool
}

// conditions is the closed 16-entry table from the spec's Jcc section.
// JE/JZ and JNE/JNZ are the same opcode under two names in the real
// encoding; here each condition gets exactly one mnemonic and one byte.
var conditions = []condition{
	{"JE", func(f Flags) bool { return f.ZF }},
	{"JNE", func(f Flags) bool { return !f.ZF }},
	{"JS", func(f Flags) bool { return f.SF }},
	{"JNS", func(f Flags) bool { return !f.SF }},
	{"JB", func(f Flags) bool { return f.CF }},
	{"JAE", func(f Flags) bool { return !f.CF }},
	{"JO", func(f Flags) bool { return f.OF }},
	{"JNO", func(f Flags) bool { return !f.OF }},
	{"JBE", func(f Flags) bool { return f.CF || f.ZF }},
	{"JA", func(f Flags) bool { return !f.CF && !f.ZF }},
	{"JL", func(f Flags) bool { return f.SF != f.OF }},
	{"JGE", func(f Flags) bool { return f.SF == f.OF }},
	{"JLE", func(f Flags) bool { return f.ZF || f.SF != f.OF }},
	{"JG", func(f Flags) bool { return !f.ZF && f.SF == f.OF }},
	{"JP", func(f Flags) bool { return f.PF }},
	{"JNP", func(f Flags) bool { return !f.PF }},
}
