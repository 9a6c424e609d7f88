package vm

import "fmt"

// Handler implements one opcode's semantics against a live State, returning
// a short human-readable status summarising the mutation it made.
type Handler func(*State) string

var handlers = map[uint8]Handler{}

func register(opcode uint8, h Handler) {
	if _, exists := handlers[opcode]; exists {
		panic(fmt.Sprintf("vm: opcode 0x%02X registered twice", opcode))
	}
	handlers[opcode] = h
}

// Execute looks up opcode in the dispatch table and runs its handler. An
// unknown opcode reports a status without mutating state. Once Halted is
// set, Execute is a no-op that keeps reporting the halted status.
func (s *State) Execute(opcode uint8) string {
	if s.Halted {
		return "halted: no-op"
	}
	h, ok := handlers[opcode]
	if !ok {
		return fmt.Sprintf("unknown opcode 0x%02X", opcode)
	}
	return h(s)
}
