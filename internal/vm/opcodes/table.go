// Package opcodes holds the 144-entry static reference table describing
// the vm package's opcode space: group, hex/binary encodings, a low-level
// IR mnemonic, and the assembly mnemonic. It is metadata for external
// tooling (search, dump, stats) — it does not itself execute anything; not
// every table entry necessarily has a registered vm.Handler, and vm.State
// reports "unknown opcode" for any that don't.
package opcodes

import "fmt"

// Group names one of the six opcode ranges from the component design.
type Group string

const (
	Memory       Group = "Memory"
	Arithmetic   Group = "Arithmetic"
	Logic        Group = "Logic"
	ControlFlow  Group = "ControlFlow"
	Terminators  Group = "Terminators"
	LanguageOps  Group = "LanguageOps"
)

// Entry is one row of the opcode reference table.
type Entry struct {
	Opcode   uint8
	Hex      string
	Bin      string
	IR       string
	Mnemonic string
	Group    Group
}

// raw is the compact source list each Entry is built from: group, mnemonic,
// and an IR name. Opcodes are assigned sequentially within each group's
// stated byte range, in the same order vm's handlers_*.go files register
// them.
type raw struct {
	group    Group
	mnemonic string
	ir       string
}

var rawTable = buildRawTable()

func buildRawTable() map[uint8]raw {
	m := make(map[uint8]raw, 144)

	memory := []raw{
		{Memory, "NOP", "nop"},
		{Memory, "PUSH EAX", "push.eax"},
		{Memory, "POP EAX", "pop.eax"},
		{Memory, "PUSH EBX", "push.ebx"},
		{Memory, "POP EBX", "pop.ebx"},
		{Memory, "MOV EAX, EBX", "mov.eax.ebx"},
		{Memory, "MOV EBX, EAX", "mov.ebx.eax"},
		{Memory, "MOV EAX, [ESI]", "load.eax.esi"},
		{Memory, "MOV [EDI], EAX", "store.edi.eax"},
		{Memory, "LEA EDI, [ESI]", "lea.edi.esi"},
		{Memory, "XCHG EAX, EBX", "xchg.eax.ebx"},
	}
	assign(m, 0x00, memory)

	arithmetic := []raw{
		{Arithmetic, "ADD EAX, EBX", "add.eax.ebx"},
		{Arithmetic, "SUB EAX, EBX", "sub.eax.ebx"},
		{Arithmetic, "MUL EBX", "mul.ebx"},
		{Arithmetic, "IMUL EBX", "imul.ebx"},
		{Arithmetic, "DIV EBX", "div.ebx"},
		{Arithmetic, "IDIV EBX", "idiv.ebx"},
		{Arithmetic, "DEC EAX", "dec.eax"},
		{Arithmetic, "NEG EAX", "neg.eax"},
		{Arithmetic, "ADC EAX, EBX", "adc.eax.ebx"},
		{Arithmetic, "SBB EAX, EBX", "sbb.eax.ebx"},
		{Arithmetic, "CMP EAX, EBX", "cmp.eax.ebx"},
		{Arithmetic, "TEST EAX, EBX", "test.eax.ebx"},
		{Arithmetic, "INC EBX", "inc.ebx"},
		{Arithmetic, "DEC EBX", "dec.ebx"},
		{Arithmetic, "ADD ECX, EDX", "add.ecx.edx"},
		{Arithmetic, "SUB ECX, EDX", "sub.ecx.edx"},
	}
	assign(m, 0x0B, arithmetic)

	logic := []raw{
		{Logic, "AND EAX, EBX", "and.eax.ebx"},
		{Logic, "OR EAX, EBX", "or.eax.ebx"},
		{Logic, "XOR EAX, EBX", "xor.eax.ebx"},
		{Logic, "NOT EAX", "not.eax"},
		{Logic, "SHL EAX, 1", "shl.eax"},
		{Logic, "SHR EAX, 1", "shr.eax"},
		{Logic, "SAR EAX, 1", "sar.eax"},
		{Logic, "ROL EAX, 1", "rol.eax"},
		{Logic, "ROR EAX, 1", "ror.eax"},
		{Logic, "AND EBX, ECX", "and.ebx.ecx"},
		{Logic, "OR EBX, ECX", "or.ebx.ecx"},
		{Logic, "XOR EBX, ECX", "xor.ebx.ecx"},
		{Logic, "SHL EBX, 1", "shl.ebx"},
		{Logic, "SHR EBX, 1", "shr.ebx"},
		{Logic, "SAR EBX, 1", "sar.ebx"},
		{Logic, "NOT EBX", "not.ebx"},
		{Logic, "TEST EBX, ECX", "test.ebx.ecx"},
		{Logic, "CMP EBX, ECX", "cmp.ebx.ecx"},
		{Logic, "XCHG EBX, ECX", "xchg.ebx.ecx"},
	}
	assign(m, 0x1B, logic)

	control := []raw{
		{ControlFlow, "JMP rel8", "jmp.rel8"},
		{ControlFlow, "JMP rel32", "jmp.rel32"},
		{ControlFlow, "CALL rel32", "call.rel32"},
		{ControlFlow, "CALL rel8", "call.rel8"},
		{ControlFlow, "RET", "ret"},
		{ControlFlow, "RET imm16", "ret.imm16"},
		{ControlFlow, "INT 0x80", "int"},
		{ControlFlow, "INT3", "int3"},
		{ControlFlow, "IRET", "iret"},
		{ControlFlow, "LOOP", "loop"},
		{ControlFlow, "LOOPE", "loope"},
		{ControlFlow, "LOOPNE", "loopne"},
		{ControlFlow, "JE/JZ", "jcc.e"},
		{ControlFlow, "JNE/JNZ", "jcc.ne"},
		{ControlFlow, "JS", "jcc.s"},
		{ControlFlow, "JNS", "jcc.ns"},
		{ControlFlow, "JB", "jcc.b"},
		{ControlFlow, "JAE", "jcc.ae"},
	}
	assign(m, 0x2E, control)

	terminators := []raw{
		{Terminators, "HLT", "hlt"},
		{Terminators, "NOP (FPU)", "fnop"},
		{Terminators, "WAIT", "wait"},
		{Terminators, "CLI", "cli"},
		{Terminators, "STI", "sti"},
		{Terminators, "CLC", "clc"},
		{Terminators, "STC", "stc"},
		{Terminators, "CLD", "cld"},
		{Terminators, "STD", "std"},
		{Terminators, "CMC", "cmc"},
		{Terminators, "PUSHA", "pusha"},
		{Terminators, "POPA", "popa"},
		{Terminators, "ENTER", "enter"},
		{Terminators, "LEAVE", "leave"},
		{Terminators, "XLAT", "xlat"},
		{Terminators, "BOUND", "bound"},
		{Terminators, "ARPL", "arpl"},
		{Terminators, "LOCK", "lock"},
		{Terminators, "REP", "rep"},
		{Terminators, "ESC", "esc"},
	}
	assign(m, 0x40, terminators)

	lang := []raw{
		{LanguageOps, "MOVSB", "movsb"},
		{LanguageOps, "MOVSD", "movsd"},
		{LanguageOps, "CMPSB", "cmpsb"},
		{LanguageOps, "CMPSD", "cmpsd"},
		{LanguageOps, "SCASB", "scasb"},
		{LanguageOps, "SCASD", "scasd"},
		{LanguageOps, "LODSB", "lodsb"},
		{LanguageOps, "LODSD", "lodsd"},
		{LanguageOps, "STOSB", "stosb"},
		{LanguageOps, "STOSD", "stosd"},
		{LanguageOps, "PUSHF", "pushf"},
		{LanguageOps, "POPF", "popf"},
		{LanguageOps, "SAHF", "sahf"},
		{LanguageOps, "LAHF", "lahf"},
		{LanguageOps, "SETE/SETZ", "setcc.e"},
		{LanguageOps, "SETNE/SETNZ", "setcc.ne"},
		{LanguageOps, "SETS", "setcc.s"},
		{LanguageOps, "SETNS", "setcc.ns"},
		{LanguageOps, "SETO", "setcc.o"},
		{LanguageOps, "SETNO", "setcc.no"},
		{LanguageOps, "SETB", "setcc.b"},
		{LanguageOps, "SETAE", "setcc.ae"},
		{LanguageOps, "SETBE", "setcc.be"},
		{LanguageOps, "SETA", "setcc.a"},
		{LanguageOps, "SETL", "setcc.l"},
		{LanguageOps, "SETGE", "setcc.ge"},
		{LanguageOps, "SETLE", "setcc.le"},
		{LanguageOps, "SETG", "setcc.g"},
		{LanguageOps, "SETP", "setcc.p"},
		{LanguageOps, "SETNP", "setcc.np"},
		{LanguageOps, "JO", "jcc.o"},
		{LanguageOps, "JNO", "jcc.no"},
		{LanguageOps, "JBE", "jcc.be"},
		{LanguageOps, "JA", "jcc.a"},
		{LanguageOps, "JL", "jcc.l"},
		{LanguageOps, "JGE", "jcc.ge"},
		{LanguageOps, "INC EAX", "inc.eax"},
		{LanguageOps, "JLE", "jcc.le"},
		{LanguageOps, "JG", "jcc.g"},
		{LanguageOps, "JP", "jcc.p"},
		{LanguageOps, "JNP", "jcc.np"},
		{LanguageOps, "CBW", "cbw"},
		{LanguageOps, "CWD", "cwd"},
		{LanguageOps, "CALLF", "callf"},
		{LanguageOps, "ADD ESI, EDI", "add.esi.edi"},
		{LanguageOps, "SUB ESI, EDI", "sub.esi.edi"},
		{LanguageOps, "MOV ESI, EDI", "mov.esi.edi"},
		{LanguageOps, "MOV EDI, ESI", "mov.edi.esi"},
		{LanguageOps, "PUSH ECX", "push.ecx"},
		{LanguageOps, "POP ECX", "pop.ecx"},
		{LanguageOps, "PUSH EDX", "push.edx"},
		{LanguageOps, "POP EDX", "pop.edx"},
		{LanguageOps, "INC ECX", "inc.ecx"},
		{LanguageOps, "DEC ECX", "dec.ecx"},
		{LanguageOps, "INC EDX", "inc.edx"},
		{LanguageOps, "DEC EDX", "dec.edx"},
		{LanguageOps, "AND ESI, EDI", "and.esi.edi"},
		{LanguageOps, "OR ESI, EDI", "or.esi.edi"},
		{LanguageOps, "XOR ESI, EDI", "xor.esi.edi"},
		{LanguageOps, "CMP ESI, EDI", "cmp.esi.edi"},
	}
	assign(m, 0x54, lang)

	if len(m) != 144 {
		panic(fmt.Sprintf("opcodes: expected 144 table entries, built %d", len(m)))
	}
	return m
}

func assign(m map[uint8]raw, start uint8, entries []raw) {
	for i, e := range entries {
		m[start+uint8(i)] = e
	}
}

// Table is the full opcode reference table, keyed by opcode byte.
var Table = buildTable()

func buildTable() map[uint8]Entry {
	t := make(map[uint8]Entry, len(rawTable))
	for opcode, r := range rawTable {
		t[opcode] = Entry{
			Opcode:   opcode,
			Hex:      fmt.Sprintf("0x%02X", opcode),
			Bin:      fmt.Sprintf("%08b", opcode),
			IR:       r.ir,
			Mnemonic: r.mnemonic,
			Group:    r.group,
		}
	}
	return t
}
