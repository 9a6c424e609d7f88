package opcodes

import "testing"

func TestTableHasExactly144Entries(t *testing.T) {
	if len(Table) != 144 {
		t.Fatalf("expected 144 table entries, got %d", len(Table))
	}
}

func TestTableAnchors(t *testing.T) {
	cases := []struct {
		opcode   uint8
		mnemonic string
	}{
		{0x0B, "ADD EAX, EBX"},
		{0x78, "INC EAX"},
		{0x30, "CALL rel32"},
		{0x32, "RET"},
	}
	for _, c := range cases {
		e, ok := Lookup(c.opcode)
		if !ok {
			t.Fatalf("opcode 0x%02X missing from table", c.opcode)
		}
		if e.Mnemonic != c.mnemonic {
			t.Errorf("opcode 0x%02X: expected mnemonic %q, got %q", c.opcode, c.mnemonic, e.Mnemonic)
		}
	}
}

func TestLookupUnknownOpcode(t *testing.T) {
	if _, ok := Lookup(0xFF); ok {
		t.Errorf("expected opcode 0xFF to be absent from the table")
	}
}

func TestEntryHexAndBinFormatting(t *testing.T) {
	e, ok := Lookup(0x0B)
	if !ok {
		t.Fatal("opcode 0x0B missing")
	}
	if e.Hex != "0x0B" {
		t.Errorf("expected Hex = 0x0B, got %q", e.Hex)
	}
	if e.Bin != "00001011" {
		t.Errorf("expected Bin = 00001011, got %q", e.Bin)
	}
}

func TestGroupedPartitionsAllEntries(t *testing.T) {
	grouped := Grouped()
	total := 0
	for _, entries := range grouped {
		total += len(entries)
	}
	if total != 144 {
		t.Fatalf("expected grouped entries to total 144, got %d", total)
	}
	if len(grouped[Memory]) != 11 {
		t.Errorf("expected 11 Memory entries, got %d", len(grouped[Memory]))
	}
	if len(grouped[Arithmetic]) != 16 {
		t.Errorf("expected 16 Arithmetic entries, got %d", len(grouped[Arithmetic]))
	}
}
