package opcodes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// sortedOpcodes returns every opcode in Table in ascending order.
func sortedOpcodes() []uint8 {
	out := make([]uint8, 0, len(Table))
	for op := range Table {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Lookup finds the entry at a given opcode byte.
func Lookup(opcode uint8) (Entry, bool) {
	e, ok := Table[opcode]
	return e, ok
}

// DumpJSON renders the whole table as a JSON document, one object per
// opcode, built incrementally with sjson.Set the way a streaming encoder
// would rather than via encoding/json's struct tags.
func DumpJSON() (string, error) {
	doc := "[]"
	var err error
	for i, op := range sortedOpcodes() {
		e := Table[op]
		path := fmt.Sprintf("%d", i)
		if doc, err = sjson.Set(doc, path+".opcode", e.Hex); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path+".bin", e.Bin); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path+".ir", e.IR); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path+".mnemonic", e.Mnemonic); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path+".group", string(e.Group)); err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Search returns every entry whose hex, binary, IR, or mnemonic field
// contains key as a case-insensitive substring. It queries the table's own
// JSON rendering with gjson rather than re-scanning the Go structs, so
// search and dump-table always agree on what the table contains.
func Search(key string) ([]Entry, error) {
	doc, err := DumpJSON()
	if err != nil {
		return nil, err
	}
	key = strings.ToLower(key)
	var matches []Entry
	gjson.Parse(doc).ForEach(func(_, row gjson.Result) bool {
		hex := strings.ToLower(row.Get("opcode").String())
		bin := strings.ToLower(row.Get("bin").String())
		ir := strings.ToLower(row.Get("ir").String())
		mnemonic := strings.ToLower(row.Get("mnemonic").String())
		if strings.Contains(hex, key) || strings.Contains(bin, key) ||
			strings.Contains(ir, key) || strings.Contains(mnemonic, key) {
			var op uint8
			fmt.Sscanf(row.Get("opcode").String(), "0x%02X", &op)
			if e, ok := Table[op]; ok {
				matches = append(matches, e)
			}
		}
		return true
	})
	return matches, nil
}

// Grouped partitions the table by Group, each slice sorted by opcode.
func Grouped() map[Group][]Entry {
	out := make(map[Group][]Entry)
	for _, op := range sortedOpcodes() {
		e := Table[op]
		out[e.Group] = append(out[e.Group], e)
	}
	return out
}

// Stats summarises the table: total entry count and a per-group count,
// read back from the table's JSON rendering via gjson queries.
type Stats struct {
	Total      int
	PerGroup   map[Group]int
}

// ComputeStats builds a Stats from the live table.
func ComputeStats() (Stats, error) {
	doc, err := DumpJSON()
	if err != nil {
		return Stats{}, err
	}
	parsed := gjson.Parse(doc)
	stats := Stats{PerGroup: make(map[Group]int)}
	parsed.ForEach(func(_, row gjson.Result) bool {
		stats.Total++
		stats.PerGroup[Group(row.Get("group").String())]++
		return true
	})
	return stats, nil
}
