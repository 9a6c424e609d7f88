package opcodes

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestDumpJSONIsValidWith144Rows(t *testing.T) {
	doc, err := DumpJSON()
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	if !gjson.Valid(doc) {
		t.Fatalf("DumpJSON produced invalid JSON")
	}
	count := 0
	gjson.Parse(doc).ForEach(func(_, _ gjson.Result) bool {
		count++
		return true
	})
	if count != 144 {
		t.Fatalf("expected 144 rows in the JSON document, got %d", count)
	}
}

func TestSearchFindsMnemonicSubstring(t *testing.T) {
	matches, err := Search("add")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match for \"add\"")
	}
	for _, e := range matches {
		if !strings.Contains(strings.ToLower(e.Mnemonic), "add") &&
			!strings.Contains(strings.ToLower(e.IR), "add") {
			t.Errorf("match %+v does not actually contain \"add\"", e)
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	lower, err := Search("ret")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	upper, err := Search("RET")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(lower) != len(upper) {
		t.Errorf("expected case-insensitive search to return the same count, got %d vs %d", len(lower), len(upper))
	}
}

func TestSearchNoMatches(t *testing.T) {
	matches, err := Search("zzzznotfound")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestComputeStatsTotalsMatchTable(t *testing.T) {
	stats, err := ComputeStats()
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}
	if stats.Total != 144 {
		t.Fatalf("expected total 144, got %d", stats.Total)
	}
	sum := 0
	for _, n := range stats.PerGroup {
		sum += n
	}
	if sum != stats.Total {
		t.Errorf("expected per-group counts to sum to total, got %d vs %d", sum, stats.Total)
	}
}
