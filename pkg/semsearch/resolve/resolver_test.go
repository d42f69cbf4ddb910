package resolve

import (
	"fmt"
	"strings"
	"testing"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

const testBook = "model.xlsx"

// testIndex builds an index from entries keyed "Sheet!Coord".
func testIndex(t *testing.T, cells map[string]models.Entry) *Index {
	t.Helper()
	entries := make(map[models.CellAddress]models.Entry, len(cells))
	for key, e := range cells {
		sheet, coord, found := strings.Cut(key, "!")
		if !found {
			t.Fatalf("bad test cell key %q", key)
		}
		entries[models.NewCellAddress(testBook, sheet, coord)] = e
	}
	return NewIndex(entries, DefaultParams())
}

func addr(sheet, coord string) models.CellAddress {
	return models.NewCellAddress(testBook, sheet, coord)
}

func TestResolveLabelBeatsHeader(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!A3": {Value: "Growth"},
		"Sheet1!C3": {Label: "Margin", Value: 0.3},
	})
	r := NewResolver(ix, DefaultParams())

	got, prov := r.ResolveWithProvenance(addr("Sheet1", "C3"))
	if got != "Margin" {
		t.Errorf("Resolve(C3) = %q, expected %q", got, "Margin")
	}
	if prov != ProvenanceLabel {
		t.Errorf("provenance = %q, expected %q", prov, ProvenanceLabel)
	}
}

func TestResolveNeighborFallback(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!A2": {Value: "Tax Rate"},
		"Sheet1!B2": {Value: 0.2},
	})
	r := NewResolver(ix, DefaultParams())

	got, prov := r.ResolveWithProvenance(addr("Sheet1", "B2"))
	if got != "Tax Rate" {
		t.Errorf("Resolve(B2) = %q, expected %q", got, "Tax Rate")
	}
	if prov != ProvenanceNeighbor {
		t.Errorf("provenance = %q, expected %q", prov, ProvenanceNeighbor)
	}
}

func TestResolveHeaderFallback(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!A3": {Value: "Growth"},
		"Sheet1!C1": {Value: "FY25"},
		"Sheet1!C3": {Value: int64(42)},
	})
	r := NewResolver(ix, DefaultParams())

	got, prov := r.ResolveWithProvenance(addr("Sheet1", "C3"))
	if got != "Growth FY25" {
		t.Errorf("Resolve(C3) = %q, expected %q", got, "Growth FY25")
	}
	if prov != ProvenanceHeader {
		t.Errorf("provenance = %q, expected %q", prov, ProvenanceHeader)
	}
}

func TestResolveValueFallback(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!E9": {Value: int64(42)},
	})
	r := NewResolver(ix, DefaultParams())

	got, prov := r.ResolveWithProvenance(addr("Sheet1", "E9"))
	if got != "42" {
		t.Errorf("Resolve(E9) = %q, expected %q", got, "42")
	}
	if prov != ProvenanceValue {
		t.Errorf("provenance = %q, expected %q", prov, ProvenanceValue)
	}
}

func TestResolveAbsentIsEmpty(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{})
	r := NewResolver(ix, DefaultParams())

	got, prov := r.ResolveWithProvenance(addr("Sheet1", "Z99"))
	if got != "" {
		t.Errorf("Resolve(Z99) = %q, expected empty string", got)
	}
	if prov != ProvenanceEmpty {
		t.Errorf("provenance = %q, expected %q", prov, ProvenanceEmpty)
	}
}

func TestResolveAnchorInsensitiveAddress(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!B2": {Label: "Revenue"},
	})
	r := NewResolver(ix, DefaultParams())

	if got := r.Resolve(addr("Sheet1", "$B$2")); got != "Revenue" {
		t.Errorf("Resolve($B$2) = %q, expected %q", got, "Revenue")
	}
}

func TestResolveCycleTerminates(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!A1": {Formula: "=B1", Value: int64(10)},
		"Sheet1!B1": {Formula: "=A1", Value: int64(20)},
	})
	r := NewResolver(ix, DefaultParams())

	got, prov := r.ResolveWithProvenance(addr("Sheet1", "A1"))
	if got != "10" {
		t.Errorf("Resolve(A1) = %q, expected %q", got, "10")
	}
	if prov != ProvenanceFormula {
		t.Errorf("provenance = %q, expected %q", prov, ProvenanceFormula)
	}
}

func TestResolveSelfCycleWithoutValue(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Sheet1!D5": {Formula: "=D5"},
	})
	r := NewResolver(ix, DefaultParams())

	if got := r.Resolve(addr("Sheet1", "D5")); got != "" {
		t.Errorf("Resolve(D5) = %q, expected empty string", got)
	}
}

func TestResolveDepthBound(t *testing.T) {
	// A chain of 40 cells that never repeats an address. The default depth
	// ceiling cuts it off; a larger ceiling reaches the terminal value.
	cells := make(map[string]models.Entry)
	for i := 1; i < 40; i++ {
		cells[fmt.Sprintf("Sheet1!A%d", i)] = models.Entry{Formula: fmt.Sprintf("=A%d", i+1)}
	}
	cells["Sheet1!A40"] = models.Entry{Value: int64(7)}

	ix := testIndex(t, cells)

	r := NewResolver(ix, DefaultParams())
	if got := r.Resolve(addr("Sheet1", "A1")); got != "" {
		t.Errorf("Resolve(A1) with default depth = %q, expected empty string", got)
	}

	deep := NewResolver(ix, Params{MaxDepth: 128})
	if got := deep.Resolve(addr("Sheet1", "A1")); got != "7" {
		t.Errorf("Resolve(A1) with deep limit = %q, expected %q", got, "7")
	}
}

func TestResolveDeterministic(t *testing.T) {
	ix := testIndex(t, map[string]models.Entry{
		"Forecast!B2": {Label: "Revenue"},
		"Summary!C2":  {Formula: "='Forecast'!B2*0.2"},
	})
	r := NewResolver(ix, DefaultParams())

	first := r.Resolve(addr("Summary", "C2"))
	for i := 0; i < 5; i++ {
		if got := r.Resolve(addr("Summary", "C2")); got != first {
			t.Fatalf("Resolve returned %q after %q", got, first)
		}
	}
	if first != "Revenue *0.2" {
		t.Errorf("Resolve(C2) = %q, expected %q", first, "Revenue *0.2")
	}
}
