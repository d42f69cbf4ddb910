package resolve

import (
	"sort"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// Params bounds header inference and reference-chain recursion.
type Params struct {
	// MaxDepth bounds recursion through reference chains.
	MaxDepth int
	// SectionRows and SectionCols bound the section-label search window.
	SectionRows int
	SectionCols int
}

// DefaultParams returns default resolution parameters.
func DefaultParams() Params {
	return Params{MaxDepth: 32, SectionRows: 10, SectionCols: 5}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.MaxDepth <= 0 {
		p.MaxDepth = d.MaxDepth
	}
	if p.SectionRows <= 0 {
		p.SectionRows = d.SectionRows
	}
	if p.SectionCols <= 0 {
		p.SectionCols = d.SectionCols
	}
	return p
}

// Index is an immutable lookup structure over every known cell, built once
// per workbook set and read-only during resolution. An absent address is
// distinguishable from an entry with empty fields.
type Index struct {
	entries map[models.CellAddress]models.Entry
}

// NewIndex copies entries into an immutable index and precomputes row,
// column and section headers for every entry. The input map is not retained.
func NewIndex(entries map[models.CellAddress]models.Entry, p Params) *Index {
	copied := make(map[models.CellAddress]models.Entry, len(entries))
	for addr, e := range entries {
		copied[models.NewCellAddress(addr.Book, addr.Sheet, addr.Coord)] = e
	}
	ix := &Index{entries: copied}

	h := newHeaders(ix, p.withDefaults())
	for addr, e := range ix.entries {
		inf := h.scan(addr)
		e.RowHeader = inf.RowHeader
		e.ColHeader = inf.ColHeader
		e.SectionLabel = inf.SectionLabel
		ix.entries[addr] = e
	}
	return ix
}

// Lookup returns the entry for addr. The second return value reports whether
// the address is present in the index at all.
func (ix *Index) Lookup(addr models.CellAddress) (models.Entry, bool) {
	addr.Coord = models.NormalizeCoord(addr.Coord)
	e, ok := ix.entries[addr]
	return e, ok
}

// Len returns the number of indexed cells.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Formulas returns the addresses of all formula-bearing entries in stable
// (book, sheet, row, column) order.
func (ix *Index) Formulas() []models.CellAddress {
	var addrs []models.CellAddress
	for addr, e := range ix.entries {
		if e.Formula != "" {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool {
		a, b := addrs[i], addrs[j]
		if a.Book != b.Book {
			return a.Book < b.Book
		}
		if a.Sheet != b.Sheet {
			return a.Sheet < b.Sheet
		}
		ac, ar, _ := cellToCoordinates(a.Coord)
		bc, br, _ := cellToCoordinates(b.Coord)
		if ar != br {
			return ar < br
		}
		return ac < bc
	})
	return addrs
}
