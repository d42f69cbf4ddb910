package resolve

import (
	"strings"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// Headers derives row headers, column headers and section labels for cells
// by scanning neighboring index content. Inference is a deterministic
// function of the index and never recurses into formula resolution.
type Headers struct {
	ix          *Index
	sectionRows int
	sectionCols int
}

func newHeaders(ix *Index, p Params) *Headers {
	return &Headers{ix: ix, sectionRows: p.SectionRows, sectionCols: p.SectionCols}
}

// Inferred is the result of a header scan. Every field may be empty; empty
// is a valid result, not an error.
type Inferred struct {
	RowHeader    string
	ColHeader    string
	SectionLabel string
}

// Infer returns the headers for addr. Indexed cells carry headers
// precomputed at index construction; unindexed addresses are scanned on
// demand.
func (h *Headers) Infer(addr models.CellAddress) Inferred {
	if e, ok := h.ix.Lookup(addr); ok {
		return Inferred{RowHeader: e.RowHeader, ColHeader: e.ColHeader, SectionLabel: e.SectionLabel}
	}
	return h.scan(addr)
}

// scan walks left for the row header, up for the column header, and
// above-and-left within the bounded window for the section label.
func (h *Headers) scan(addr models.CellAddress) Inferred {
	col, row, ok := cellToCoordinates(addr.Coord)
	if !ok {
		return Inferred{}
	}
	var inf Inferred
	for c := col - 1; c >= 1; c-- {
		if t := h.textAt(addr, c, row); t != "" {
			inf.RowHeader = t
			break
		}
	}
	for r := row - 1; r >= 1; r-- {
		if t := h.textAt(addr, col, r); t != "" {
			inf.ColHeader = t
			break
		}
	}
	inf.SectionLabel = h.sectionAt(addr, col, row)
	return inf
}

// sectionAt finds the nearest non-empty text cell above-and-left of the
// target, nearest row first, then nearest column within the row.
func (h *Headers) sectionAt(addr models.CellAddress, col, row int) string {
	minRow := row - h.sectionRows
	if minRow < 1 {
		minRow = 1
	}
	minCol := col - h.sectionCols
	if minCol < 1 {
		minCol = 1
	}
	for r := row - 1; r >= minRow; r-- {
		for c := col; c >= minCol; c-- {
			if t := h.textAt(addr, c, r); t != "" {
				return t
			}
		}
	}
	return ""
}

// textAt returns the trimmed non-formula text at (col, row) on addr's sheet,
// or "" for formula cells, non-text values and absent cells.
func (h *Headers) textAt(addr models.CellAddress, col, row int) string {
	coord := coordinatesToCell(col, row)
	if coord == "" {
		return ""
	}
	e, ok := h.ix.Lookup(models.CellAddress{Book: addr.Book, Sheet: addr.Sheet, Coord: coord})
	if !ok {
		return ""
	}
	return strings.TrimSpace(e.Text())
}
