// Package models defines data structures for semantic formula expansion.
package models

import "strings"

// CellAddress uniquely identifies a cell across all ingested workbooks.
type CellAddress struct {
	// Book is the workbook file name (no path).
	Book string `json:"book" msgpack:"book"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet" msgpack:"sheet"`
	// Coord is the normalized A1-style coordinate (uppercase, no $ anchors).
	Coord string `json:"coord" msgpack:"coord"`
}

// NewCellAddress builds a CellAddress with a normalized coordinate.
func NewCellAddress(book, sheet, coord string) CellAddress {
	return CellAddress{Book: book, Sheet: sheet, Coord: NormalizeCoord(coord)}
}

// NormalizeCoord strips $ anchor markers and uppercases column letters.
// Anchors only denote absolute addressing and carry no semantic meaning.
func NormalizeCoord(coord string) string {
	return strings.ToUpper(strings.ReplaceAll(coord, "$", ""))
}
