package models

// Item is one downstream indexing record produced for a formula-bearing cell.
type Item struct {
	// Book is the workbook file name.
	Book string `json:"book"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Cell is the A1-style coordinate of the formula cell.
	Cell string `json:"cell"`
	// Formula is the raw formula text as stored in the workbook.
	Formula string `json:"formula"`
	// Description is the semantic formula with every reference resolved.
	Description string `json:"description"`
}
