// Package ingest builds reference index entries from Excel workbooks.
package ingest

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/resolve"
)

// File opens the workbook at path and ingests every sheet into index
// entries. The workbook base name keys every produced address.
func File(path string) (map[models.CellAddress]models.Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Workbook(f, filepath.Base(path))
}

// Workbook ingests all sheets of an open workbook. A sheet that fails to
// read is skipped so one bad sheet never aborts the workbook.
func Workbook(f *excelize.File, book string) (map[models.CellAddress]models.Entry, error) {
	entries := make(map[models.CellAddress]models.Entry)
	for _, sheet := range f.GetSheetList() {
		if err := sheetEntries(f, book, sheet, entries); err != nil {
			continue
		}
	}
	applyDefinedNames(f, book, entries)
	return entries, nil
}

// sheetEntries records an entry for every cell holding a value or a formula.
func sheetEntries(f *excelize.File, book, sheet string, entries map[models.CellAddress]models.Entry) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			coord, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			formula, _ := f.GetCellFormula(sheet, coord)
			if raw == "" && formula == "" {
				continue
			}

			var e models.Entry
			if formula != "" {
				// excelize returns formulas without the leading "=".
				e.Formula = "=" + strings.TrimPrefix(formula, "=")
			}
			if raw != "" {
				e.Value = parseValue(raw)
			}
			entries[models.NewCellAddress(book, sheet, coord)] = e
		}
	}
	return nil
}

// applyDefinedNames attaches workbook defined names as labels on the cells
// they point at. A name over a range labels its top-left cell.
func applyDefinedNames(f *excelize.File, book string, entries map[models.CellAddress]models.Entry) {
	for _, dn := range f.GetDefinedName() {
		ref := strings.TrimPrefix(dn.RefersTo, "=")
		if i := strings.IndexByte(ref, ':'); i >= 0 {
			ref = ref[:i]
		}
		sheet, coord, ok := resolve.ParseRef(ref)
		if !ok || sheet == "" {
			continue
		}
		addr := models.NewCellAddress(book, sheet, coord)
		e := entries[addr]
		if e.Label == "" {
			e.Label = dn.Name
		}
		entries[addr] = e
	}
}

// parseValue attempts to parse a cell's displayed value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
