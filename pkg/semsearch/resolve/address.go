// Package resolve implements reference resolution and semantic formula
// expansion over an immutable cell index.
package resolve

import (
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// refPattern matches a single cell reference token: an optional quoted or
// bare sheet qualifier followed by an A1-style coordinate with optional
// $ anchors.
var refPattern = regexp.MustCompile(`^(?:'([^']+)'!|([A-Za-z_][A-Za-z0-9_.]*)!)?(\$?[A-Za-z]{1,3}\$?[0-9]+)$`)

// ParseRef splits a single reference token into its sheet qualifier and
// normalized coordinate. The sheet is empty for a bare same-sheet reference.
func ParseRef(token string) (sheet, coord string, ok bool) {
	m := refPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return "", "", false
	}
	sheet = m[1]
	if sheet == "" {
		sheet = m[2]
	}
	return sheet, models.NormalizeCoord(m[3]), true
}

// cellToCoordinates converts an A1-style coordinate to 1-based column and row.
func cellToCoordinates(coord string) (col, row int, ok bool) {
	c, r, err := excelize.CellNameToCoordinates(coord)
	if err != nil {
		return 0, 0, false
	}
	return c, r, true
}

// coordinatesToCell converts 1-based column and row back to an A1-style
// coordinate, or "" for out-of-range input.
func coordinatesToCell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	return name
}
