package resolve

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		token string
		sheet string
		coord string
		ok    bool
	}{
		{"'Forecast'!B2", "Forecast", "B2", true},
		{"'Q1 Plan'!AA10", "Q1 Plan", "AA10", true},
		{"Forecast!$B$2", "Forecast", "B2", true},
		{"Sheet1!A1", "Sheet1", "A1", true},
		{"B2", "", "B2", true},
		{"$b$2", "", "B2", true},
		{"1A", "", "", false},
		{"", "", "", false},
		{"SUM(A1)", "", "", false},
	}

	for _, tt := range tests {
		sheet, coord, ok := ParseRef(tt.token)
		if ok != tt.ok {
			t.Errorf("ParseRef(%q) ok = %v, expected %v", tt.token, ok, tt.ok)
			continue
		}
		if sheet != tt.sheet || coord != tt.coord {
			t.Errorf("ParseRef(%q) = (%q, %q), expected (%q, %q)", tt.token, sheet, coord, tt.sheet, tt.coord)
		}
	}
}

func TestCellToCoordinates(t *testing.T) {
	col, row, ok := cellToCoordinates("C3")
	if !ok || col != 3 || row != 3 {
		t.Errorf("cellToCoordinates(C3) = (%d, %d, %v), expected (3, 3, true)", col, row, ok)
	}
	if _, _, ok := cellToCoordinates("not-a-cell"); ok {
		t.Error("cellToCoordinates accepted invalid input")
	}
}
