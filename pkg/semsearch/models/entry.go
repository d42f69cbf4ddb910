package models

import (
	"fmt"
	"strconv"
)

// Entry holds everything the index knows about a single cell.
type Entry struct {
	// Formula is the raw formula text including the leading "=" (empty if none).
	Formula string `json:"formula,omitempty" msgpack:"formula"`
	// Label is non-formula text naming the cell, e.g. a workbook defined name.
	Label string `json:"label,omitempty" msgpack:"label"`
	// Value is the evaluated cell value: int64, float64 or string. Nil when absent.
	Value interface{} `json:"value,omitempty" msgpack:"value"`
	// RowHeader is the nearest text cell to the left in the same row.
	RowHeader string `json:"row_header,omitempty" msgpack:"row_header"`
	// ColHeader is the nearest text cell above in the same column.
	ColHeader string `json:"col_header,omitempty" msgpack:"col_header"`
	// SectionLabel is the nearest text cell above-and-left within the section window.
	SectionLabel string `json:"section_label,omitempty" msgpack:"section_label"`
}

// Text returns the cell content as plain non-formula text, or "" when the
// cell holds a formula or a non-string value.
func (e Entry) Text() string {
	if e.Formula != "" {
		return ""
	}
	s, _ := e.Value.(string)
	return s
}

// ValueString formats the evaluated value as a string, or "" when absent.
func (e Entry) ValueString() string {
	switch v := e.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
