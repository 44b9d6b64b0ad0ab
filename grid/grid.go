// Package grid reads the growers' ordering spreadsheet: a rectangular block
// of cells with a fixed header row naming the item columns and, after a
// marker cell, one column per buyer holding ordered quantities.
package grid

import (
	"strings"

	f2f "github.com/dougbrierley/F2F"
)

// HeaderRow is the zero-based index of the header row. The ordering sheet
// keeps its column names on worksheet row 3.
const HeaderRow = 2

// BuyerMarker is the header cell demarcating the start of the buyer columns.
const BuyerMarker = "BUYERS:"

// Grid is a read-only rectangular block of string-rendered cells, row major.
// Rows may be ragged; missing trailing cells read as empty.
type Grid [][]string

// Cell returns the cell at (row, col), or "" when the row is short.
func (g Grid) Cell(row, col int) string {
	if row >= len(g) || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Headers returns the header row. It fails with ErrSheetTooShort when the
// sheet ends before the header row.
func (g Grid) Headers() ([]string, error) {
	if len(g) <= HeaderRow {
		return nil, f2f.ErrSheetTooShort
	}
	return g[HeaderRow], nil
}

// Buyer is a buyer column found in the header row.
type Buyer struct {
	Name   string
	Column int // absolute column index in the grid
}

// Buyers scans the header row for the buyer marker and returns every
// non-empty header after it as a buyer, along with the marker's column
// index. A header row without the marker fails with ErrMissingMarker, since
// no buyer column can be located without it.
func Buyers(headers []string) ([]Buyer, int, error) {
	start := -1
	for i, h := range headers {
		if strings.TrimSpace(h) == BuyerMarker {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, 0, f2f.ErrMissingMarker
	}

	var buyers []Buyer
	for i := start + 1; i < len(headers); i++ {
		name := strings.TrimSpace(headers[i])
		if name == "" {
			continue
		}
		buyers = append(buyers, Buyer{Name: name, Column: i})
	}
	return buyers, start, nil
}
