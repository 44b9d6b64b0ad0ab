package f2f

import (
	"errors"
	"fmt"
)

// Sentinel errors for input failure conditions. All of them are fatal to the
// current run: no document may be generated from data that failed to parse.
var (
	ErrSheetTooShort = errors.New("f2f: sheet ends before the header row")
	ErrMissingMarker = errors.New("f2f: buyer marker not found in header row")
	ErrMissingFile   = errors.New("f2f: input file does not exist")
	ErrNotJSON       = errors.New("f2f: input file is not a json file")
)

// CellError reports a spreadsheet cell whose content could not be parsed.
// Cell is the Excel-style reference, e.g. "F5".
type CellError struct {
	Cell  string // cell reference in A1 notation
	Value string // raw cell content
	Err   error  // underlying parse error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("f2f: cell %s: cannot parse %q: %v", e.Cell, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
