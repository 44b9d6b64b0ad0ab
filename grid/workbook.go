package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet the ordering data lives on.
const DefaultSheet = "GROWERS' PAGE"

// FromWorkbook reads the named worksheet of an xlsx workbook into a Grid.
// Cell values are the formatted strings the sheet displays, which is what
// the extractor parses.
func FromWorkbook(path, sheet string) (Grid, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: opening workbook %s: %w", path, err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("grid: reading sheet %q: %w", sheet, err)
	}
	return Grid(rows), nil
}
