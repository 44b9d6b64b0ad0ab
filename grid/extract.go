package grid

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	f2f "github.com/dougbrierley/F2F"
)

// Fixed item columns of the ordering sheet.
const (
	colSeller = iota
	colProduce
	colVariant
	colUnit
	colPrice
)

// Extract walks the data rows below the header and builds one line per
// (item, buyer) pair with a positive ordered quantity. Rows with an empty
// produce cell are skipped; they separate sections of the sheet rather than
// ending it. A price or quantity that is present but not numeric is fatal,
// because totals computed from a misread cell would be silently wrong.
func Extract(g Grid, buyers []Buyer) ([]f2f.Line, error) {
	var lines []f2f.Line

	for r := HeaderRow + 1; r < len(g); r++ {
		if strings.TrimSpace(g.Cell(r, colProduce)) == "" {
			continue
		}

		price, err := parsePrice(g.Cell(r, colPrice), r, colPrice)
		if err != nil {
			return nil, err
		}

		seller := strings.TrimSpace(g.Cell(r, colSeller))
		produce := strings.TrimSpace(g.Cell(r, colProduce))
		variant := strings.TrimSpace(g.Cell(r, colVariant))
		unit := strings.TrimSpace(g.Cell(r, colUnit))

		for _, b := range buyers {
			qty, err := parseQty(g.Cell(r, b.Column), r, b.Column)
			if err != nil {
				return nil, err
			}
			if qty <= 0 {
				continue
			}
			lines = append(lines, f2f.Line{
				Produce:      produce,
				Variant:      variant,
				Unit:         unit,
				Price:        price,
				Qty:          qty,
				Seller:       seller,
				Counterparty: b.Name,
			})
		}
	}
	return lines, nil
}

// Orders assembles per-buyer orders from a flat extraction, keyed by the
// buyer column order of the sheet. Buyers that ordered nothing are left out.
// The sheet carries no addresses, so the buyer details hold only the name.
func Orders(lines []f2f.Line, date time.Time) []f2f.Order {
	groups := f2f.GroupLines(lines, f2f.ByCounterparty)
	orders := make([]f2f.Order, 0, len(groups))
	for _, g := range groups {
		orders = append(orders, f2f.Order{
			Buyer: f2f.BuyerDetails{Name: g.Key},
			Date:  date,
			Lines: g.Lines,
		})
	}
	return orders
}

// parsePrice reads a decimal currency amount and converts it to pence,
// rounding to the nearest penny. Rounding rather than truncating keeps a
// re-parsed sheet's totals identical to the figures on the sheet.
func parsePrice(raw string, row, col int) (f2f.Pence, error) {
	v, err := parseNumber(raw)
	if err != nil {
		return 0, &f2f.CellError{Cell: cellName(row, col), Value: raw, Err: err}
	}
	return f2f.Pence(math.Round(v * 100)), nil
}

// parseQty reads an ordered quantity. A blank cell means no order and reads
// as zero.
func parseQty(raw string, row, col int) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	v, err := parseNumber(raw)
	if err != nil {
		return 0, &f2f.CellError{Cell: cellName(row, col), Value: raw, Err: err}
	}
	return v, nil
}

// parseNumber strips currency symbols and grouping before parsing, so cells
// formatted as "£1.50" or "1,500" still read as numbers.
func parseNumber(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	return strconv.ParseFloat(cleaned, 64)
}

// cellName renders a zero-based (row, col) pair in A1 notation for error
// messages.
func cellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}
