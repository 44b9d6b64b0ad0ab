package document

import (
	f2f "github.com/dougbrierley/F2F"
	"github.com/dougbrierley/F2F/layout"
)

// Display date formats. Line dates are short because the column is narrow;
// document dates carry the year; due dates are spelt out on the payment
// block.
const (
	lineDate = "02/01"
	docDate  = "02/01/2006"
	dueDate  = "02 Jan 2006"
)

// geometry shared by every document type's table.
func baseSchema(startY float64, cols []layout.Column) layout.Schema {
	return layout.Schema{
		Columns:  cols,
		StartY:   startY,
		PageTop:  277,
		Bottom:   30,
		RowH:     6,
		HeaderH:  7,
		GroupGap: 3,
	}
}

// orderSchema starts below the delivery address block.
func orderSchema() layout.Schema {
	return baseSchema(203, []layout.Column{
		{Label: "PRODUCE", X: 10, Value: func(l f2f.Line) string { return l.Produce }},
		{Label: "DESCRIPTION", X: 50, Value: func(l f2f.Line) string { return l.Variant }},
		{Label: "UNIT", X: 115, Value: func(l f2f.Line) string { return l.Unit }},
		{Label: "QTY", X: 140, Value: func(l f2f.Line) string { return f2f.FormatQty(l.Qty) }},
		{Label: "PRICE", X: 160, Value: func(l f2f.Line) string { return l.Price.String() }},
		{Label: "TOTAL", X: 180, Value: func(l f2f.Line) string { return l.Total().String() }},
	})
}

// pickSchema has the quantity ahead of the unit: pickers read "how many"
// before "of what pack size". Its header block is shorter so the table
// starts higher.
func pickSchema() layout.Schema {
	return baseSchema(217, []layout.Column{
		{Label: "PRODUCE", X: 10, Value: func(l f2f.Line) string { return l.Produce }},
		{Label: "DESCRIPTION", X: 50, Value: func(l f2f.Line) string { return l.Variant }},
		{Label: "QTY", X: 115, Value: func(l f2f.Line) string { return f2f.FormatQty(l.Qty) }},
		{Label: "UNIT", X: 135, Value: func(l f2f.Line) string { return l.Unit }},
		{Label: "PRICE", X: 160, Value: func(l f2f.Line) string { return l.Price.String() }},
		{Label: "TOTAL", X: 180, Value: func(l f2f.Line) string { return l.Total().String() }},
	})
}

// invoiceSchema adds the per-line date and VAT rate columns.
func invoiceSchema() layout.Schema {
	return baseSchema(203, []layout.Column{
		{Label: "DATE", X: 10, Value: func(l f2f.Line) string { return l.Date.Format(lineDate) }},
		{Label: "ITEM", X: 25, Value: func(l f2f.Line) string { return l.Item() }},
		{Label: "QTY", X: 120, Value: func(l f2f.Line) string { return f2f.FormatQty(l.Qty) }},
		{Label: "PRICE", X: 140, Value: func(l f2f.Line) string { return l.Price.String() }},
		{Label: "VAT", X: 160, Value: func(l f2f.Line) string { return f2f.VATRateString(l.VATRate) }},
		{Label: "TOTAL", X: 180, Value: func(l f2f.Line) string { return l.Total().String() }},
	})
}
