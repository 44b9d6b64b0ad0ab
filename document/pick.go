package document

import (
	f2f "github.com/dougbrierley/F2F"
	"github.com/dougbrierley/F2F/layout"
	"github.com/dougbrierley/F2F/render"
)

// BuildPick draws one grower's pick list for an order week, broken down by
// buyer. The pick reference is repeated as a PDF417 barcode for warehouse
// scanners.
func BuildPick(p f2f.Pick, st Stationery) (*render.PDF, error) {
	pdf := newDocument(p.Seller.Name+" pick list", st)

	pdf.Title("PICK LIST")
	pdf.Text(10, 250, layout.Label, 14, p.Seller.Name)

	pdf.Text(140, 250, layout.Label, 12, "PICK #")
	pdf.Text(140, 245, layout.Body, 10, p.Reference)
	pdf.Text(140, 237, layout.Label, 12, "ORDER WEEK STARTING")
	pdf.Text(140, 232, layout.Body, 10, p.Date.Format(docDate))
	if p.Reference != "" {
		pdf.ReferenceBarcode(p.Reference, 140, 228, 45, 9)
	}

	if st.Contact != "" {
		pdf.ContactLine(st.Contact, st.Email)
	}

	groups := f2f.GroupLines(p.Lines, f2f.ByCounterparty)
	engine := layout.NewEngine(pdf, pickSchema())
	engine.Layout(groups)
	closeWithTotal(engine, f2f.SumGroups(groups))

	return pdf, pdf.Err()
}
