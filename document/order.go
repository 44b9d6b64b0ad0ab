package document

import (
	f2f "github.com/dougbrierley/F2F"
	"github.com/dougbrierley/F2F/layout"
	"github.com/dougbrierley/F2F/render"
)

// BuildOrder draws one buyer's order: header block, the order table grouped
// by grower, and a grand total. link, when non-empty, is rendered as a QR
// code so the printed sheet points back at the stored copy.
func BuildOrder(o f2f.Order, st Stationery, link string) (*render.PDF, error) {
	pdf := newDocument("Order for "+o.Buyer.Name, st)

	pdf.Title("ORDER")
	if link != "" {
		pdf.QRCode(link, 178, 294, 20)
	}

	pdf.Text(10, 250, layout.Label, 12, "DELIVER TO")
	pdf.AddressBlock(10, 245, o.Buyer.AddressLines())

	pdf.Text(140, 250, layout.Label, 12, "ORDER #")
	pdf.Text(140, 245, layout.Body, 10, o.Buyer.Number)
	pdf.Text(140, 237, layout.Label, 12, "DELIVERY DATE")
	pdf.Text(140, 232, layout.Body, 10, o.Date.Format(docDate))

	if st.Contact != "" {
		pdf.ContactLine(st.Contact, st.Email)
	}

	groups := f2f.GroupLines(o.Lines, f2f.BySeller)
	engine := layout.NewEngine(pdf, orderSchema())
	engine.Layout(groups)
	closeWithTotal(engine, f2f.SumGroups(groups))

	return pdf, pdf.Err()
}

// closeWithTotal draws the rule-and-grand-total block shared by orders and
// pick lists.
func closeWithTotal(engine *layout.Engine, total f2f.Pence) {
	engine.Closing(14, func(r layout.Renderer, y float64) {
		r.Rule(y, 1)
		r.Text(10, y-8, layout.Emphasis, 14, "TOTAL")
		r.Text(layout.AmountX, y-8, layout.Emphasis, 14, total.String())
	})
}

// newDocument creates the shared page: metadata title and, when configured,
// the letterhead background.
func newDocument(title string, st Stationery) *render.PDF {
	opts := []render.Option{render.WithTitle(title)}
	if st.Letterhead != "" {
		opts = append(opts, render.WithLetterhead(st.Letterhead))
	}
	return render.New(opts...)
}
