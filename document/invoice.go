package document

import (
	f2f "github.com/dougbrierley/F2F"
	"github.com/dougbrierley/F2F/layout"
	"github.com/dougbrierley/F2F/render"
)

// BuildInvoice draws a VAT invoice: billing header, the line table grouped
// by grower with each group's lines in date order, the subtotal/VAT/total
// summary, and the payment block. The payment block may land on its own
// page when the table runs long.
func BuildInvoice(inv f2f.Invoice, st Stationery, link string) (*render.PDF, error) {
	pdf := newDocument("Invoice "+inv.Buyer.Number, st)

	pdf.Title("VAT INVOICE")
	if link != "" {
		pdf.QRCode(link, 178, 294, 20)
	}

	pdf.Text(10, 250, layout.Label, 12, "BILL TO")
	pdf.AddressBlock(10, 245, inv.Buyer.AddressLines())

	details := []struct{ label, value string }{
		{"INVOICE DATE", inv.Date.Format(docDate)},
		{"INVOICE #", inv.Buyer.Number},
		{"REFERENCE", inv.Reference},
		{"VAT NUMBER", st.VATNumber},
	}
	y := 250.0
	for _, d := range details {
		if d.value == "" {
			continue
		}
		pdf.Text(100, y, layout.Label, 10, d.label)
		pdf.Text(100, y-4, layout.Body, 10, d.value)
		y -= 10
	}

	pdf.AddressBlock(145, 250, append([]string{st.Name}, st.Address...))

	if st.Contact != "" {
		pdf.ContactLine(st.Contact, st.Email)
	}

	groups := f2f.GroupLines(inv.Lines, f2f.BySeller)
	for _, g := range groups {
		f2f.SortByDate(g.Lines)
	}
	engine := layout.NewEngine(pdf, invoiceSchema())
	engine.Layout(groups)

	totals := f2f.SumLines(inv.Lines)
	engine.Closing(20, func(r layout.Renderer, y float64) {
		r.Text(140, y, layout.Body, 10, "Subtotal")
		r.Text(layout.AmountX, y, layout.Body, 10, totals.Subtotal.String())
		r.Text(140, y-5, layout.Body, 10, "VAT")
		r.Text(layout.AmountX, y-5, layout.Body, 10, totals.VAT.String())
		r.RuleSpan(140, 200, y-8, 0.5)
		r.Text(140, y-14, layout.Emphasis, 12, "TOTAL")
		r.Text(layout.AmountX, y-14, layout.Emphasis, 12, totals.Total.String())
	})

	engine.Closing(26, func(r layout.Renderer, y float64) {
		r.Text(10, y, layout.Label, 12, "PAYMENT DUE "+inv.DueDate.Format(dueDate))
		b := st.Bank
		lines := []string{
			"Account name: " + b.AccountName,
			"Sort code: " + b.SortCode,
			"Account number: " + b.AccountNumber,
		}
		ly := y - 6
		for _, line := range lines {
			r.Text(10, ly, layout.Body, 10, line)
			ly -= 5
		}
	})

	return pdf, pdf.Err()
}
