package document

// Stationery is the fixed identity printed on every document: who the
// documents are from, how to reach them, and how to pay them. It comes from
// configuration rather than constants so the same binary serves any hub.
type Stationery struct {
	Name      string   // trading name shown on invoices
	Address   []string // supplier address block
	Contact   string   // small-print contact footer
	Email     string   // mailto target of the contact footer
	VATNumber string

	Bank Bank

	// Letterhead is an optional path to a PDF whose first page is stamped
	// behind page 1 of every document.
	Letterhead string
}

// Bank is the payment destination printed on invoices.
type Bank struct {
	AccountName   string
	SortCode      string
	AccountNumber string
}
