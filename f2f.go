// Package f2f turns weekly produce ordering data into paginated business
// documents. Input is either the growers' ordering spreadsheet or a JSON
// batch; output is one PDF per buyer (orders), per seller (pick lists) or
// per invoice record, written locally or uploaded to object storage.
//
// The root package holds the domain model shared by every document type:
// parties, order lines, money in minor units, and the grouping and total
// rules that every document's figures are derived from.
package f2f

import (
	"math"
	"time"
)

// Seller identifies a grower supplying produce.
type Seller struct {
	Name string `json:"name"`
}

// BuyerDetails carries the name, address and reference number printed in a
// document's address block.
type BuyerDetails struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
	Number   string `json:"number"`
}

// AddressLines returns the printable address block, skipping the optional
// second address line when it is empty.
func (b BuyerDetails) AddressLines() []string {
	lines := make([]string, 0, 6)
	lines = append(lines, b.Name, b.Address1)
	if b.Address2 != "" {
		lines = append(lines, b.Address2)
	}
	lines = append(lines, b.City, b.Postcode, b.Country)
	return lines
}

// Line is a single ordered item. The same shape serves every document type:
// Counterparty is the buyer on seller-grouped documents and the seller on
// buyer-grouped documents. Date and VATRate are only set on invoice lines.
type Line struct {
	Produce      string
	Variant      string
	Unit         string
	Price        Pence
	Qty          float64
	Seller       string
	Counterparty string
	Date         time.Time
	VATRate      float64
}

// Total is the line total, rounded to the nearest penny.
func (l Line) Total() Pence {
	return Pence(math.Round(l.Qty * float64(l.Price)))
}

// VAT is the tax due on this line, rounded to the nearest penny.
func (l Line) VAT() Pence {
	return Pence(math.Round(float64(l.Total()) * l.VATRate))
}

// Item is the combined produce description used on invoice lines.
func (l Line) Item() string {
	if l.Variant == "" {
		return l.Produce
	}
	return l.Produce + " - " + l.Variant
}

// Order is a buyer's order for one delivery date.
type Order struct {
	Buyer BuyerDetails
	Date  time.Time
	Lines []Line
}

// Pick is a seller's pick list for one order week.
type Pick struct {
	Seller    Seller
	Date      time.Time
	Reference string
	Lines     []Line
}

// Invoice is a VAT invoice for a buyer covering a billing period.
type Invoice struct {
	Buyer     BuyerDetails
	Date      time.Time
	DueDate   time.Time
	Reference string
	Lines     []Line
}
