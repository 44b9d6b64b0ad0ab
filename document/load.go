// Package document assembles finished PDF documents from domain records. It
// owns the JSON batch formats, the per-document-type table schemas, the
// header and totals blocks around each table, and concurrent batch
// generation against a Store.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	f2f "github.com/dougbrierley/F2F"
)

// wireDate is the date format of every JSON input field.
const wireDate = "2006-01-02"

// Wire records. Prices travel in pence so a file written by the extract
// step re-parses to identical totals.

type orderFile struct {
	Orders []orderRecord `json:"orders"`
}

type orderRecord struct {
	Date  string           `json:"date"`
	Buyer f2f.BuyerDetails `json:"buyer"`
	Lines []lineRecord     `json:"lines"`
}

type pickFile struct {
	Picks []pickRecord `json:"picks"`
}

type pickRecord struct {
	Seller    f2f.Seller   `json:"seller"`
	Date      string       `json:"date"`
	Reference string       `json:"reference"`
	Lines     []lineRecord `json:"lines"`
}

type invoiceFile struct {
	Invoices []invoiceRecord `json:"invoices"`
}

type invoiceRecord struct {
	Buyer     f2f.BuyerDetails    `json:"buyer"`
	Date      string              `json:"date"`
	DueDate   string              `json:"due_date"`
	Reference string              `json:"reference"`
	Lines     []invoiceLineRecord `json:"lines"`
}

type lineRecord struct {
	Produce string    `json:"produce"`
	Variant string    `json:"variant,omitempty"`
	Unit    string    `json:"unit"`
	Price   f2f.Pence `json:"price"`
	Qty     float64   `json:"qty"`
	Seller  string    `json:"seller,omitempty"`
	Buyer   string    `json:"buyer,omitempty"`
}

type invoiceLineRecord struct {
	Item    string    `json:"item"`
	Price   f2f.Pence `json:"price"`
	Qty     float64   `json:"qty"`
	VATRate float64   `json:"vat_rate"`
	Date    string    `json:"date"`
	Seller  string    `json:"seller,omitempty"`
}

// LoadOrders reads a {"orders": [...]} batch file.
func LoadOrders(path string) ([]f2f.Order, error) {
	var file orderFile
	if err := loadJSON(path, &file); err != nil {
		return nil, err
	}
	orders := make([]f2f.Order, 0, len(file.Orders))
	for _, rec := range file.Orders {
		date, err := parseWireDate(path, rec.Date)
		if err != nil {
			return nil, err
		}
		o := f2f.Order{Buyer: rec.Buyer, Date: date}
		for _, lr := range rec.Lines {
			o.Lines = append(o.Lines, f2f.Line{
				Produce:      lr.Produce,
				Variant:      lr.Variant,
				Unit:         lr.Unit,
				Price:        lr.Price,
				Qty:          lr.Qty,
				Seller:       lr.Seller,
				Counterparty: rec.Buyer.Name,
			})
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// LoadPicks reads a {"picks": [...]} batch file.
func LoadPicks(path string) ([]f2f.Pick, error) {
	var file pickFile
	if err := loadJSON(path, &file); err != nil {
		return nil, err
	}
	picks := make([]f2f.Pick, 0, len(file.Picks))
	for _, rec := range file.Picks {
		date, err := parseWireDate(path, rec.Date)
		if err != nil {
			return nil, err
		}
		p := f2f.Pick{Seller: rec.Seller, Date: date, Reference: rec.Reference}
		for _, lr := range rec.Lines {
			p.Lines = append(p.Lines, f2f.Line{
				Produce:      lr.Produce,
				Variant:      lr.Variant,
				Unit:         lr.Unit,
				Price:        lr.Price,
				Qty:          lr.Qty,
				Seller:       rec.Seller.Name,
				Counterparty: lr.Buyer,
			})
		}
		picks = append(picks, p)
	}
	return picks, nil
}

// LoadInvoices reads an {"invoices": [...]} batch file.
func LoadInvoices(path string) ([]f2f.Invoice, error) {
	var file invoiceFile
	if err := loadJSON(path, &file); err != nil {
		return nil, err
	}
	invoices := make([]f2f.Invoice, 0, len(file.Invoices))
	for _, rec := range file.Invoices {
		date, err := parseWireDate(path, rec.Date)
		if err != nil {
			return nil, err
		}
		due, err := parseWireDate(path, rec.DueDate)
		if err != nil {
			return nil, err
		}
		inv := f2f.Invoice{Buyer: rec.Buyer, Date: date, DueDate: due, Reference: rec.Reference}
		for _, lr := range rec.Lines {
			lineDate, err := parseWireDate(path, lr.Date)
			if err != nil {
				return nil, err
			}
			inv.Lines = append(inv.Lines, f2f.Line{
				Produce:      lr.Item,
				Price:        lr.Price,
				Qty:          lr.Qty,
				VATRate:      lr.VATRate,
				Date:         lineDate,
				Seller:       lr.Seller,
				Counterparty: rec.Buyer.Name,
			})
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// WriteOrders writes orders in the batch format LoadOrders reads, so an
// extracted spreadsheet can be reviewed and re-fed as JSON.
func WriteOrders(w io.Writer, orders []f2f.Order) error {
	file := orderFile{Orders: make([]orderRecord, 0, len(orders))}
	for _, o := range orders {
		rec := orderRecord{Date: o.Date.Format(wireDate), Buyer: o.Buyer}
		for _, l := range o.Lines {
			rec.Lines = append(rec.Lines, lineRecord{
				Produce: l.Produce,
				Variant: l.Variant,
				Unit:    l.Unit,
				Price:   l.Price,
				Qty:     l.Qty,
				Seller:  l.Seller,
			})
		}
		file.Orders = append(file.Orders, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

// loadJSON checks the input path and decodes it into v. A missing file and
// a non-.json extension are distinct fatal conditions so the caller's
// message can name the actual mistake.
func loadJSON(path string, v any) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", f2f.ErrMissingFile, path)
	}
	if filepath.Ext(path) != ".json" {
		return fmt.Errorf("%w: %s", f2f.ErrNotJSON, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("document: read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("document: parse %s: %w", path, err)
	}
	return nil
}

func parseWireDate(path, s string) (time.Time, error) {
	t, err := time.Parse(wireDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("document: %s: bad date %q: want %s", path, s, wireDate)
	}
	return t, nil
}
