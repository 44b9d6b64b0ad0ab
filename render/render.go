// Package render draws document pages with gofpdf. It implements
// layout.Renderer for the pagination engine and adds the page furniture the
// assemblers place around a table: titles, address blocks, contact lines
// with mailto links, reference barcodes and an optional letterhead
// background imported from an existing PDF.
//
// The rest of the system measures y in millimetres from the page bottom;
// this package converts to gofpdf's top-down coordinates at the edge.
package render

import (
	"io"

	"github.com/boombuler/barcode/qr"
	"github.com/phpdave11/gofpdf"
	pdfbarcode "github.com/phpdave11/gofpdf/contrib/barcode"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"

	"github.com/dougbrierley/F2F/layout"
)

// A4 page geometry in millimetres.
const (
	PageWidth  = 210
	PageHeight = 297
)

// Rule margins shared by every document type.
const (
	ruleLeft  = 10
	ruleRight = 200
)

// Option configures a new document.
type Option func(*config)

type config struct {
	title      string
	letterhead string
}

// WithTitle sets the document's metadata title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithLetterhead stamps page 1 of the named PDF as the background of the
// document's first page.
func WithLetterhead(path string) Option {
	return func(c *config) {
		c.letterhead = path
	}
}

// PDF is a single document being drawn. It is owned by one generation call
// and is not safe for concurrent use.
type PDF struct {
	fpdf *gofpdf.Fpdf
}

// New creates an A4 portrait document with its first page already added, so
// callers can start placing the header block immediately.
func New(opts ...Option) *PDF {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	f := gofpdf.New("P", "mm", "A4", "")
	// The pagination engine owns every page break decision.
	f.SetAutoPageBreak(false, 0)
	if cfg.title != "" {
		f.SetTitle(cfg.title, true)
	}
	f.AddPage()

	p := &PDF{fpdf: f}
	if cfg.letterhead != "" {
		tpl := gofpdi.ImportPage(f, cfg.letterhead, 1, "/MediaBox")
		gofpdi.UseImportedTemplate(f, tpl, 0, 0, PageWidth, PageHeight)
	}
	return p
}

// Text places s with its baseline at (x, y mm from the page bottom).
func (p *PDF) Text(x, y float64, style layout.TextStyle, size float64, s string) {
	p.setFont(style, size)
	p.fpdf.Text(x, PageHeight-y, s)
}

// Rule draws the standard full-width horizontal rule slightly below y,
// matching the table furniture of the printed documents.
func (p *PDF) Rule(y, thickness float64) {
	p.RuleSpan(ruleLeft, ruleRight, y, thickness)
}

// RuleSpan draws a grey horizontal rule from x1 to x2.
func (p *PDF) RuleSpan(x1, x2, y, thickness float64) {
	p.fpdf.SetDrawColor(115, 115, 115)
	p.fpdf.SetLineWidth(thickness * 0.35) // hairline weights, not bar weights
	ty := PageHeight - (y - 1.2)
	p.fpdf.Line(x1, ty, x2, ty)
	p.fpdf.SetDrawColor(0, 0, 0)
}

// NewPage starts a fresh page. Letterhead backgrounds apply to the first
// page only.
func (p *PDF) NewPage() {
	p.fpdf.AddPage()
}

// Title sets the large document title at the top left, e.g. "ORDER".
func (p *PDF) Title(s string) {
	p.Text(10, 267, layout.Label, 46, s)
}

// AddressBlock writes an address one line per entry, starting at (x, y) and
// stepping down 4mm per line. Empty lines are skipped.
func (p *PDF) AddressBlock(x, y float64, lines []string) {
	for _, line := range lines {
		if line == "" {
			continue
		}
		p.Text(x, y, layout.Body, 10, line)
		y -= 4
	}
}

// ContactLine writes the small-print contact footer and links the whole
// line to the given mailto address.
func (p *PDF) ContactLine(text, email string) {
	p.Text(10, 10, layout.Body, 8, text)
	p.setFont(layout.Body, 8)
	w := p.fpdf.GetStringWidth(text)
	p.fpdf.LinkString(10, PageHeight-14, w, 6, "mailto:"+email)
}

// QRCode places a QR code of the given content in a size x size box with
// its top edge at y mm from the page bottom.
func (p *PDF) QRCode(content string, x, y, size float64) {
	key := pdfbarcode.RegisterQR(p.fpdf, content, qr.M, qr.Unicode)
	pdfbarcode.Barcode(p.fpdf, key, x, PageHeight-y, size, size, false)
}

// ReferenceBarcode places a PDF417 barcode of the given reference, sized
// w x h with its top edge at y mm from the page bottom. Warehouse scanners
// read these off printed pick lists.
func (p *PDF) ReferenceBarcode(code string, x, y, w, h float64) {
	key := pdfbarcode.RegisterPdf417(p.fpdf, code, 4, 2)
	pdfbarcode.Barcode(p.fpdf, key, x, PageHeight-y, w, h, false)
}

// Output writes the finished document to w.
func (p *PDF) Output(w io.Writer) error {
	return p.fpdf.Output(w)
}

// Err reports whether a drawing call has failed. gofpdf latches the first
// error and ignores subsequent calls, so checking once after layout is
// enough.
func (p *PDF) Err() error {
	if p.fpdf.Err() {
		return p.fpdf.Error()
	}
	return nil
}

// setFont maps the layout styles onto core faces. The printed originals
// used a display face for labels and a medium weight for totals; with core
// fonts both come out bold, which keeps the documents legible without
// embedding font files.
func (p *PDF) setFont(style layout.TextStyle, size float64) {
	if style == layout.Body {
		p.fpdf.SetFont("Helvetica", "", size)
		return
	}
	p.fpdf.SetFont("Helvetica", "B", size)
}
