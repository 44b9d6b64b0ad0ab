package layout

import (
	"fmt"
	"testing"

	f2f "github.com/dougbrierley/F2F"
)

// recorder captures renderer calls so tests can assert on break positions
// and header repeats without producing a PDF.
type recorder struct {
	ops   []string
	texts []recordedText
	pages int
}

type recordedText struct {
	x, y float64
	page int
	s    string
}

func (r *recorder) Text(x, y float64, style TextStyle, size float64, s string) {
	r.ops = append(r.ops, fmt.Sprintf("text %q", s))
	r.texts = append(r.texts, recordedText{x: x, y: y, page: r.pages, s: s})
}

func (r *recorder) Rule(y, thickness float64) {
	r.ops = append(r.ops, "rule")
}

func (r *recorder) RuleSpan(x1, x2, y, thickness float64) {
	r.ops = append(r.ops, "rulespan")
}

func (r *recorder) NewPage() {
	r.ops = append(r.ops, "newpage")
	r.pages++
}

func (r *recorder) countHeaders(label string) int {
	n := 0
	for _, t := range r.texts {
		if t.s == label {
			n++
		}
	}
	return n
}

func testSchema() Schema {
	return Schema{
		Columns: []Column{
			{Label: "PRODUCE", X: 10, Value: func(l f2f.Line) string { return l.Produce }},
			{Label: "QTY", X: 140, Value: func(l f2f.Line) string { return f2f.FormatQty(l.Qty) }},
			{Label: "TOTAL", X: 180, Value: func(l f2f.Line) string { return l.Total().String() }},
		},
		StartY:   277,
		PageTop:  277,
		Bottom:   30,
		RowH:     6,
		HeaderH:  7,
		GroupGap: 3,
	}
}

func manyLines(n int) []f2f.Line {
	lines := make([]f2f.Line, n)
	for i := range lines {
		lines[i] = f2f.Line{
			Produce: fmt.Sprintf("Item %d", i),
			Seller:  "Farm A",
			Price:   100,
			Qty:     1,
		}
	}
	return lines
}

func TestSinglePageNoBreak(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec, testSchema())

	groups := f2f.GroupLines(manyLines(10), f2f.BySeller)
	cur := e.Layout(groups)

	if rec.pages != 0 {
		t.Fatalf("pages added = %d, want 0", rec.pages)
	}
	if cur.Page != 0 {
		t.Errorf("cursor page = %d, want 0", cur.Page)
	}
	if got := rec.countHeaders("PRODUCE"); got != 1 {
		t.Errorf("header drawn %d times, want 1", got)
	}
}

func TestLongTableBreaksOnce(t *testing.T) {
	// 45 rows of 6mm starting from 277mm with a 30mm bottom threshold fit
	// on two pages: one break, one header repeat.
	rec := &recorder{}
	e := NewEngine(rec, testSchema())

	groups := f2f.GroupLines(manyLines(45), f2f.BySeller)
	cur := e.Layout(groups)

	if rec.pages != 1 {
		t.Fatalf("pages added = %d, want 1", rec.pages)
	}
	if cur.Page != 1 {
		t.Errorf("cursor page = %d, want 1", cur.Page)
	}
	if got := rec.countHeaders("PRODUCE"); got != 2 {
		t.Errorf("header drawn %d times, want 2 (start + once after the break)", got)
	}
}

func TestNoRowBelowThreshold(t *testing.T) {
	s := testSchema()
	rec := &recorder{}
	e := NewEngine(rec, s)

	lines := manyLines(300)
	for i := range lines {
		if i%3 == 0 {
			lines[i].Seller = "Farm B"
		}
	}
	e.Layout(f2f.GroupLines(lines, f2f.BySeller))

	for _, txt := range rec.texts {
		if txt.y < s.Bottom {
			t.Fatalf("text %q placed at y=%v below threshold %v on page %d", txt.s, txt.y, s.Bottom, txt.page)
		}
	}
}

func TestEveryPageAfterFirstStartsWithHeader(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec, testSchema())

	e.Layout(f2f.GroupLines(manyLines(120), f2f.BySeller))

	// After each newpage op, the next text drawn must be the first column
	// header label.
	for i, op := range rec.ops {
		if op != "newpage" {
			continue
		}
		var next string
		for _, later := range rec.ops[i+1:] {
			if len(later) > 4 && later[:4] == "text" {
				next = later
				break
			}
		}
		if next != `text "PRODUCE"` {
			t.Fatalf("first text after page break = %s, want the header label", next)
		}
	}
}

func TestGroupLabelKeptWithFirstRow(t *testing.T) {
	// Fill the page so the next group label would land just above the
	// threshold: the label must move to the next page with its rows rather
	// than sit orphaned at the page bottom.
	rec := &recorder{}
	e := NewEngine(rec, testSchema())

	lines := manyLines(38)
	lines = append(lines, f2f.Line{Produce: "Late", Seller: "Farm Z", Price: 100, Qty: 1})
	e.Layout(f2f.GroupLines(lines, f2f.BySeller))

	var labelPage, rowPage = -1, -2
	for _, txt := range rec.texts {
		switch txt.s {
		case "Farm Z":
			labelPage = txt.page
		case "Late":
			rowPage = txt.page
		}
	}
	if labelPage != rowPage {
		t.Fatalf("group label on page %d but first row on page %d", labelPage, rowPage)
	}
}

func TestGroupSubtotalDrawnWithLabel(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec, testSchema())

	lines := []f2f.Line{
		{Produce: "Carrot", Seller: "Farm A", Price: 150, Qty: 2},
		{Produce: "Kale", Seller: "Farm A", Price: 100, Qty: 1},
	}
	e.Layout(f2f.GroupLines(lines, f2f.BySeller))

	found := false
	for _, txt := range rec.texts {
		if txt.s == "£4.00" && txt.x == AmountX {
			found = true
		}
	}
	if !found {
		t.Error("group subtotal £4.00 not drawn in the amount column")
	}
}

func TestClosingFitsOnPage(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec, testSchema())
	e.Layout(f2f.GroupLines(manyLines(5), f2f.BySeller))

	before := rec.pages
	e.Closing(16, func(r Renderer, y float64) {
		r.Rule(y, 1)
		r.Text(10, y-8, Emphasis, 14, "TOTAL")
	})
	if rec.pages != before {
		t.Fatalf("closing block broke the page with space remaining")
	}
}

func TestClosingForcesBreakWhenShort(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec, testSchema())
	// 38 rows leave the cursor just above the threshold.
	e.Layout(f2f.GroupLines(manyLines(38), f2f.BySeller))

	before := rec.pages
	cur := e.Closing(20, func(r Renderer, y float64) {
		r.Text(10, y-8, Emphasis, 14, "TOTAL")
	})
	if rec.pages != before+1 {
		t.Fatalf("pages added = %d, want %d", rec.pages, before+1)
	}
	if cur.Y >= 277 {
		t.Errorf("cursor not advanced past closing block: %v", cur.Y)
	}
	// A closing-only page carries no repeated column header.
	last := rec.texts[len(rec.texts)-1]
	if last.s != "TOTAL" {
		t.Errorf("last text = %q, want TOTAL", last.s)
	}
}
