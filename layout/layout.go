// Package layout places an arbitrarily long grouped table across fixed-size
// pages. It is the one piece of logic shared by every document type: the
// assemblers in package document describe a table with a Schema and the
// engine emits Renderer calls, deciding where page breaks fall and repeating
// the column headers at the top of each new page.
//
// Coordinates follow the printed sheet: y is millimetres from the page
// bottom and decreases as content is placed.
package layout

import (
	f2f "github.com/dougbrierley/F2F"
)

// TextStyle selects which of the document's faces a piece of text is set in.
// The Renderer maps styles to concrete fonts; the engine never handles fonts
// directly.
type TextStyle int

const (
	// Body is the regular text face used for table rows and addresses.
	Body TextStyle = iota
	// Label is the heading face used for column headers and group labels.
	Label
	// Emphasis is the heavy face used for totals.
	Emphasis
)

// Renderer is the drawing surface the engine writes to. Implementations
// place text and rules on the current page; NewPage starts a fresh page and
// becomes the target of subsequent calls.
type Renderer interface {
	// Text places s with its baseline at (x, y) in the given style and
	// point size.
	Text(x, y float64, style TextStyle, size float64, s string)
	// Rule draws a full-width horizontal rule at y.
	Rule(y, thickness float64)
	// RuleSpan draws a horizontal rule from x1 to x2 at y.
	RuleSpan(x1, x2, y, thickness float64)
	// NewPage starts a new page.
	NewPage()
}

// Column describes one table column: its header label, x offset in mm, and
// how to read a cell value off a line.
type Column struct {
	Label string
	X     float64
	Value func(f2f.Line) string
}

// Schema fixes the geometry of one document type's table. All lengths are
// in millimetres.
type Schema struct {
	Columns []Column

	StartY  float64 // table start on the first page, below the header block
	PageTop float64 // cursor position after a page break
	Bottom  float64 // minimum space kept clear at the page bottom

	RowH     float64 // vertical advance per line row
	HeaderH  float64 // advance consumed by the column header block
	GroupGap float64 // gap above a group label
}

// Amount column x offset shared by every document type: subtotals and
// totals line up under the rightmost column.
const AmountX = 180

// Cursor is the layout position: a vertical offset on the current page and
// the index of that page. It is owned by a single layout pass.
type Cursor struct {
	Y    float64
	Page int
}

// Engine lays out grouped lines against one Renderer. An Engine is used for
// a single document and is not safe for concurrent use.
type Engine struct {
	r      Renderer
	schema Schema
	cur    Cursor
}

// NewEngine returns an engine positioned at the schema's start offset on the
// first page, which the caller has already created.
func NewEngine(r Renderer, s Schema) *Engine {
	return &Engine{r: r, schema: s, cur: Cursor{Y: s.StartY}}
}

// Cursor returns the current layout position.
func (e *Engine) Cursor() Cursor {
	return e.cur
}

// Layout draws the column header block and every group in order, breaking
// pages as needed, and returns the cursor under the last row. The break
// condition is checked before every unit, not just at group boundaries: a
// unit of height h is only placed while cur.Y - h stays above the schema's
// bottom threshold.
func (e *Engine) Layout(groups []f2f.Group) Cursor {
	e.header()

	for _, g := range groups {
		// Keep the group label attached to at least its first row.
		e.ensure(e.schema.GroupGap + 1 + e.schema.RowH*2)

		e.cur.Y -= e.schema.GroupGap
		e.r.Text(10, e.cur.Y, Label, 12, g.Key)
		e.r.Text(AmountX, e.cur.Y, Label, 12, g.Subtotal().String())
		e.cur.Y -= 1
		e.r.Rule(e.cur.Y, 0.5)
		e.cur.Y -= e.schema.RowH

		for _, line := range g.Lines {
			e.ensure(e.schema.RowH)
			for _, col := range e.schema.Columns {
				e.r.Text(col.X, e.cur.Y, Body, 10, col.Value(line))
			}
			e.cur.Y -= e.schema.RowH
		}
	}
	return e.cur
}

// Closing places a block of height h beneath the table, forcing one more
// page break first if the remaining space is short. The column header is not
// repeated for a closing-only page. draw receives the y of the block's top
// edge.
func (e *Engine) Closing(h float64, draw func(r Renderer, y float64)) Cursor {
	if e.cur.Y-h < e.schema.Bottom {
		e.r.NewPage()
		e.cur.Page++
		e.cur.Y = e.schema.PageTop
	}
	draw(e.r, e.cur.Y)
	e.cur.Y -= h
	return e.cur
}

// ensure breaks to a new page when a unit of height h would cross the bottom
// threshold, restoring the cursor to the page top and repeating the column
// header block.
func (e *Engine) ensure(h float64) {
	if e.cur.Y-h >= e.schema.Bottom {
		return
	}
	e.r.NewPage()
	e.cur.Page++
	e.cur.Y = e.schema.PageTop
	e.header()
}

// header draws the column header block: a rule above the labels, the labels,
// and a rule below, then advances the cursor past the block.
func (e *Engine) header() {
	e.r.Rule(e.cur.Y+6, 1)
	for _, col := range e.schema.Columns {
		e.r.Text(col.X, e.cur.Y, Label, 12, col.Label)
	}
	e.r.Rule(e.cur.Y, 1)
	e.cur.Y -= e.schema.HeaderH
}
