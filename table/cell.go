package table

import (
	"fmt"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// CellContent represents the content of a table cell.
type CellContent interface {
	cellContent()
}

// TextContent is a single line of text, truncated to the column width.
type TextContent struct {
	Text string
}

func (TextContent) cellContent() {}

// ProgressContent renders a percentage as a bar filled to Value/100, colored
// by its match-score bucket, followed by the percentage label.
type ProgressContent struct {
	Value float64
}

func (ProgressContent) cellContent() {}

// BadgeContent renders a rounded pill with the token colors.
type BadgeContent struct {
	Label string
	Token palette.Token
}

func (BadgeContent) cellContent() {}

// Cell represents a single cell in a table row.
type Cell struct {
	content CellContent
	colspan int
	style   *CellStyle
}

// Content returns what the cell renders.
func (c *Cell) Content() CellContent { return c.content }

// SetColspan sets the number of columns this cell spans.
func (c *Cell) SetColspan(n int) *Cell {
	if n > 0 {
		c.colspan = n
	}
	return c
}

// SetStyle sets the style for this cell, overriding table/row defaults.
func (c *Cell) SetStyle(s CellStyle) *Cell {
	c.style = &s
	return c
}

// SetAlign sets the horizontal alignment for this cell.
func (c *Cell) SetAlign(align draw.Align) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Align = &align
	return c
}

// Row represents a single row in a table.
type Row struct {
	cells []*Cell
	style *CellStyle
	minH  float64
}

// Cells returns the row's cells in column order.
func (r *Row) Cells() []*Cell { return r.cells }

func (r *Row) add(content CellContent) *Cell {
	c := &Cell{content: content, colspan: 1}
	r.cells = append(r.cells, c)
	return c
}

// AddCell adds a text cell. Empty text renders an em-dash.
func (r *Row) AddCell(text string) *Cell {
	if text == "" {
		text = Missing
	}
	return r.add(TextContent{Text: text})
}

// AddCellf adds a formatted text cell to the row.
func (r *Row) AddCellf(format string, args ...any) *Cell {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// AddProgressCell adds a match-score bar cell.
func (r *Row) AddProgressCell(pct float64) *Cell {
	return r.add(ProgressContent{Value: pct})
}

// AddBadgeCell adds a badge cell. An empty label uses the token label.
func (r *Row) AddBadgeCell(label string, tok palette.Token) *Cell {
	return r.add(BadgeContent{Label: label, Token: tok})
}

// AddStatusCell adds a badge classified by the status policy.
func (r *Row) AddStatusCell(status string) *Cell {
	return r.AddBadgeCell("", palette.Status.Classify(status))
}

// SetStyle sets the style for all cells in this row.
func (r *Row) SetStyle(s CellStyle) *Row {
	r.style = &s
	return r
}

// SetMinHeight sets the minimum height for this row.
func (r *Row) SetMinHeight(h float64) *Row {
	r.minH = h
	return r
}
