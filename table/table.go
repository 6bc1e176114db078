package table

import (
	"fmt"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/layout"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Missing is drawn for empty text cells.
const Missing = "—"

// FootnoteHeight is the block height of the "+N more" line.
const FootnoteHeight = 6.0

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Title    string
	Width    float64 // Fixed width. 0 means auto/fill.
	MinWidth float64 // Minimum width for auto columns.
	MaxWidth float64 // Maximum width for auto columns. 0 means unlimited.
	Align    draw.Align
}

// Table is a builder for tables placed through a layout cursor.
type Table struct {
	d          *draw.Drawer
	cur        *layout.Cursor
	columns    []ColumnDef
	rows       []*Row
	style      TableStyle
	maxRows    int
	indent     float64
	tableWidth float64
	empty      string
	more       func(n int) string
}

// New creates a table that draws with d and advances cur.
func New(d *draw.Drawer, cur *layout.Cursor) *Table {
	return &Table{
		d:     d,
		cur:   cur,
		style: DefaultStyle(),
		empty: "No data available",
		more:  func(n int) string { return fmt.Sprintf("+%d more", n) },
	}
}

// SetColumns sets column definitions for the table.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetColumnWidths is a convenience method to set column widths directly.
// A width of 0 means the column will auto-fill remaining space.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.columns = make([]ColumnDef, len(widths))
	for i, w := range widths {
		t.columns[i] = ColumnDef{Width: w}
	}
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s TableStyle) *Table {
	t.style = s
	return t
}

// SetMaxRows caps the rendered rows. Hidden rows are summarized in a
// "+N more" footnote. 0 means no cap.
func (t *Table) SetMaxRows(n int) *Table {
	t.maxRows = n
	return t
}

// SetIndent shifts the table right of the content edge.
func (t *Table) SetIndent(x float64) *Table {
	t.indent = x
	return t
}

// SetWidth sets the total table width. If not called, the content width
// minus the indent is used.
func (t *Table) SetWidth(w float64) *Table {
	t.tableWidth = w
	return t
}

// SetEmptyMessage sets the placeholder text drawn when there are no rows.
func (t *Table) SetEmptyMessage(msg string) *Table {
	t.empty = msg
	return t
}

// SetMoreFormat sets the footnote text for n hidden rows.
func (t *Table) SetMoreFormat(fn func(n int) string) *Table {
	if fn != nil {
		t.more = fn
	}
	return t
}

// AddRow adds a new data row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// Len returns the number of data rows added.
func (t *Table) Len() int { return len(t.rows) }

// Render places the table. With no rows it places exactly one empty-state
// block. The header is kept together with the first row and is repeated
// at the top of every page the table continues on.
func (t *Table) Render() error {
	width := t.tableWidth
	if width <= 0 {
		width = t.cur.Width() - t.indent
	}

	if len(t.rows) == 0 {
		t.cur.Place(draw.EmptyStateAdvance, func(x, y, _ float64) {
			t.d.EmptyState(x+t.indent, y, width, t.empty)
		})
		return t.err()
	}

	widths := t.calculateWidths(width)
	visible := t.rows
	hidden := 0
	if t.maxRows > 0 && len(visible) > t.maxRows {
		hidden = len(visible) - t.maxRows
		visible = visible[:t.maxRows]
	}

	t.cur.Ensure(t.style.HeaderHeight + t.rowHeight(visible[0]))
	t.placeHeader(widths)
	for i, r := range visible {
		h := t.rowHeight(r)
		if !t.cur.Fits(h) {
			t.cur.NewPage()
			t.placeHeader(widths)
		}
		t.cur.Place(h, func(x, y, _ float64) {
			t.renderRow(r, widths, x+t.indent, y, h, i)
		})
	}

	if hidden > 0 {
		t.cur.Place(FootnoteHeight, func(x, y, _ float64) {
			t.d.Text(x+t.indent, y+4, width, t.more(hidden), draw.TextStyle{
				Size:  7.5,
				Style: "I",
				Color: palette.Muted,
				Align: draw.Right,
			})
		})
	}
	return t.err()
}

func (t *Table) err() error {
	if err := t.cur.Err(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if err := t.d.Canvas().Err(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	return nil
}

func (t *Table) hasTitles() bool {
	for _, c := range t.columns {
		if c.Title != "" {
			return true
		}
	}
	return false
}

func (t *Table) placeHeader(widths []float64) {
	if !t.hasTitles() {
		return
	}
	h := t.style.HeaderHeight
	t.cur.Place(h, func(x, y, _ float64) {
		header := &Row{}
		for _, c := range t.columns {
			header.cells = append(header.cells, &Cell{content: TextContent{Text: c.Title}, colspan: 1})
		}
		t.renderRow(header, widths, x+t.indent, y, h, -1)
	})
}

// calculateWidths computes final column widths based on definitions and available space.
func (t *Table) calculateWidths(totalWidth float64) []float64 {
	numCols := len(t.columns)
	if numCols == 0 {
		// Auto-detect from first row
		if len(t.rows) > 0 {
			numCols = len(t.rows[0].cells)
		}
		if numCols == 0 {
			return nil
		}
		t.columns = make([]ColumnDef, numCols)
	}

	widths := make([]float64, numCols)
	fixedTotal := 0.0
	autoCount := 0

	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixedTotal += col.Width
		} else {
			autoCount++
		}
	}

	// Distribute remaining space to auto columns
	if autoCount > 0 {
		remaining := totalWidth - fixedTotal
		if remaining < 0 {
			remaining = 0
		}
		autoWidth := remaining / float64(autoCount)
		for i, col := range t.columns {
			if col.Width == 0 {
				w := autoWidth
				if col.MinWidth > 0 && w < col.MinWidth {
					w = col.MinWidth
				}
				if col.MaxWidth > 0 && w > col.MaxWidth {
					w = col.MaxWidth
				}
				widths[i] = w
			}
		}
	}

	return widths
}

func (t *Table) rowHeight(r *Row) float64 {
	if r.minH > t.style.RowHeight {
		return r.minH
	}
	return t.style.RowHeight
}

// renderRow draws one row whose top-left corner is (x, y). bodyIdx is -1
// for the header.
func (t *Table) renderRow(r *Row, widths []float64, x, y, rowH float64, bodyIdx int) {
	pad := t.style.CellPadding
	cellX := x
	col := 0
	for _, cell := range r.cells {
		if col >= len(widths) {
			break
		}
		cellW := widths[col]
		for j := 1; j < cell.colspan && col+j < len(widths); j++ {
			cellW += widths[col+j]
		}

		style := t.resolveCellStyle(cell, r, bodyIdx)
		if style.FillColor != nil {
			t.d.Rect(cellX, y, cellW, rowH, *style.FillColor)
		}

		align := t.columns[col].Align
		if style.Align != nil {
			align = *style.Align
		}
		contentX := cellX + pad.Left
		contentW := cellW - pad.Left - pad.Right
		mid := y + rowH/2

		switch c := cell.content.(type) {
		case TextContent:
			font := t.style.CellFont
			if style.Font != nil {
				font = *style.Font
			}
			color := t.style.TextColor
			if style.TextColor != nil {
				color = *style.TextColor
			}
			t.d.Text(contentX, mid+font.Size*0.125, contentW, c.Text, draw.TextStyle{
				Size:  font.Size,
				Style: font.Style,
				Color: color,
				Align: align,
			})
		case ProgressContent:
			t.renderProgress(c.Value, contentX, mid, contentW)
		case BadgeContent:
			t.d.Badge(contentX, mid-draw.BadgeHeight/2, c.Label, c.Token, contentW)
		}

		cellX += cellW
		col += cell.colspan
	}

	if t.style.RowRule != nil && bodyIdx >= 0 {
		t.d.Rule(x, y+rowH, cellX, *t.style.RowRule, 0.1)
	}
}

// progressLabelWidth is the space kept right of a progress bar for "100%".
const progressLabelWidth = 11.0

func (t *Table) renderProgress(value, x, mid, w float64) {
	tok := palette.Score(value)
	barW := w - progressLabelWidth
	if barW < 4 {
		barW = w
	}
	const barH = 2.5
	t.d.ProgressBar(x, mid-barH/2, barW, barH, value/100, tok.Accent, palette.Light)
	if barW < w {
		t.d.Text(x+barW+1.5, mid+1, w-barW-1.5, tok.Label, draw.TextStyle{
			Size:  7.5,
			Style: "B",
			Color: tok.Foreground,
		})
	}
}

// resolveCellStyle determines the effective style for a cell by merging
// header, alternate row, row, and cell-level styles.
func (t *Table) resolveCellStyle(cell *Cell, row *Row, bodyIdx int) CellStyle {
	var result CellStyle
	if bodyIdx < 0 {
		mergeStyle(&result, &t.style.HeaderStyle)
	} else if t.style.AlternateRows != nil {
		if bodyIdx%2 == 0 {
			mergeStyle(&result, &t.style.AlternateRows.Even)
		} else {
			mergeStyle(&result, &t.style.AlternateRows.Odd)
		}
	}
	mergeStyle(&result, row.style)
	mergeStyle(&result, cell.style)
	return result
}
