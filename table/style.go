// Package table renders data tables through the layout cursor.
//
// It provides auto-width columns, a header row that is repeated after a
// page break, alternating row tints, per-cell truncation, progress and
// badge cells, a row cap with a "+N more" footnote and a single empty-state
// placeholder when there are no rows.
package table

import (
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// FontSpec defines font properties for cell text.
type FontSpec struct {
	Style string  // "", "B", "I", "BI"
	Size  float64 // in points
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// CellStyle overrides the appearance of a cell or a row. Nil fields inherit.
type CellStyle struct {
	FillColor *canvas.Color
	TextColor *canvas.Color
	Font      *FontSpec
	Align     *draw.Align
}

// AlternateStyle defines alternating row tints.
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	HeaderStyle   CellStyle
	AlternateRows *AlternateStyle
	CellPadding   Padding
	CellFont      FontSpec
	TextColor     canvas.Color
	HeaderHeight  float64
	RowHeight     float64
	// RowRule draws a hairline under every row when set.
	RowRule *canvas.Color
}

// DefaultStyle is the report table look: brand-colored header with white
// bold text, light alternating rows and 8-unit rows.
func DefaultStyle() TableStyle {
	white := canvas.White
	primary := palette.Primary
	bold := FontSpec{Style: "B", Size: 8}
	light := palette.Surface
	border := palette.Border
	return TableStyle{
		HeaderStyle: CellStyle{FillColor: &primary, TextColor: &white, Font: &bold},
		AlternateRows: &AlternateStyle{
			Even: CellStyle{FillColor: &white},
			Odd:  CellStyle{FillColor: &light},
		},
		CellPadding:  Padding{Top: 1, Right: 2, Bottom: 1, Left: 2},
		CellFont:     FontSpec{Size: 8},
		TextColor:    palette.Dark,
		HeaderHeight: 8,
		RowHeight:    8,
		RowRule:      &border,
	}
}

// mergeStyle copies non-nil fields from src to dst.
func mergeStyle(dst *CellStyle, src *CellStyle) {
	if src == nil {
		return
	}
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != nil {
		dst.Align = src.Align
	}
}
