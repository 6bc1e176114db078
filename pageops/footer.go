package pageops

import (
	"fmt"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/layout"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// PageNumberStyle defines the footer drawn on every page.
type PageNumberStyle struct {
	Format       string                       // fmt format receiving page and total, e.g. "Page %d of %d"
	Label        func(page, total int) string // overrides Format
	Brand        string
	Tagline      string
	Date         string
	Confidential string
	FontSize     float64
	Color        canvas.Color
}

// PageLabel formats the page-number text of page i out of n.
func (s PageNumberStyle) PageLabel(i, n int) string {
	if s.Label != nil {
		return s.Label(i, n)
	}
	format := s.Format
	if format == "" {
		format = "Page %d of %d"
	}
	return fmt.Sprintf(format, i, n)
}

// AddPageNumbers draws the footer on every page once the total is known:
// a rule, the brand on the left, "Page i of N" centered, the date on the
// right and the confidentiality line below.
func AddPageNumbers(d *draw.Drawer, geo layout.Geometry, style PageNumberStyle) {
	if style.FontSize == 0 {
		style.FontSize = 7.5
	}
	if style.Color == (canvas.Color{}) {
		style.Color = palette.Muted
	}
	cv := d.Canvas()
	total := cv.PageCount()
	left := geo.Margin
	width := geo.ContentWidth()
	third := width / 3
	base := geo.FooterY()

	brand := style.Brand
	if style.Tagline != "" {
		brand += " | " + style.Tagline
	}
	st := draw.TextStyle{Size: style.FontSize, Color: style.Color}

	for i := 1; i <= total; i++ {
		cv.SetPage(i)
		d.Rule(left, base-5, left+width, palette.Border, 0.3)

		st.Align = draw.Left
		d.Text(left, base, third, brand, st)
		st.Align = draw.Center
		st.Style = "B"
		d.Text(left+third, base, third, style.PageLabel(i, total), st)
		st.Style = ""
		st.Align = draw.Right
		d.Text(left+2*third, base, third, style.Date, st)

		if style.Confidential != "" {
			d.Text(left, base+4.5, width, style.Confidential, draw.TextStyle{
				Size: style.FontSize - 1, Style: "I", Color: palette.Faint, Align: draw.Center,
			})
		}
	}
}
