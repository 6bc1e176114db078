// Package sections holds the composite widgets that reports are built
// from: header bands, KPI rows, info cards, tables, badges, progress bars,
// Gantt timelines and a few supporting blocks.
//
// Each widget knows its own height and draws at the origin handed to it by
// the layout cursor; none of them moves Y by hand.
package sections

import (
	"fmt"
	"time"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/layout"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/measure"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/table"
)

// Labels are the fixed strings sections draw on their own.
type Labels struct {
	NotAvailable string
	NoData       string
	Today        string
	More         func(n int) string
	Date         func(t time.Time) string
}

// EnglishLabels returns the default labels.
func EnglishLabels() Labels {
	return Labels{
		NotAvailable: "N/A",
		NoData:       "No data available",
		Today:        "Today",
		More:         func(n int) string { return fmt.Sprintf("+%d more", n) },
		Date:         func(t time.Time) string { return t.Format("Jan 2, 2006") },
	}
}

// Renderer draws sections through a cursor.
type Renderer struct {
	d      *draw.Drawer
	cur    *layout.Cursor
	m      *measure.Facade
	labels Labels
}

// New returns a Renderer. Unset label fields fall back to English.
func New(d *draw.Drawer, cur *layout.Cursor, labels Labels) *Renderer {
	def := EnglishLabels()
	if labels.NotAvailable == "" {
		labels.NotAvailable = def.NotAvailable
	}
	if labels.NoData == "" {
		labels.NoData = def.NoData
	}
	if labels.Today == "" {
		labels.Today = def.Today
	}
	if labels.More == nil {
		labels.More = def.More
	}
	if labels.Date == nil {
		labels.Date = def.Date
	}
	return &Renderer{d: d, cur: cur, m: d.Measure(), labels: labels}
}

// Cursor returns the layout cursor.
func (r *Renderer) Cursor() *layout.Cursor { return r.cur }

// Drawer returns the primitive drawer.
func (r *Renderer) Drawer() *draw.Drawer { return r.d }

// Labels returns the resolved labels.
func (r *Renderer) Labels() Labels { return r.labels }

// orNA returns s or the not-available label.
func (r *Renderer) orNA(s string) string {
	if s == "" {
		return r.labels.NotAvailable
	}
	return s
}

// moreLine places the right-aligned "+N more" footnote of a capped list.
func (r *Renderer) moreLine(hidden int) {
	if hidden <= 0 {
		return
	}
	r.cur.Place(6, func(x, y, w float64) {
		r.d.Text(x, y+4, w, r.labels.More(hidden), draw.TextStyle{
			Size: 7.5, Style: "I", Color: palette.Muted, Align: draw.Right,
		})
	})
}

// Gap advances the cursor without drawing.
func (r *Renderer) Gap(h float64) { r.cur.Skip(h) }

// Empty places the "no data" block. msg defaults to the NoData label.
func (r *Renderer) Empty(msg string) {
	if msg == "" {
		msg = r.labels.NoData
	}
	r.cur.Place(draw.EmptyStateAdvance, func(x, y, w float64) {
		r.d.EmptyState(x, y, w, msg)
	})
}

// Table returns a table builder drawing through the same cursor with the
// renderer's empty-state and footnote labels.
func (r *Renderer) Table() *table.Table {
	return table.New(r.d, r.cur).
		SetEmptyMessage(r.labels.NoData).
		SetMoreFormat(r.labels.More)
}

// HeaderSpec describes the brand band on top of the first page.
type HeaderSpec struct {
	Brand    string
	Tagline  string
	Logo     []byte
	Title    string
	Subtitle string
	Date     string
}

// Header draws the full-bleed brand band. The logo is drawn when it can be
// decoded; otherwise the brand name is written in its place.
func (r *Renderer) Header(h HeaderSpec) {
	geo := r.cur.Geometry()
	block := geo.HeaderBand + 6 - r.cur.Y()
	if block < 0 {
		block = 0
	}
	r.cur.Place(block, func(x, _, w float64) {
		r.d.Rect(0, 0, geo.PageWidth, geo.HeaderBand, palette.Primary)
		r.d.Rect(0, geo.HeaderBand, geo.PageWidth, 1.2, palette.Highlight)

		if !r.logo(h.Logo, x, 7, 16) {
			r.d.Text(x, 16, w/2, h.Brand, draw.TextStyle{Size: 18, Style: "B", Color: canvas.White})
			r.d.Text(x, 22, w/2, h.Tagline, draw.TextStyle{Size: 8, Color: palette.Light})
		}

		right := draw.TextStyle{Size: 14, Style: "B", Color: canvas.White, Align: draw.Right}
		r.d.Text(x+w/2, 13, w/2, h.Title, right)
		right.Size, right.Style = 9, ""
		r.d.Text(x+w/2, 19, w/2, h.Subtitle, right)
		right.Size = 8
		r.d.Text(x+w/2, 25, w/2, h.Date, right)
	})
}

func (r *Renderer) logo(data []byte, x, y, h float64) bool {
	if len(data) == 0 {
		return false
	}
	_, info, err := canvas.Normalize(data)
	if err != nil {
		r.d.Logger().Warn("sections: logo fallback to text", "err", err)
		return false
	}
	w := h / info.Ratio()
	if w > 60 {
		w, h = 60, 60*info.Ratio()
	}
	return r.d.Image("logo", data, x, y, w, h) == nil
}

// Continuation draws the slim band on pages 2..N and returns the height to
// reserve below the top margin, which is 0 while the band fits inside the
// margin. It is meant for layout.WithNewPageHook.
func (r *Renderer) Continuation(title string) layout.NewPageHook {
	return func(page int, top float64) float64 {
		geo := r.cur.Geometry()
		band := geo.ContinuationBand
		r.d.Rect(0, 0, geo.PageWidth, band-0.6, palette.Primary)
		r.d.Rect(0, band-0.6, geo.PageWidth, 0.6, palette.Highlight)
		r.d.Text(geo.Margin, 5.4, geo.ContentWidth(), title, draw.TextStyle{Size: 7.5, Style: "B", Color: canvas.White})
		if band > top {
			return band - top
		}
		return 0
	}
}

// sectionTitleHeight is the block height of a section title.
const sectionTitleHeight = 10.0

// SectionTitle draws a titled rule. It is kept on the same page as at least
// keep units of the content that follows.
func (r *Renderer) SectionTitle(title string, keep float64) {
	r.cur.Ensure(sectionTitleHeight + keep)
	r.cur.Place(sectionTitleHeight, func(x, y, w float64) {
		r.d.Rect(x, y+2, 1.5, 6, palette.Highlight)
		r.d.Text(x+4, y+6.6, w-4, title, draw.TextStyle{Size: 11, Style: "B", Color: palette.Primary})
		r.d.Rule(x, y+9, x+w, palette.Border, 0.2)
	})
}

// Banner draws a highlighted title card, such as the candidate name with
// their current position and education.
func (r *Renderer) Banner(title, subtitle string) {
	const h = 18.0
	r.cur.Place(h+4, func(x, y, w float64) {
		r.d.Card(x, y, w, h, draw.Card{Fill: palette.Light, Radius: 2})
		r.d.Rect(x, y, 2, h, palette.Primary)
		r.d.Text(x+6, y+8, w-10, r.orNA(title), draw.TextStyle{Size: 14, Style: "B", Color: palette.Dark})
		r.d.Text(x+6, y+14, w-10, subtitle, draw.TextStyle{Size: 9, Color: palette.Muted})
	})
}

// Paragraph wraps text to the content width. Every line is its own block
// so that long text continues on the next page.
func (r *Renderer) Paragraph(text string, size float64) {
	if size <= 0 {
		size = 9
	}
	lead := size * 0.5
	lines := r.m.Wrap(text, r.cur.Width(), size)
	if len(lines) == 0 {
		lines = []string{r.labels.NotAvailable}
	}
	for _, l := range lines {
		r.cur.Place(lead, func(x, y, w float64) {
			r.d.Text(x, y+lead*0.75, 0, l, draw.TextStyle{Size: size, Color: palette.Dark})
		})
	}
}
