// Package layout owns the vertical writing position and every page-break
// decision of a document.
//
// Sections never touch Y directly. They declare the height of a block and
// hand a draw function to Cursor.Place, which breaks the page when the block
// does not fit, draws it at the resulting origin and advances.
package layout

import (
	"fmt"
	"log/slog"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
)

// State is the cursor's position in the page state machine.
type State int

const (
	AccumulatingPage State = iota
	PageBreakPending
	Finalizing
)

func (s State) String() string {
	switch s {
	case AccumulatingPage:
		return "AccumulatingPage"
	case PageBreakPending:
		return "PageBreakPending"
	case Finalizing:
		return "Finalizing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Geometry holds the fixed page constants of a document.
type Geometry struct {
	PageWidth        float64
	PageHeight       float64
	Margin           float64
	HeaderBand       float64 // brand band drawn at the top of page 1
	FooterReserve    float64 // space kept free at the bottom for the footer pass
	ContinuationBand float64 // height of the band drawn on pages 2..N
}

// Letter returns the geometry used by every report.
func Letter() Geometry {
	return Geometry{
		PageWidth:        canvas.LetterWidth,
		PageHeight:       canvas.LetterHeight,
		Margin:           12,
		HeaderBand:       30,
		FooterReserve:    22,
		ContinuationBand: 8.6,
	}
}

// ContentWidth is the page width minus the left and right margins.
func (g Geometry) ContentWidth() float64 { return g.PageWidth - 2*g.Margin }

// Bottom is the lowest Y a block may reach.
func (g Geometry) Bottom() float64 { return g.PageHeight - g.FooterReserve }

// Capacity is the printable height of a page: page height minus the top
// margin and the footer reserve.
func (g Geometry) Capacity() float64 { return g.Bottom() - g.Margin }

// FooterY is the baseline of the page-number line.
func (g Geometry) FooterY() float64 { return g.PageHeight - 12 }

// fits is the single page-break rule shared by Cursor and Paginate.
func fits(used, h, capacity float64) bool {
	return used+h <= capacity
}

// Paginate packs block heights in order into pages of the given capacity
// and returns the page count. A block that does not fit on the current page
// starts a new one; a block taller than capacity occupies a page of its own.
func Paginate(heights []float64, capacity float64) int {
	pages := 1
	used := 0.0
	for _, h := range heights {
		if used > 0 && !fits(used, h, capacity) {
			pages++
			used = 0
		}
		used += h
	}
	return pages
}

// Draw renders a block whose top-left corner is (x, y) and whose width is w.
type Draw func(x, y, w float64)

// NewPageHook runs right after a continuation page is added. It may draw a
// band at top and returns the height it used.
type NewPageHook func(page int, top float64) float64

// Option configures a Cursor.
type Option func(*Cursor)

// WithLogger sets the logger for overflow warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cursor) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNewPageHook registers the continuation band drawer.
func WithNewPageHook(fn NewPageHook) Option {
	return func(c *Cursor) { c.onNewPage = fn }
}

// Cursor tracks the current Y on the current page.
type Cursor struct {
	c         canvas.Canvas
	geo       Geometry
	log       *slog.Logger
	onNewPage NewPageHook

	state State
	top   float64 // first usable Y of the current page
	used  float64 // height placed since top
	err   error
}

// New starts a cursor at the top margin of a fresh first page.
func New(c canvas.Canvas, geo Geometry, opts ...Option) *Cursor {
	cur := &Cursor{c: c, geo: geo, log: slog.Default()}
	for _, opt := range opts {
		opt(cur)
	}
	if c.PageCount() == 0 {
		c.AddPage()
	}
	cur.top = geo.Margin
	return cur
}

// Geometry returns the page constants.
func (cur *Cursor) Geometry() Geometry { return cur.geo }

// Canvas returns the surface the cursor draws on.
func (cur *Cursor) Canvas() canvas.Canvas { return cur.c }

// State returns the current state.
func (cur *Cursor) State() State { return cur.state }

// Y returns the top of the next block.
func (cur *Cursor) Y() float64 { return cur.top + cur.used }

// Left returns the left content edge.
func (cur *Cursor) Left() float64 { return cur.geo.Margin }

// Width returns the content width.
func (cur *Cursor) Width() float64 { return cur.geo.ContentWidth() }

// Remaining returns the height still available on the current page.
func (cur *Cursor) Remaining() float64 {
	return cur.geo.Bottom() - cur.Y()
}

// Fits reports whether a block of height h fits on the current page
// without a break, using the same rule as Place.
func (cur *Cursor) Fits(h float64) bool {
	return fits(cur.used, h, cur.geo.Bottom()-cur.top)
}

// Page returns the current page number, starting at 1.
func (cur *Cursor) Page() int { return cur.c.Page() }

// Err returns the first misuse error, such as placing after Finalize.
func (cur *Cursor) Err() error { return cur.err }

// Place draws a block of height h and advances past it, breaking the page
// first when the block would cross the footer reserve.
func (cur *Cursor) Place(h float64, draw Draw) {
	if cur.state == Finalizing {
		if cur.err == nil {
			cur.err = fmt.Errorf("layout: place after finalize: %w", talentpdf.ErrFinalized)
		}
		return
	}
	if h < 0 {
		h = 0
	}
	capacity := cur.geo.Bottom() - cur.top
	if cur.used > 0 && !fits(cur.used, h, capacity) {
		cur.state = PageBreakPending
		cur.NewPage()
		capacity = cur.geo.Bottom() - cur.top
	}
	if !fits(cur.used, h, capacity) {
		cur.log.Warn("layout: block overflows page",
			"page", cur.c.Page(), "height", h, "capacity", capacity)
	}
	if draw != nil {
		draw(cur.geo.Margin, cur.Y(), cur.geo.ContentWidth())
	}
	cur.used += h
}

// Ensure breaks the page unless at least h is left. It keeps a title
// together with the first block that follows it.
func (cur *Cursor) Ensure(h float64) {
	if cur.state == Finalizing || cur.used == 0 {
		return
	}
	if !fits(cur.used, h, cur.geo.Bottom()-cur.top) {
		cur.state = PageBreakPending
		cur.NewPage()
	}
}

// Skip advances by gap without drawing. It never moves past the bottom of
// the printable area and never moves up.
func (cur *Cursor) Skip(gap float64) {
	if cur.state == Finalizing || gap <= 0 {
		return
	}
	limit := cur.geo.Bottom() - cur.top
	cur.used += gap
	if cur.used > limit {
		cur.used = limit
	}
}

// NewPage appends a page and resets Y to the top margin plus whatever the
// continuation hook draws.
func (cur *Cursor) NewPage() {
	if cur.state == Finalizing {
		return
	}
	cur.c.AddPage()
	cur.top = cur.geo.Margin
	cur.used = 0
	if cur.onNewPage != nil {
		cur.top += cur.onNewPage(cur.c.Page(), cur.top)
	}
	cur.state = AccumulatingPage
}

// Finalize closes the content phase and returns the page count. Later
// calls return the same count.
func (cur *Cursor) Finalize() int {
	cur.state = Finalizing
	return cur.c.PageCount()
}
