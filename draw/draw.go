// Package draw issues shape, text and image calls at caller-supplied
// coordinates. It makes no layout decisions.
//
// Every method sets the font, colors and line width it needs before
// drawing, so the result never depends on what an earlier call left in the
// canvas graphics state.
package draw

import (
	"log/slog"
	"strings"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/measure"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Font family used by every report.
const Family = "Helvetica"

// Badge geometry.
const (
	BadgeHeight   = 5.0
	BadgePadding  = 2.5
	BadgeFontSize = 7.0
)

// EmptyState geometry: the box is EmptyStateHeight tall and a placed empty
// state advances the cursor by EmptyStateAdvance.
const (
	EmptyStateHeight  = 12.0
	EmptyStateAdvance = 16.0
)

// Align is a horizontal text alignment.
type Align int

const (
	Left Align = iota
	Center
	Right
)

// TextStyle describes one run of text.
type TextStyle struct {
	Size  float64
	Style string // "", "B", "I" or "BI"
	Color canvas.Color
	Align Align
}

// Drawer issues primitive draw calls on a canvas.
type Drawer struct {
	c   canvas.Canvas
	m   *measure.Facade
	log *slog.Logger
}

// New returns a Drawer for c. A nil logger means slog.Default().
func New(c canvas.Canvas, log *slog.Logger) *Drawer {
	if log == nil {
		log = slog.Default()
	}
	return &Drawer{c: c, m: measure.New(c), log: log}
}

// Canvas returns the underlying surface.
func (d *Drawer) Canvas() canvas.Canvas { return d.c }

// Measure returns the measurement facade bound to the same canvas.
func (d *Drawer) Measure() *measure.Facade { return d.m }

// Logger returns the logger used for recovered failures.
func (d *Drawer) Logger() *slog.Logger { return d.log }

// Font selects the family, style and size.
func (d *Drawer) Font(style string, size float64) {
	d.c.SetFont(Family, style, size)
}

// Rect fills a rectangle.
func (d *Drawer) Rect(x, y, w, h float64, fill canvas.Color) {
	d.c.SetFillColor(fill)
	d.c.Rect(x, y, w, h, canvas.Fill)
}

// Card is the rounded box behind KPI cells, info cards and note cards.
type Card struct {
	Fill   canvas.Color
	Border *canvas.Color
	Radius float64
}

// Card draws a rounded box, with a thin border when one is set.
func (d *Drawer) Card(x, y, w, h float64, c Card) {
	d.c.SetFillColor(c.Fill)
	style := canvas.Fill
	if c.Border != nil {
		d.c.SetDrawColor(*c.Border)
		d.c.SetLineWidth(0.2)
		style = canvas.FillStroke
	}
	if c.Radius <= 0 {
		d.c.Rect(x, y, w, h, style)
		return
	}
	d.c.RoundedRect(x, y, w, h, c.Radius, style)
}

// Text draws s with its baseline at y inside the span [x, x+w]. When w is
// positive the text is truncated to fit and aligned within the span. It
// returns the string actually drawn.
func (d *Drawer) Text(x, y, w float64, s string, st TextStyle) string {
	if s == "" {
		return ""
	}
	d.Font(st.Style, st.Size)
	d.c.SetTextColor(st.Color)
	if w > 0 {
		s = d.m.Truncate(s, w, st.Size)
		if s == "" {
			return ""
		}
		switch st.Align {
		case Center:
			x += (w - d.m.WidthOf(s, st.Size)) / 2
		case Right:
			x += w - d.m.WidthOf(s, st.Size)
		}
	}
	d.c.Text(x, y, s)
	return s
}

// Lines draws pre-wrapped lines starting at baseline y, leading apart.
func (d *Drawer) Lines(x, y, leading float64, lines []string, st TextStyle) {
	for i, l := range lines {
		d.Text(x, y+float64(i)*leading, 0, l, st)
	}
}

// BadgeWidth returns the width of a badge for label, capped at maxW when
// maxW is positive.
func (d *Drawer) BadgeWidth(label string, maxW float64) float64 {
	w := d.m.WidthOf(label, BadgeFontSize) + 2*BadgePadding
	if maxW > 0 && w > maxW {
		return maxW
	}
	return w
}

// Badge draws a rounded pill at (x, y) with the token colors and returns
// its width. The label is truncated when the pill would exceed maxW.
func (d *Drawer) Badge(x, y float64, label string, tok palette.Token, maxW float64) float64 {
	if label == "" {
		label = tok.Label
	}
	w := d.BadgeWidth(label, 0)
	span := 0.0
	if maxW > 0 && w > maxW {
		w = maxW
		span = w - 2*BadgePadding
	}
	d.c.SetFillColor(tok.Background)
	d.c.RoundedRect(x, y, w, BadgeHeight, BadgeHeight/2, canvas.Fill)
	d.Text(x+BadgePadding, y+BadgeHeight-1.4, span, label, TextStyle{
		Size:  BadgeFontSize,
		Style: "B",
		Color: tok.Foreground,
	})
	return w
}

// ProgressBar draws a track and fills frac of it. frac is clamped to [0,1].
func (d *Drawer) ProgressBar(x, y, w, h, frac float64, fill, track canvas.Color) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	r := h / 2
	d.c.SetFillColor(track)
	d.c.RoundedRect(x, y, w, h, r, canvas.Fill)
	if fw := w * frac; fw > 0 {
		if fw < h {
			r = fw / 2
		}
		d.c.SetFillColor(fill)
		d.c.RoundedRect(x, y, fw, h, r, canvas.Fill)
	}
}

// Dot draws a filled circle.
func (d *Drawer) Dot(x, y, r float64, fill canvas.Color) {
	d.c.SetFillColor(fill)
	d.c.Circle(x, y, r, canvas.Fill)
}

// Rule draws a solid horizontal line.
func (d *Drawer) Rule(x1, y, x2 float64, color canvas.Color, width float64) {
	d.c.SetDashPattern(nil, 0)
	d.c.SetDrawColor(color)
	d.c.SetLineWidth(width)
	d.c.Line(x1, y, x2, y)
}

// DashedLine draws a dashed line and restores solid strokes.
func (d *Drawer) DashedLine(x1, y1, x2, y2 float64, color canvas.Color) {
	d.c.SetDrawColor(color)
	d.c.SetLineWidth(0.4)
	d.c.SetDashPattern([]float64{1.2, 1}, 0)
	d.c.Line(x1, y1, x2, y2)
	d.c.SetDashPattern(nil, 0)
}

// Icon draws the round icon placeholder centered at (x, y) with a single
// glyph letter.
func (d *Drawer) Icon(x, y float64, glyph string, color canvas.Color) {
	const r = 2.2
	d.Dot(x, y, r, color)
	glyph = strings.ToUpper(firstRune(glyph))
	if glyph == "" {
		return
	}
	d.Text(x-r, y+0.9, 2*r, glyph, TextStyle{Size: 6, Style: "B", Color: canvas.White, Align: Center})
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// EmptyState draws the "no data" placeholder box at (x, y).
func (d *Drawer) EmptyState(x, y, w float64, msg string) {
	d.Card(x, y, w, EmptyStateHeight, Card{Fill: palette.Surface, Border: &palette.Border, Radius: 2})
	d.Text(x, y+EmptyStateHeight/2+1.2, w, msg, TextStyle{
		Size:  9,
		Style: "I",
		Color: palette.Faint,
		Align: Center,
	})
}

// Image draws an encoded image. Failures are returned so that callers can
// fall back to text.
func (d *Drawer) Image(name string, data []byte, x, y, w, h float64) error {
	if err := d.c.Image(name, data, x, y, w, h); err != nil {
		d.log.Warn("draw: image fallback", "image", name, "err", err)
		return err
	}
	return nil
}
