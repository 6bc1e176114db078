package canvas

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const ptToMM = 25.4 / 72

// Op is one recorded draw call.
type Op struct {
	Kind      string // text, rect, rrect, circle, line, image
	Page      int
	X, Y      float64
	W, H      float64
	X2, Y2    float64
	Text      string
	Style     string
	Fill      Color
	Stroke    Color
	TextColor Color
	FontSize  float64
	FontStyle string
	Alpha     float64
	Dashed    bool
}

// Recorder is an in-memory Canvas. Text width comes from the fixed-advance
// basicfont face scaled to the current font size, so measurements are exact
// and reproducible.
type Recorder struct {
	// AlphaUnsupported makes SetAlpha fail with ErrNoAlpha.
	AlphaUnsupported bool
	// FailImages makes every Image call fail with ErrImage.
	FailImages bool

	w, h   float64
	ops    []Op
	page   int
	pages  int
	family string
	style  string
	size   float64
	fill   Color
	stroke Color
	text   Color
	alpha  float64
	dashed bool
}

// NewRecorder returns a Letter-sized recorder with no pages.
func NewRecorder() *Recorder {
	return NewRecorderSize(LetterWidth, LetterHeight)
}

// NewRecorderSize returns a recorder with a custom page size.
func NewRecorderSize(w, h float64) *Recorder {
	return &Recorder{w: w, h: h, family: "Helvetica", size: 10, alpha: 1}
}

func (r *Recorder) PageSize() (w, h float64) { return r.w, r.h }

func (r *Recorder) AddPage() {
	r.pages++
	r.page = r.pages
}

func (r *Recorder) SetPage(n int) {
	if n >= 1 && n <= r.pages {
		r.page = n
	}
}

func (r *Recorder) Page() int      { return r.page }
func (r *Recorder) PageCount() int { return r.pages }

func (r *Recorder) SetFont(family, style string, size float64) {
	r.family, r.style, r.size = family, style, size
}

func (r *Recorder) SetFontSize(size float64) { r.size = size }
func (r *Recorder) FontSize() float64        { return r.size }

func (r *Recorder) StringWidth(s string) float64 {
	face := basicfont.Face7x13
	px := float64(font.MeasureString(face, s)) / 64
	return px / float64(face.Height) * r.size * ptToMM
}

func (r *Recorder) SetFillColor(c Color) { r.fill = c }
func (r *Recorder) SetTextColor(c Color) { r.text = c }
func (r *Recorder) SetDrawColor(c Color) { r.stroke = c }
func (r *Recorder) SetLineWidth(float64) {}

func (r *Recorder) SetDashPattern(dash []float64, _ float64) {
	r.dashed = len(dash) > 0
}

func (r *Recorder) SetAlpha(alpha float64) error {
	if r.AlphaUnsupported {
		return ErrNoAlpha
	}
	r.alpha = alpha
	return nil
}

func (r *Recorder) op(o Op) {
	o.Page = r.page
	o.Fill = r.fill
	o.Stroke = r.stroke
	o.TextColor = r.text
	o.FontSize = r.size
	o.FontStyle = r.style
	o.Alpha = r.alpha
	o.Dashed = r.dashed
	r.ops = append(r.ops, o)
}

func (r *Recorder) Text(x, y float64, s string) {
	r.op(Op{Kind: "text", X: x, Y: y, Text: s, W: r.StringWidth(s)})
}

func (r *Recorder) Rect(x, y, w, h float64, style string) {
	r.op(Op{Kind: "rect", X: x, Y: y, W: w, H: h, Style: style})
}

func (r *Recorder) RoundedRect(x, y, w, h, _ float64, style string) {
	r.op(Op{Kind: "rrect", X: x, Y: y, W: w, H: h, Style: style})
}

func (r *Recorder) Circle(x, y, rad float64, style string) {
	r.op(Op{Kind: "circle", X: x, Y: y, W: rad * 2, H: rad * 2, Style: style})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.op(Op{Kind: "line", X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Image(name string, data []byte, x, y, w, h float64) error {
	if r.FailImages {
		return fmt.Errorf("canvas: image %s: %w", name, ErrImage)
	}
	if _, _, err := Normalize(data); err != nil {
		return fmt.Errorf("canvas: image %s: %w", name, err)
	}
	r.op(Op{Kind: "image", X: x, Y: y, W: w, H: h, Text: name})
	return nil
}

func (r *Recorder) Err() error { return nil }

// Ops returns every recorded call in order.
func (r *Recorder) Ops() []Op { return r.ops }

// OpsOn returns the calls recorded on page n.
func (r *Recorder) OpsOn(n int) []Op {
	var out []Op
	for _, o := range r.ops {
		if o.Page == n {
			out = append(out, o)
		}
	}
	return out
}

// Texts returns the text drawn on page n, in drawing order.
func (r *Recorder) Texts(n int) []string {
	var out []string
	for _, o := range r.OpsOn(n) {
		if o.Kind == "text" {
			out = append(out, o.Text)
		}
	}
	return out
}

// HasText reports whether any text on page n contains sub.
func (r *Recorder) HasText(n int, sub string) bool {
	for _, t := range r.Texts(n) {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// Reset drops recorded calls but keeps pages and graphics state.
func (r *Recorder) Reset() { r.ops = nil }
