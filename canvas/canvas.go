// Package canvas defines the drawing collaborator used by the report engine.
//
// The engine never talks to a PDF library directly: every primitive receives
// a Canvas. Two implementations are provided. PDF is backed by go-pdf/fpdf
// and produces the final document; Recorder keeps an in-memory log of draw
// calls with deterministic text metrics and is used to test geometry.
//
// A Canvas holds a single graphics state register (font, colors, line width,
// dash pattern, opacity). Callers set the state they need before every draw
// and never rely on what a previous call left behind.
package canvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors reported by Canvas implementations.
var (
	ErrNoAlpha = errors.New("canvas: opacity is not supported")
	ErrImage   = errors.New("canvas: image cannot be embedded")
)

// Draw styles accepted by the shape primitives.
const (
	Fill       = "F"
	Stroke     = "D"
	FillStroke = "FD"
)

// Letter page size in millimeters.
const (
	LetterWidth  = 215.9
	LetterHeight = 279.4
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Common colors.
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// Hex parses "#RRGGBB" or "RRGGBB". Invalid input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return Color{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R&0xff, c.G&0xff, c.B&0xff)
}

// Mix blends c toward other by t in [0,1]. Used to derive tints.
func (c Color) Mix(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b int) int {
		return int(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B)}
}

// Canvas is the drawing collaborator. Coordinates and sizes are in the
// document unit (millimeters for every canvas in this module); font sizes
// are in points. Text is placed with its baseline at y.
type Canvas interface {
	PageSize() (w, h float64)
	AddPage()
	SetPage(n int)
	Page() int
	PageCount() int

	SetFont(family, style string, size float64)
	SetFontSize(size float64)
	FontSize() float64
	StringWidth(s string) float64

	SetFillColor(c Color)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)
	SetDashPattern(dash []float64, phase float64)
	// SetAlpha sets the opacity for subsequent drawing. It returns
	// ErrNoAlpha when the surface cannot do transparency.
	SetAlpha(alpha float64) error

	Text(x, y float64, s string)
	Rect(x, y, w, h float64, style string)
	RoundedRect(x, y, w, h, r float64, style string)
	Circle(x, y, r float64, style string)
	Line(x1, y1, x2, y2 float64)
	// Image draws an encoded image. name identifies the image so that it
	// is embedded once no matter how many pages use it.
	Image(name string, data []byte, x, y, w, h float64) error

	Err() error
}
