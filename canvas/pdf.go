package canvas

import (
	"bytes"
	"fmt"
	"io"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"
)

// PDF is a Canvas that writes a PDF document through go-pdf/fpdf.
// Automatic page breaks are disabled: pagination belongs to the layout
// package. Text goes through a cp1252 translator so that Spanish accents
// render with the core fonts.
type PDF struct {
	f      *fpdf.Fpdf
	tr     func(string) string
	images map[string]ImageInfo
	size   float64
}

// NewPDF creates a portrait Letter document in millimeters with no pages.
func NewPDF() *PDF {
	f := fpdf.New("P", "mm", "Letter", "")
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.SetCreator("talentpdf", true)
	f.SetFont("Helvetica", "", 10)
	return &PDF{
		f:      f,
		tr:     f.UnicodeTranslatorFromDescriptor(""),
		images: make(map[string]ImageInfo),
		size:   10,
	}
}

// Fpdf exposes the underlying document for page-import operations.
func (p *PDF) Fpdf() *fpdf.Fpdf { return p.f }

// SetInfo sets the document title, subject and author metadata.
func (p *PDF) SetInfo(title, subject, author string) {
	p.f.SetTitle(title, true)
	p.f.SetSubject(subject, true)
	p.f.SetAuthor(author, true)
}

// OnPageAdded registers fn to run right after every new page is created,
// before any content is drawn on it.
func (p *PDF) OnPageAdded(fn func()) {
	p.f.SetHeaderFunc(fn)
}

func (p *PDF) PageSize() (w, h float64) { return p.f.GetPageSize() }
func (p *PDF) AddPage()                 { p.f.AddPage() }
func (p *PDF) SetPage(n int)            { p.f.SetPage(n) }
func (p *PDF) Page() int                { return p.f.PageNo() }
func (p *PDF) PageCount() int           { return p.f.PageCount() }

func (p *PDF) SetFont(family, style string, size float64) {
	p.f.SetFont(family, style, size)
	p.size = size
}

func (p *PDF) SetFontSize(size float64) {
	p.f.SetFontSize(size)
	p.size = size
}

func (p *PDF) FontSize() float64 { return p.size }

func (p *PDF) StringWidth(s string) float64 {
	return p.f.GetStringWidth(p.tr(s))
}

func (p *PDF) SetFillColor(c Color) { p.f.SetFillColor(c.R, c.G, c.B) }
func (p *PDF) SetTextColor(c Color) { p.f.SetTextColor(c.R, c.G, c.B) }
func (p *PDF) SetDrawColor(c Color) { p.f.SetDrawColor(c.R, c.G, c.B) }
func (p *PDF) SetLineWidth(w float64) {
	p.f.SetLineWidth(w)
}

func (p *PDF) SetDashPattern(dash []float64, phase float64) {
	p.f.SetDashPattern(dash, phase)
}

func (p *PDF) SetAlpha(alpha float64) error {
	p.f.SetAlpha(alpha, "Normal")
	if p.f.Err() {
		err := p.f.Error()
		p.f.ClearError()
		return fmt.Errorf("%w: %v", ErrNoAlpha, err)
	}
	return nil
}

func (p *PDF) Text(x, y float64, s string) { p.f.Text(x, y, p.tr(s)) }

func (p *PDF) Rect(x, y, w, h float64, style string) {
	p.f.Rect(x, y, w, h, style)
}

func (p *PDF) RoundedRect(x, y, w, h, r float64, style string) {
	p.f.RoundedRect(x, y, w, h, r, "1234", style)
}

func (p *PDF) Circle(x, y, r float64, style string) { p.f.Circle(x, y, r, style) }
func (p *PDF) Line(x1, y1, x2, y2 float64)          { p.f.Line(x1, y1, x2, y2) }

func (p *PDF) Image(name string, data []byte, x, y, w, h float64) error {
	if _, ok := p.images[name]; !ok {
		norm, info, err := Normalize(data)
		if err != nil {
			return fmt.Errorf("canvas: image %s: %w", name, err)
		}
		p.f.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: info.Type}, bytes.NewReader(norm))
		if p.f.Err() {
			err := p.f.Error()
			p.f.ClearError()
			return fmt.Errorf("canvas: image %s: %w: %v", name, ErrImage, err)
		}
		p.images[name] = info
	}
	p.f.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: p.images[name].Type}, 0, "")
	return nil
}

// Barcode draws a verification code. kind is "qr" or "pdf417"; size is the
// height of the code, PDF417 codes are drawn three times as wide.
func (p *PDF) Barcode(kind, code string, x, y, size float64) error {
	var key string
	w := size
	switch kind {
	case "qr":
		key = barcode.RegisterQR(p.f, code, qr.M, qr.Auto)
	case "pdf417":
		key = barcode.RegisterPdf417(p.f, code, 6, 2)
		w = size * 3
	default:
		return fmt.Errorf("canvas: unknown barcode kind %q", kind)
	}
	if p.f.Err() {
		err := p.f.Error()
		p.f.ClearError()
		return fmt.Errorf("canvas: barcode: %w", err)
	}
	barcode.Barcode(p.f, key, x, y, w, size, false)
	return nil
}

func (p *PDF) Err() error {
	if p.f.Err() {
		return p.f.Error()
	}
	return nil
}

// Output writes the finished document to w.
func (p *PDF) Output(w io.Writer) error {
	if err := p.Err(); err != nil {
		return fmt.Errorf("canvas: output: %w", err)
	}
	return p.f.Output(w)
}

// Bytes renders the finished document into memory.
func (p *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
