package pageops

import (
	"errors"
	"log/slog"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
)

// Watermark placement defaults.
const (
	DefaultOpacity    = 0.05
	DefaultWidthRatio = 0.75
	DefaultBleedX     = -18.0
	DefaultLift       = 12.0
)

// Compositor overlays the watermark on finished pages. The image keeps its
// aspect ratio, is WidthRatio of the page wide, starts BleedX from the left
// edge and hangs Lift below the bottom edge.
type Compositor struct {
	Image      []byte
	Text       string // drawn instead of the image when the image is unusable
	Opacity    float64
	WidthRatio float64
	BleedX     float64
	Lift       float64

	log   *slog.Logger
	info  canvas.ImageInfo
	valid bool
}

// NewCompositor returns a compositor with the default placement. text is
// the fallback drawn when img is empty or cannot be decoded.
func NewCompositor(img []byte, text string, log *slog.Logger) *Compositor {
	if log == nil {
		log = slog.Default()
	}
	c := &Compositor{
		Image:      img,
		Text:       text,
		Opacity:    DefaultOpacity,
		WidthRatio: DefaultWidthRatio,
		BleedX:     DefaultBleedX,
		Lift:       DefaultLift,
		log:        log,
	}
	if len(img) > 0 {
		_, info, err := canvas.Normalize(img)
		if err != nil {
			log.Warn("pageops: watermark image unusable, using text", "err", err)
		} else {
			c.info, c.valid = info, true
		}
	}
	return c
}

// Placement returns the watermark rectangle for a page of size pw x ph.
func (c *Compositor) Placement(pw, ph float64) (x, y, w, h float64) {
	w = pw * c.WidthRatio
	h = w * c.info.Ratio()
	return c.BleedX, ph - h + c.Lift, w, h
}

// Apply composites the watermark on page n. Opacity is restored to 1
// afterwards. When the canvas cannot do transparency the watermark is drawn
// opaque; calling Apply twice on a page only doubles its density.
func (c *Compositor) Apply(cv canvas.Canvas, n int) {
	cv.SetPage(n)
	if err := cv.SetAlpha(c.Opacity); err != nil {
		if errors.Is(err, canvas.ErrNoAlpha) {
			c.log.Warn("pageops: opacity unavailable, watermark drawn opaque", "page", n)
		} else {
			c.log.Warn("pageops: setting opacity", "page", n, "err", err)
		}
	}
	defer func() { _ = cv.SetAlpha(1) }()

	pw, ph := cv.PageSize()
	if c.valid {
		x, y, w, h := c.Placement(pw, ph)
		err := cv.Image("watermark", c.Image, x, y, w, h)
		if err == nil {
			return
		}
		c.log.Warn("pageops: watermark image failed, using text", "page", n, "err", err)
	}
	c.drawText(cv, pw, ph)
}

// drawText writes the fallback text in very light gray at the image anchor.
func (c *Compositor) drawText(cv canvas.Canvas, pw, ph float64) {
	if c.Text == "" {
		return
	}
	cv.SetFont("Helvetica", "B", 72)
	cv.SetTextColor(canvas.Color{R: 200, G: 200, B: 200})
	// keep the text inside the same box the image would use
	size := 72.0
	if w := cv.StringWidth(c.Text); w > pw*c.WidthRatio {
		size = size * pw * c.WidthRatio / w
		cv.SetFontSize(size)
	}
	cv.Text(c.BleedX+pw*0.08, ph-c.Lift, c.Text)
}

// ApplyAll composites the watermark on every page.
func (c *Compositor) ApplyAll(cv canvas.Canvas) {
	for n := 1; n <= cv.PageCount(); n++ {
		c.Apply(cv, n)
	}
}
