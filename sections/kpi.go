package sections

import (
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// KPI card geometry.
const (
	KPIHeight = 20.0
	KPIGap    = 3.0
	// kpiSubHeight is added to KPIHeight when any card has a subtext line.
	kpiSubHeight = 4.0
)

// KPI is one metric card.
type KPI struct {
	Value  string
	Label  string
	Sub    string
	Accent canvas.Color
}

// KPIRow divides the content width into len(items) equal cards separated by
// KPIGap and advances by the card height plus the gap.
func (r *Renderer) KPIRow(items []KPI) {
	n := len(items)
	if n == 0 {
		return
	}
	h := KPIHeight
	for _, k := range items {
		if k.Sub != "" {
			h += kpiSubHeight
			break
		}
	}
	r.cur.Place(h+KPIGap, func(x, y, w float64) {
		cellW := KPICellWidth(w, n)
		for i, k := range items {
			cx := x + float64(i)*(cellW+KPIGap)
			r.kpiCard(cx, y, cellW, h, k)
		}
	})
}

// KPICellWidth returns the width of each card in a row of n cards spanning w.
func KPICellWidth(w float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return (w - KPIGap*float64(n-1)) / float64(n)
}

func (r *Renderer) kpiCard(x, y, w, h float64, k KPI) {
	accent := k.Accent
	if accent == (canvas.Color{}) {
		accent = palette.Primary
	}
	r.d.Card(x, y, w, h, draw.Card{Fill: canvas.White, Border: &palette.Border, Radius: 1.5})
	r.d.Rect(x, y, w, 1.5, accent)

	value := r.orNA(k.Value)
	r.d.Text(x+1, y+10.5, w-2, value, draw.TextStyle{Size: 15, Style: "B", Color: accent, Align: draw.Center})
	r.d.Text(x+1, y+16, w-2, k.Label, draw.TextStyle{Size: 7, Color: palette.Muted, Align: draw.Center})
	if k.Sub != "" {
		r.d.Text(x+1, y+20.5, w-2, k.Sub, draw.TextStyle{Size: 6.5, Style: "I", Color: palette.Faint, Align: draw.Center})
	}
}
