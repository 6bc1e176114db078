package sections

import (
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Info card geometry. Rows are InfoRowHeight apart; the value column starts
// at infoValueX and is truncated to the card width minus infoValueSlack.
const (
	InfoRowHeight   = 7.0
	infoTitleHeight = 9.0
	infoIconX       = 6.0
	infoLabelX      = 10.0
	infoValueX      = 28.0
	infoValueSlack  = 35.0
	infoCardGap     = 4.0
)

// InfoRow is one label/value line of an info card.
type InfoRow struct {
	Icon  string // single glyph drawn in the icon placeholder
	Label string
	Value string
}

// InfoCardSpec is a titled list of label/value rows.
type InfoCardSpec struct {
	Title  string
	Accent canvas.Color
	Rows   []InfoRow
}

// InfoCardHeight returns the drawn height of a card with n rows.
func InfoCardHeight(n int) float64 {
	return infoTitleHeight + float64(n)*InfoRowHeight + 2
}

// InfoCard places one full-width card.
func (r *Renderer) InfoCard(c InfoCardSpec) {
	h := InfoCardHeight(len(c.Rows))
	r.cur.Place(h+infoCardGap, func(x, y, w float64) {
		r.infoCard(x, y, w, h, c)
	})
}

// InfoCardPair places two cards side by side. The block is as tall as the
// taller card.
func (r *Renderer) InfoCardPair(left, right InfoCardSpec) {
	n := len(left.Rows)
	if len(right.Rows) > n {
		n = len(right.Rows)
	}
	h := InfoCardHeight(n)
	r.cur.Place(h+infoCardGap, func(x, y, w float64) {
		half := (w - infoCardGap) / 2
		r.infoCard(x, y, half, h, left)
		r.infoCard(x+half+infoCardGap, y, half, h, right)
	})
}

func (r *Renderer) infoCard(x, y, w, h float64, c InfoCardSpec) {
	accent := c.Accent
	if accent == (canvas.Color{}) {
		accent = palette.Primary
	}
	r.d.Card(x, y, w, h, draw.Card{Fill: canvas.White, Border: &palette.Border, Radius: 2})
	r.d.Rect(x, y, w, infoTitleHeight-2, accent.Mix(canvas.White, 0.88))
	r.d.Text(x+4, y+5, w-8, c.Title, draw.TextStyle{Size: 9, Style: "B", Color: accent})

	for i, row := range c.Rows {
		base := y + infoTitleHeight + float64(i)*InfoRowHeight + 4.5
		r.d.Icon(x+infoIconX, base-1.2, row.Icon, accent)
		r.d.Text(x+infoLabelX, base, infoValueX-infoLabelX-1, row.Label, draw.TextStyle{Size: 7.5, Color: palette.Muted})
		r.d.Text(x+infoValueX, base, w-infoValueSlack, r.orNA(row.Value), draw.TextStyle{Size: 8, Style: "B", Color: palette.Dark})
	}
}

// Note is one card of a note/evaluation/document list.
type Note struct {
	Title string
	Meta  string // right-aligned secondary text, such as author and date
	Body  string
	Badge *palette.Token
}

// Note card geometry.
const (
	noteHeadHeight = 8.0
	noteLineHeight = 4.0
	noteMaxLines   = 6
	noteGap        = 3.0
)

// NoteCards places one card per note with the body wrapped to at most six
// lines. Notes past limit are summarized with a "+N more" line; limit 0 means
// no cap. An empty list places the empty state.
func (r *Renderer) NoteCards(notes []Note, limit int) {
	if len(notes) == 0 {
		r.Empty("")
		return
	}
	hidden := 0
	if limit > 0 && len(notes) > limit {
		hidden = len(notes) - limit
		notes = notes[:limit]
	}
	for _, n := range notes {
		lines := r.m.WrapLines(n.Body, r.cur.Width()-12, 8, noteMaxLines)
		h := noteHeadHeight + float64(len(lines))*noteLineHeight + 2
		r.cur.Place(h+noteGap, func(x, y, w float64) {
			accent := palette.Primary
			if n.Badge != nil {
				accent = n.Badge.Accent
			}
			r.d.Card(x, y, w, h, draw.Card{Fill: palette.Surface, Border: &palette.Border, Radius: 1.5})
			r.d.Rect(x, y, 1.5, h, accent)

			titleW := w * 0.55
			if n.Badge != nil {
				bw := r.d.Badge(x+5, y+1.8, "", *n.Badge, 30)
				r.d.Text(x+7+bw, y+5.5, titleW-bw-2, n.Title, draw.TextStyle{Size: 9, Style: "B", Color: palette.Dark})
			} else {
				r.d.Text(x+5, y+5.5, titleW, r.orNA(n.Title), draw.TextStyle{Size: 9, Style: "B", Color: palette.Dark})
			}
			r.d.Text(x+titleW+5, y+5.5, w-titleW-9, n.Meta, draw.TextStyle{Size: 7, Color: palette.Muted, Align: draw.Right})
			r.d.Lines(x+5, y+noteHeadHeight+3, noteLineHeight, lines, draw.TextStyle{Size: 8, Color: palette.Dark})
		})
	}
	r.moreLine(hidden)
}
