package sections

import (
	"fmt"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Badge row geometry.
const (
	MaxBadges       = 10
	badgeGap        = 2.0
	badgeLineHeight = 7.0
	badgeMaxWidth   = 60.0
)

// BadgeRow flows labels as badges onto as many lines as needed. Only the
// first MaxBadges are drawn; the rest are summarized by a "+N more" badge.
// An empty list places the empty state.
func (r *Renderer) BadgeRow(labels []string, tok palette.Token) {
	if len(labels) == 0 {
		r.Empty("")
		return
	}
	shown := labels
	if len(shown) > MaxBadges {
		shown = shown[:MaxBadges]
	}
	items := make([]badgeItem, 0, len(shown)+1)
	for _, l := range shown {
		items = append(items, badgeItem{label: l, tok: tok})
	}
	if hidden := len(labels) - len(shown); hidden > 0 {
		items = append(items, badgeItem{label: r.labels.More(hidden), tok: palette.Gray})
	}

	for _, line := range r.flowBadges(items, r.cur.Width()) {
		r.cur.Place(badgeLineHeight, func(x, y, _ float64) {
			bx := x
			for _, it := range line {
				bx += r.d.Badge(bx, y, it.label, it.tok, badgeMaxWidth) + badgeGap
			}
		})
	}
	r.cur.Skip(2)
}

type badgeItem struct {
	label string
	tok   palette.Token
}

// flowBadges splits items into lines no wider than width.
func (r *Renderer) flowBadges(items []badgeItem, width float64) [][]badgeItem {
	var lines [][]badgeItem
	var line []badgeItem
	used := 0.0
	for _, it := range items {
		bw := r.d.BadgeWidth(it.label, badgeMaxWidth)
		if len(line) > 0 && used+bw > width {
			lines = append(lines, line)
			line, used = nil, 0
		}
		line = append(line, it)
		used += bw + badgeGap
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// matchBarHeight is the block height of a labelled progress bar.
const matchBarHeight = 12.0

// MatchBar draws a labelled progress bar for a percentage, colored by its
// score bucket.
func (r *Renderer) MatchBar(label string, pct float64) {
	tok := palette.Score(pct)
	r.cur.Place(matchBarHeight, func(x, y, w float64) {
		r.d.Text(x, y+3.5, w-20, label, draw.TextStyle{Size: 8, Color: palette.Dark})
		r.d.ProgressBar(x, y+5.5, w-18, 3.5, pct/100, tok.Accent, palette.Light)
		r.d.Text(x+w-16, y+8.3, 16, fmt.Sprintf("%.0f%%", pct), draw.TextStyle{
			Size:  10,
			Style: "B",
			Color: tok.Accent,
			Align: draw.Right,
		})
	})
}
