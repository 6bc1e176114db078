package sections

import (
	"sort"
	"time"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Gantt geometry.
const (
	GanttLabelWidth = 45.0
	GanttMinBar     = 2.0
	GanttMaxRows    = 6
	ganttRowHeight  = 7.0
	ganttAxisHeight = 7.0
	ganttBarHeight  = 4.0
)

// GanttRow is one entity on a shared time axis. A zero End means the bar
// runs to the end of the axis.
type GanttRow struct {
	Label string
	Start time.Time
	End   time.Time
	Token palette.Token
	Note  string // drawn inside the bar when it fits
}

// Axis is the time span the rows share. Now marks the right edge as today.
type Axis struct {
	Start time.Time
	End   time.Time
	Now   bool
}

// AxisFor spans the earliest start to the latest end, extended to now when
// now is later. The axis is marked as ending today in that case.
func AxisFor(rows []GanttRow, now time.Time) Axis {
	var a Axis
	for i, row := range rows {
		if i == 0 || row.Start.Before(a.Start) {
			a.Start = row.Start
		}
		end := row.End
		if end.IsZero() {
			end = row.Start
		}
		if end.After(a.End) {
			a.End = end
		}
	}
	if !now.IsZero() && !now.Before(a.End) {
		a.End = now
		a.Now = true
	}
	return a
}

// SortGantt returns the rows ordered by start time, keeping the input order
// of rows that start at the same instant.
func SortGantt(rows []GanttRow) []GanttRow {
	out := make([]GanttRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Offset maps t onto an axis of the given width:
// (t - axis.Start) / (axis.End - axis.Start) * width, clamped to [0, width].
// A degenerate axis maps everything to 0.
func Offset(a Axis, t time.Time, width float64) float64 {
	span := a.End.Sub(a.Start)
	if span <= 0 {
		return 0
	}
	off := float64(t.Sub(a.Start)) / float64(span) * width
	if off < 0 {
		return 0
	}
	if off > width {
		return width
	}
	return off
}

// BarSpan returns the start offset and width of a row's bar. Bars are at
// least GanttMinBar wide and never extend past the axis.
func BarSpan(a Axis, row GanttRow, width float64) (start, w float64) {
	start = Offset(a, row.Start, width)
	end := width
	if !row.End.IsZero() {
		end = Offset(a, row.End, width)
	}
	w = end - start
	if w < GanttMinBar {
		w = GanttMinBar
		if start+w > width {
			start = width - w
			if start < 0 {
				start, w = 0, width
			}
		}
	}
	return start, w
}

// Gantt draws the rows sorted by start on the shared axis. Rows past
// GanttMaxRows are summarized with a "+N more" footnote. When the axis ends
// today a dashed marker is drawn at its right edge.
func (r *Renderer) Gantt(rows []GanttRow, a Axis) {
	if len(rows) == 0 {
		r.Empty("")
		return
	}
	sorted := SortGantt(rows)
	hidden := 0
	if len(sorted) > GanttMaxRows {
		hidden = len(sorted) - GanttMaxRows
		sorted = sorted[:GanttMaxRows]
	}

	r.cur.Ensure(ganttAxisHeight + ganttRowHeight)
	r.cur.Place(ganttAxisHeight, func(x, y, w float64) {
		ax, aw := x+GanttLabelWidth, w-GanttLabelWidth
		st := draw.TextStyle{Size: 7, Color: palette.Muted}
		r.d.Text(ax, y+4, aw/2, r.labels.Date(a.Start), st)
		end := r.labels.Date(a.End)
		if a.Now {
			end = r.labels.Today
		}
		st.Align = draw.Right
		r.d.Text(ax+aw/2, y+4, aw/2, end, st)
		r.d.Rule(ax, y+6, ax+aw, palette.Border, 0.2)
	})

	for i, row := range sorted {
		r.cur.Place(ganttRowHeight, func(x, y, w float64) {
			ax, aw := x+GanttLabelWidth, w-GanttLabelWidth
			if i%2 == 1 {
				r.d.Rect(x, y, w, ganttRowHeight, palette.Surface)
			}
			r.d.Text(x+1, y+4.7, GanttLabelWidth-3, r.orNA(row.Label), draw.TextStyle{Size: 7.5, Color: palette.Dark})

			start, bw := BarSpan(a, row, aw)
			by := y + (ganttRowHeight-ganttBarHeight)/2
			r.d.Card(ax+start, by, bw, ganttBarHeight, draw.Card{Fill: row.Token.Accent, Radius: 1})
			if row.Note != "" && r.m.WidthOf(row.Note, 6)+2 <= bw {
				r.d.Text(ax+start+1, by+2.9, bw-2, row.Note, draw.TextStyle{Size: 6, Style: "B", Color: palette.Surface})
			}
			if a.Now {
				r.d.DashedLine(ax+aw, y, ax+aw, y+ganttRowHeight, palette.Highlight)
			}
		})
	}

	r.moreLine(hidden)
	r.cur.Skip(3)
}
