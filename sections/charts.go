package sections

import (
	"fmt"
	"sort"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Bar chart geometry.
const (
	DistributionMaxRows = 20
	chartRowHeight  = 7.0
	chartLabelWidth = 50.0
	chartValueWidth = 16.0
	chartBarHeight  = 3.5
)

// Score is a labelled percentage.
type Score struct {
	Label string
	Value float64
}

// SortScores returns the scores ordered by value, highest first, keeping
// the input order of ties.
func SortScores(scores []Score) []Score {
	out := make([]Score, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// Distribution draws one bar per score, highest first, colored by score
// bucket. Scores past DistributionMaxRows are summarized with a "+N more"
// footnote.
func (r *Renderer) Distribution(scores []Score) {
	if len(scores) == 0 {
		r.Empty("")
		return
	}
	sorted := SortScores(scores)
	hidden := 0
	if len(sorted) > DistributionMaxRows {
		hidden = len(sorted) - DistributionMaxRows
		sorted = sorted[:DistributionMaxRows]
	}
	for _, s := range sorted {
		tok := palette.Score(s.Value)
		r.barRow(s.Label, s.Value/100, tok.Label, tok)
	}
	r.moreLine(hidden)
	r.cur.Skip(3)
}

func (r *Renderer) barRow(label string, frac float64, value string, tok palette.Token) {
	r.cur.Place(chartRowHeight, func(x, y, w float64) {
		r.d.Text(x, y+4.6, chartLabelWidth-2, r.orNA(label), draw.TextStyle{Size: 8, Color: palette.Dark})
		barX := x + chartLabelWidth
		barW := w - chartLabelWidth - chartValueWidth
		r.d.ProgressBar(barX, y+(chartRowHeight-chartBarHeight)/2, barW, chartBarHeight, frac, tok.Accent, palette.Light)
		r.d.Text(barX+barW, y+4.6, chartValueWidth, value, draw.TextStyle{
			Size: 8, Style: "B", Color: tok.Foreground, Align: draw.Right,
		})
	})
}

// Count is a labelled tally with its color.
type Count struct {
	Label string
	N     int
	Token palette.Token
}

// StatusBreakdown draws one bar per count scaled to the largest count, with
// the count and its share of the total.
func (r *Renderer) StatusBreakdown(counts []Count) {
	total, top := 0, 0
	for _, c := range counts {
		total += c.N
		if c.N > top {
			top = c.N
		}
	}
	if len(counts) == 0 || total == 0 {
		r.Empty("")
		return
	}
	for _, c := range counts {
		share := float64(c.N) / float64(total) * 100
		label := c.Label
		if label == "" {
			label = c.Token.Label
		}
		r.barRow(label, float64(c.N)/float64(top), fmt.Sprintf("%d (%.0f%%)", c.N, share), c.Token)
	}
	r.cur.Skip(3)
}

// ComparisonSpec compares an actual figure against a benchmark where lower
// is better, such as hours to fill a profile.
type ComparisonSpec struct {
	ActualLabel    string
	Actual         float64
	BenchmarkLabel string
	Benchmark      float64
	Unit           string
	Caption        string
}

// Efficiency returns how much better actual is than benchmark in percent.
// Negative values mean actual is worse. A non-positive benchmark yields 0.
func Efficiency(actual, benchmark float64) float64 {
	if benchmark <= 0 {
		return 0
	}
	return (benchmark - actual) / benchmark * 100
}

// Comparison draws the actual and benchmark bars on a common scale. The
// actual bar is green when it meets the benchmark and red otherwise.
func (r *Renderer) Comparison(c ComparisonSpec) {
	scale := c.Actual
	if c.Benchmark > scale {
		scale = c.Benchmark
	}
	if scale <= 0 {
		r.Empty("")
		return
	}
	actualTok := palette.Green
	if c.Actual > c.Benchmark {
		actualTok = palette.Red
	}
	r.barRow(c.ActualLabel, c.Actual/scale, fmt.Sprintf("%.0f %s", c.Actual, c.Unit), actualTok)
	r.barRow(c.BenchmarkLabel, c.Benchmark/scale, fmt.Sprintf("%.0f %s", c.Benchmark, c.Unit), palette.Gray)
	if c.Caption != "" {
		r.cur.Place(6, func(x, y, w float64) {
			r.d.Text(x, y+4, w, c.Caption, draw.TextStyle{Size: 8, Style: "I", Color: actualTok.Foreground})
		})
	}
	r.cur.Skip(3)
}
