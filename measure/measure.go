// Package measure wraps the canvas text metrics with the width-aware
// operations every section needs: measuring, truncating with an ellipsis
// and greedy word wrapping.
package measure

import (
	"strings"
	"unicode/utf8"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Facade measures text on a canvas. It is pure given the canvas's current
// font family and style: the font size is set per call and restored.
type Facade struct {
	c canvas.Canvas
}

// New returns a Facade measuring on c.
func New(c canvas.Canvas) *Facade {
	return &Facade{c: c}
}

// WidthOf returns the rendered width of text at fontSize points.
func (m *Facade) WidthOf(text string, fontSize float64) float64 {
	if text == "" {
		return 0
	}
	prev := m.c.FontSize()
	if prev != fontSize {
		m.c.SetFontSize(fontSize)
		defer m.c.SetFontSize(prev)
	}
	return m.c.StringWidth(text)
}

// Truncate shortens text so that it renders within maxWidth.
//
// Text that fits is returned unchanged. Otherwise the result is the longest
// prefix followed by "..." that fits. The result is never wider than
// maxWidth and never has more runes than text; when the ellipsis cannot
// satisfy both, the longest bare prefix that fits is returned, which may be
// empty.
func (m *Facade) Truncate(text string, maxWidth, fontSize float64) string {
	if m.WidthOf(text, fontSize) <= maxWidth {
		return text
	}
	rs := []rune(text)
	ellW := m.WidthOf(Ellipsis, fontSize)
	ellN := utf8.RuneCountInString(Ellipsis)

	if len(rs) >= ellN && ellW <= maxWidth {
		n := m.longestPrefix(rs, len(rs)-ellN, func(p string) bool {
			return m.WidthOf(p+Ellipsis, fontSize) <= maxWidth
		})
		prefix := strings.TrimRight(string(rs[:n]), " ")
		return prefix + Ellipsis
	}

	n := m.longestPrefix(rs, len(rs)-1, func(p string) bool {
		return m.WidthOf(p, fontSize) <= maxWidth
	})
	return string(rs[:n])
}

// longestPrefix binary-searches the largest n in [0, limit] whose prefix
// satisfies fits. Width grows with prefix length, so fits is monotone.
func (m *Facade) longestPrefix(rs []rune, limit int, fits func(string) bool) int {
	if limit < 0 {
		return 0
	}
	lo, hi := 0, limit
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if fits(string(rs[:mid])) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Wrap splits text into lines no wider than maxWidth by greedy word wrap.
// A single word wider than maxWidth gets a line of its own.
func (m *Facade) Wrap(text string, maxWidth, fontSize float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if m.WidthOf(candidate, fontSize) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// WrapLines wraps text and keeps at most maxLines lines. When lines are
// dropped, the last kept line is truncated with an ellipsis marker.
func (m *Facade) WrapLines(text string, maxWidth, fontSize float64, maxLines int) []string {
	lines := m.Wrap(text, maxWidth, fontSize)
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	kept := lines[:maxLines]
	last := kept[maxLines-1] + " " + lines[maxLines]
	kept[maxLines-1] = m.Truncate(last, maxWidth, fontSize)
	return kept
}
