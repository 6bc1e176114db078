// Package sanitize repairs text coming from the data layer before it is
// drawn: HTML entities, control characters, UTF-8 read as Latin-1,
// legacy code-page artifacts and symbol-polluted words.
//
// Clean is total: it never panics and never returns an error. Each step of
// the pipeline is guarded; a step that fails is skipped and its input kept.
// The pipeline is repeated until the text stops changing, so Clean is
// idempotent.
package sanitize

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

const maxPasses = 8

// Sanitizer holds the configurable parts of the pipeline.
type Sanitizer struct {
	replacer   *strings.Replacer
	table      map[string]string
	stripEmoji bool
	shrink     float64
	log        *slog.Logger
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithReplacements adds entries to the legacy artifact table. Entries with
// the same key as a default entry replace it.
func WithReplacements(m map[string]string) Option {
	return func(s *Sanitizer) {
		for k, v := range m {
			if k != "" {
				s.table[k] = v
			}
		}
	}
}

// WithEmojiStripping removes pictographic symbols the core PDF fonts cannot draw.
func WithEmojiStripping() Option {
	return func(s *Sanitizer) {
		s.stripEmoji = true
	}
}

// WithShrinkThreshold sets the minimum length ratio (repaired/original, in
// runes) a mojibake repair must keep to be accepted. Default 0.6.
func WithShrinkThreshold(ratio float64) Option {
	return func(s *Sanitizer) {
		if ratio > 0 && ratio <= 1 {
			s.shrink = ratio
		}
	}
}

// WithLogger sets the logger that receives skipped-step diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sanitizer) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a Sanitizer with the default artifact table.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		table:  defaultTable(),
		shrink: 0.6,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.replacer = newReplacer(s.table)
	return s
}

var std = New()

// Clean sanitizes raw with the default Sanitizer.
func Clean(raw string) string {
	return std.Clean(raw)
}

// CleanPtr sanitizes an optional string; nil yields "".
func CleanPtr(raw *string) string {
	if raw == nil {
		return ""
	}
	return std.Clean(*raw)
}

// Clean runs the pipeline until a fixpoint is reached.
func (s *Sanitizer) Clean(raw string) string {
	if raw == "" {
		return ""
	}
	cur := raw
	for i := 0; i < maxPasses; i++ {
		next := s.pass(cur)
		if next == cur {
			return next
		}
		cur = next
	}
	return cur
}

// CleanPtr sanitizes an optional string; nil yields "".
func (s *Sanitizer) CleanPtr(raw *string) string {
	if raw == nil {
		return ""
	}
	return s.Clean(*raw)
}

func (s *Sanitizer) pass(in string) string {
	out := s.guard("entities", in, decodeEntities)
	out = s.guard("controls", out, s.stripControls)
	out = s.guard("mojibake", out, s.repairMojibake)
	out = s.guard("legacy", out, s.replacer.Replace)
	out = s.guard("collapse", out, collapseLetterRuns)
	out = s.guard("symbols", out, stripStraySymbols)
	out = s.guard("normalize", out, normalizeSpace)
	return out
}

func (s *Sanitizer) guard(step, in string, fn func(string) string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Debug("sanitize: step skipped", "step", step, "panic", r)
			out = in
		}
	}()
	return fn(in)
}

func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return strings.ReplaceAll(html.UnescapeString(s), "\u00a0", " ")
}

func (s *Sanitizer) stripControls(in string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case isZeroWidth(r):
			return -1
		case unicode.IsControl(r):
			return -1
		case s.stripEmoji && isPictograph(r):
			return -1
		}
		return r
	}, in)
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff':
		return true
	}
	return false
}

func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r == 0x20E3:
		return true
	}
	return false
}

var percentToken = regexp.MustCompile(`\d+%`)

// stripStraySymbols removes '%' and '&' except the '%' of \d+% tokens.
func stripStraySymbols(s string) string {
	if !strings.ContainsAny(s, "%&") {
		return s
	}
	protected := percentToken.FindAllStringIndex(s, -1)
	var b strings.Builder
	b.Grow(len(s))
	next := 0
	for i := 0; i < len(s); i++ {
		for next < len(protected) && protected[next][1] <= i {
			next++
		}
		inToken := next < len(protected) && i >= protected[next][0]
		if (s[i] == '%' || s[i] == '&') && !inToken {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

func newReplacer(table map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	// longest first, then lexical, so overlapping keys resolve the same way every time
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, table[k])
	}
	return strings.NewReplacer(pairs...)
}
