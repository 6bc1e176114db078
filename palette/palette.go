// Package palette maps domain state strings (status, priority, match
// score, days to complete, pipeline stage) to deterministic color tokens.
//
// All dispatch goes through ordered rule tables: the first rule with a
// pattern contained in the lower-cased state wins, and a neutral gray token
// is returned when nothing matches.
package palette

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
)

// Token is an immutable badge/bar color assignment.
type Token struct {
	Key        string       // stable machine name, e.g. "high", "hired"
	Label      string       // text drawn in the badge
	Background canvas.Color // badge fill
	Foreground canvas.Color // badge text
	Accent     canvas.Color // solid color for bars, dots and top rules
}

// Rule maps any of its patterns to a token.
type Rule struct {
	Patterns []string
	Token    Token
}

// Policy is an ordered rule table with a fallback token.
type Policy struct {
	rules    []Rule
	fallback Token
	// keepInput draws the classified text itself instead of the rule label
	keepInput bool
}

// NewPolicy creates a policy. Patterns are matched case-insensitively.
func NewPolicy(fallback Token, rules ...Rule) *Policy {
	p := &Policy{fallback: fallback}
	for _, r := range rules {
		lowered := make([]string, len(r.Patterns))
		for i, pat := range r.Patterns {
			lowered[i] = strings.ToLower(pat)
		}
		p.rules = append(p.rules, Rule{Patterns: lowered, Token: r.Token})
	}
	return p
}

// KeepInputLabel makes Classify label tokens with the (title-cased) input
// text rather than the rule label. Status badges use this so that the
// backend's wording is preserved.
func (p *Policy) KeepInputLabel() *Policy {
	cp := *p
	cp.keepInput = true
	return &cp
}

// Classify returns the token of the first rule matching state.
func (p *Policy) Classify(state string) Token {
	norm := strings.ToLower(strings.TrimSpace(state))
	tok := p.fallback
	for _, r := range p.rules {
		if matchesAny(norm, r.Patterns) {
			tok = r.Token
			break
		}
	}
	switch {
	case norm == "":
		if tok.Label == "" {
			tok.Label = "N/A"
		}
	case p.keepInput || tok.Label == "":
		tok.Label = cases.Title(language.Spanish).String(strings.TrimSpace(state))
	}
	return tok
}

// Rules returns a copy of the rule table in match order.
func (p *Policy) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}

// Fallback returns the token used when no rule matches.
func (p *Policy) Fallback() Token { return p.fallback }

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}
