package palette

import (
	"fmt"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
)

// Brand colors of the report chrome.
var (
	Primary   = canvas.Color{R: 0, G: 71, B: 171}
	Deep      = canvas.Color{R: 0, G: 40, B: 130}
	Highlight = canvas.Color{R: 255, G: 107, B: 0}
	Gold      = canvas.Color{R: 218, G: 165, B: 32}
	Dark      = canvas.Color{R: 31, G: 41, B: 55}
	Muted     = canvas.Color{R: 107, G: 114, B: 128}
	Faint     = canvas.Color{R: 156, G: 163, B: 175}
	Light     = canvas.Color{R: 243, G: 244, B: 246}
	Surface   = canvas.Color{R: 248, G: 250, B: 252}
	Border    = canvas.Color{R: 229, G: 231, B: 235}
)

func tone(key, label, bg, fg, accent string) Token {
	return Token{Key: key, Label: label, Background: canvas.Hex(bg), Foreground: canvas.Hex(fg), Accent: canvas.Hex(accent)}
}

// Tones shared by every policy.
var (
	Green  = tone("green", "", "#D1FAE5", "#065F46", "#10B981")
	Amber  = tone("amber", "", "#FEF3C7", "#92400E", "#F59E0B")
	Red    = tone("red", "", "#FEE2E2", "#991B1B", "#EF4444")
	Indigo = tone("indigo", "", "#E0E7FF", "#3730A3", "#6366F1")
	Blue   = tone("blue", "", "#DBEAFE", "#1E40AF", "#3B82F6")
	Purple = tone("purple", "", "#EDE9FE", "#5B21B6", "#8B5CF6")
	Orange = tone("orange", "", "#FFEDD5", "#9A3412", "#F97316")
	Gray   = tone("gray", "", "#F3F4F6", "#374151", "#6B7280")
)

func keyed(t Token, key, label string) Token {
	t.Key, t.Label = key, label
	return t
}

// Status classifies candidate, application and profile states. Badges show
// the input wording.
var Status = NewPolicy(keyed(Gray, "neutral", ""),
	Rule{[]string{"rechaz", "descart", "reject", "cancel", "no aprob", "declin"}, keyed(Red, "rejected", "")},
	Rule{[]string{"inactiv", "paus", "suspend", "hold"}, keyed(Gray, "paused", "")},
	Rule{[]string{"ofert", "offer"}, keyed(Orange, "offered", "")},
	Rule{[]string{"contratad", "aprobad", "approved", "hired", "activ"}, keyed(Green, "positive", "")},
	Rule{[]string{"entrevista", "proceso", "interview", "pending", "pendiente", "revisi", "review", "screening", "evaluaci", "shortlist", "preselecc"}, keyed(Amber, "in-progress", "")},
	Rule{[]string{"aplic", "nuevo", "nueva", "applied", "new"}, keyed(Indigo, "new", "")},
	Rule{[]string{"completad", "completed", "cerrad", "closed", "finaliz", "finished", "cubiert", "filled"}, keyed(Blue, "closed", "")},
).KeepInputLabel()

// Priority classifies profile priority strings. Anything that is not high
// or medium, including an empty value, is low.
var Priority = NewPolicy(keyed(Green, "low", "LOW"),
	Rule{[]string{"high", "alta", "urgent", "crític", "critic"}, keyed(Red, "high", "HIGH")},
	Rule{[]string{"medium", "media", "normal"}, keyed(Amber, "medium", "MEDIUM")},
)

// Stage colors the candidate pipeline stages used by Gantt rows.
var Stage = NewPolicy(keyed(Gray, "unknown", ""),
	Rule{[]string{"reject", "rechaz"}, keyed(Red, "rejected", "")},
	Rule{[]string{"hired", "contratad"}, keyed(Green, "hired", "")},
	Rule{[]string{"offer", "ofert"}, keyed(Orange, "offered", "")},
	Rule{[]string{"interview", "entrevista"}, keyed(Green, "interviewing", "")},
	Rule{[]string{"shortlist", "preselecc"}, keyed(Purple, "shortlisted", "")},
	Rule{[]string{"screening", "revisi", "filtro"}, keyed(Amber, "screening", "")},
	Rule{[]string{"applied", "aplic"}, keyed(Blue, "applied", "")},
).KeepInputLabel()

// Score bucket thresholds, inclusive on the lower bound.
const (
	HighScore   = 70.0
	MediumScore = 40.0
)

// Score returns the match-score bucket: >=70 high, 40-69 medium, <40 low.
// The label is the rounded percentage.
func Score(pct float64) Token {
	var t Token
	switch {
	case pct >= HighScore:
		t = keyed(Green, "high", "")
	case pct >= MediumScore:
		t = keyed(Amber, "medium", "")
	default:
		t = keyed(Red, "low", "")
	}
	t.Label = fmt.Sprintf("%.0f%%", pct)
	return t
}

// Days buckets the average days to complete a profile: <=15 fast,
// <=30 normal, otherwise slow. nil means no data.
func Days(days *float64) Token {
	if days == nil {
		return keyed(Gray, "none", "N/A")
	}
	label := fmt.Sprintf("%.0f", *days)
	switch {
	case *days <= 15:
		return keyed(Green, "fast", label)
	case *days <= 30:
		return keyed(Amber, "normal", label)
	}
	return keyed(Red, "slow", label)
}
