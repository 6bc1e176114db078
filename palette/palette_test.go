package palette_test

import (
	"testing"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

func TestScoreBuckets(t *testing.T) {
	tests := []struct {
		pct  float64
		key  string
		want string
	}{
		{100, "high", "100%"},
		{70, "high", "70%"},
		{69, "medium", "69%"},
		{40, "medium", "40%"},
		{39, "low", "39%"},
		{0, "low", "0%"},
	}
	for _, tt := range tests {
		got := palette.Score(tt.pct)
		if got.Key != tt.key || got.Label != tt.want {
			t.Errorf("Score(%v) = %s/%s, want %s/%s", tt.pct, got.Key, got.Label, tt.key, tt.want)
		}
	}
	if palette.Score(70).Accent != palette.Green.Accent {
		t.Error("high scores should be green")
	}
	if palette.Score(39).Accent != palette.Red.Accent {
		t.Error("low scores should be red")
	}
}

func TestStatusFirstMatchWins(t *testing.T) {
	tests := []struct {
		state string
		key   string
		label string
	}{
		{"Contratado", "positive", "Contratado"},
		{"hired", "positive", "Hired"},
		{"Activo", "positive", "Activo"},
		{"Inactivo", "paused", "Inactivo"},
		{"No aprobado", "rejected", "No Aprobado"},
		{"RECHAZADO", "rejected", "Rechazado"},
		{"En entrevista", "in-progress", "En Entrevista"},
		{"Oferta enviada", "offered", "Oferta Enviada"},
		{"Nuevo", "new", "Nuevo"},
		{"Completado", "closed", "Completado"},
		{"Desconocido", "neutral", "Desconocido"},
		{"", "neutral", "N/A"},
	}
	for _, tt := range tests {
		got := palette.Status.Classify(tt.state)
		if got.Key != tt.key || got.Label != tt.label {
			t.Errorf("Status(%q) = %s/%q, want %s/%q", tt.state, got.Key, got.Label, tt.key, tt.label)
		}
	}
}

func TestPriority(t *testing.T) {
	tests := map[string]string{
		"Alta":    "HIGH",
		"urgent":  "HIGH",
		"media":   "MEDIUM",
		"Medium":  "MEDIUM",
		"baja":    "LOW",
		"":        "LOW",
		"unknown": "LOW",
	}
	for in, want := range tests {
		if got := palette.Priority.Classify(in).Label; got != want {
			t.Errorf("Priority(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDays(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		days *float64
		key  string
	}{
		{nil, "none"},
		{f(0), "fast"},
		{f(15), "fast"},
		{f(15.5), "normal"},
		{f(30), "normal"},
		{f(31), "slow"},
	}
	for _, tt := range tests {
		if got := palette.Days(tt.days); got.Key != tt.key {
			t.Errorf("Days = %s, want %s", got.Key, tt.key)
		}
	}
	if got := palette.Days(nil).Label; got != "N/A" {
		t.Errorf("nil days label = %q", got)
	}
}

func TestStage(t *testing.T) {
	tests := map[string]string{
		"applied":      "applied",
		"screening":    "screening",
		"shortlisted":  "shortlisted",
		"interviewing": "interviewing",
		"offered":      "offered",
		"hired":        "hired",
		"rejected":     "rejected",
		"other":        "unknown",
	}
	for in, want := range tests {
		if got := palette.Stage.Classify(in).Key; got != want {
			t.Errorf("Stage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCustomPolicy(t *testing.T) {
	p := palette.NewPolicy(palette.Gray,
		palette.Rule{Patterns: []string{"VIP"}, Token: palette.Token{Key: "gold", Accent: palette.Gold}},
	)
	if got := p.Classify("cliente vip"); got.Key != "gold" {
		t.Errorf("custom rule not matched: %+v", got)
	}
	if got := p.Classify("cliente"); got.Key != "gray" {
		t.Errorf("fallback = %+v", got)
	}
}

func TestPolicyRulesAreCopied(t *testing.T) {
	rules := palette.Priority.Rules()
	if len(rules) != 2 || rules[0].Token.Key != "high" || rules[1].Token.Key != "medium" {
		t.Fatalf("rules = %+v", rules)
	}
	rules[0].Token.Key = "changed"
	if palette.Priority.Rules()[0].Token.Key != "high" {
		t.Error("Rules exposed the internal table")
	}
	if palette.Priority.Fallback().Key != "low" {
		t.Errorf("fallback = %+v", palette.Priority.Fallback())
	}
}
