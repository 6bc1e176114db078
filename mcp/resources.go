package mcp

import (
	"encoding/json"
	"fmt"
	"net/url"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/report"
)

// RegisterDefaultResources adds the report resources to the server.
// Resources use the report:// scheme.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "report://kinds",
		Name:        "Report Kinds",
		Description: "The report kinds generate_report accepts, with their filename prefixes and aliases.",
		MIMEType:    "application/json",
		Handler:     handleKindsResource,
	})

	s.AddResource(Resource{
		URI:         "report://schema",
		Name:        "Report Payload Schema",
		Description: "JSON schema of a report payload. Pass the kind as a query parameter: report://schema?kind=candidate",
		MIMEType:    "application/schema+json",
		Handler:     handleSchemaResource,
	})

	s.AddResource(Resource{
		URI:         "report://palette",
		Name:        "Report Palette",
		Description: "Status, priority and stage color rules and match-score thresholds used by badges and bars.",
		MIMEType:    "application/json",
		Handler:     handlePaletteResource,
	})
}

func jsonContent(uri string, v any) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}

func handleKindsResource(uri string) ([]ResourceContent, error) {
	kinds := make([]map[string]any, 0, len(talentpdf.Kinds()))
	for _, k := range talentpdf.Kinds() {
		kinds = append(kinds, map[string]any{
			"kind":   k,
			"prefix": k.FilePrefix(),
		})
	}
	return jsonContent(uri, map[string]any{
		"kinds":   kinds,
		"aliases": map[string]talentpdf.Kind{"profile": talentpdf.KindCandidatesByProfile, "candidates": talentpdf.KindCandidatesByProfile, "gantt": talentpdf.KindTimeline},
	})
}

func handleSchemaResource(uri string) ([]ResourceContent, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing URI: %w", err)
	}
	name := u.Query().Get("kind")
	if name == "" {
		return nil, fmt.Errorf("missing 'kind' parameter in URI")
	}
	kind, err := talentpdf.ParseKind(name)
	if err != nil {
		return nil, err
	}
	schema, err := report.Schema(kind)
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/schema+json", Text: string(schema)}}, nil
}

type tokenInfo struct {
	Key        string   `json:"key"`
	Label      string   `json:"label,omitempty"`
	Patterns   []string `json:"patterns,omitempty"`
	Background string   `json:"background"`
	Foreground string   `json:"foreground"`
	Accent     string   `json:"accent"`
}

func describe(t palette.Token, patterns []string) tokenInfo {
	return tokenInfo{
		Key:        t.Key,
		Label:      t.Label,
		Patterns:   patterns,
		Background: t.Background.String(),
		Foreground: t.Foreground.String(),
		Accent:     t.Accent.String(),
	}
}

func describePolicy(p *palette.Policy) map[string]any {
	rules := make([]tokenInfo, 0)
	for _, r := range p.Rules() {
		rules = append(rules, describe(r.Token, r.Patterns))
	}
	return map[string]any{
		"rules":    rules,
		"fallback": describe(p.Fallback(), nil),
	}
}

func handlePaletteResource(uri string) ([]ResourceContent, error) {
	return jsonContent(uri, map[string]any{
		"status":   describePolicy(palette.Status),
		"priority": describePolicy(palette.Priority),
		"stage":    describePolicy(palette.Stage),
		"score": map[string]any{
			"high":   palette.HighScore,
			"medium": palette.MediumScore,
		},
		"brand": map[string]string{
			"primary":   palette.Primary.String(),
			"highlight": palette.Highlight.String(),
			"dark":      palette.Dark.String(),
		},
	})
}
