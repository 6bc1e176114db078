// Package talentpdf renders recruitment reports (candidates, profiles,
// clients, timelines) into paginated PDF documents from low-level drawing
// primitives.
//
// The root package holds the shared vocabulary: report kinds, generation
// options and error types. Rendering lives in the report package; the
// canvas, sanitize, measure, palette, layout, draw, sections, table and
// pageops packages are the building blocks it composes.
package talentpdf

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported report types.
type Kind string

// Supported report kinds.
const (
	KindCandidate           Kind = "candidate"
	KindCandidatesByProfile Kind = "candidates-by-profile"
	KindClient              Kind = "client"
	KindConsolidated        Kind = "consolidated"
	KindTimeline            Kind = "timeline"

	// KindTemplate marks ad-hoc reports described by a doctpl template. It
	// has no payload schema and is not listed by Kinds.
	KindTemplate Kind = "template"
)

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindCandidate, KindCandidatesByProfile, KindClient, KindConsolidated, KindTimeline}
}

// ParseKind resolves a kind from its name. Underscores and case are ignored,
// so "Candidates_By_Profile" resolves to KindCandidatesByProfile.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", "-")))
	for _, k := range Kinds() {
		if string(k) == norm {
			return k, nil
		}
	}
	// aliases used by the front end routes
	switch norm {
	case "profile", "candidates":
		return KindCandidatesByProfile, nil
	case "gantt":
		return KindTimeline, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, s)
}

// FilePrefix returns the report-type segment used in generated filenames.
func (k Kind) FilePrefix() string {
	switch k {
	case KindCandidate:
		return "CandidateReport"
	case KindCandidatesByProfile:
		return "CandidatesByProfile"
	case KindClient:
		return "ClientReport"
	case KindConsolidated:
		return "ConsolidatedReport"
	case KindTimeline:
		return "TimelineReport"
	}
	return "Report"
}
