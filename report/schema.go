package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Payload is a decoded report payload: *Candidate, *ProfileCandidates,
// *Client, *Consolidated or *Timeline.
type Payload interface {
	Kind() talentpdf.Kind
}

func (*Candidate) Kind() talentpdf.Kind         { return talentpdf.KindCandidate }
func (*ProfileCandidates) Kind() talentpdf.Kind { return talentpdf.KindCandidatesByProfile }
func (*Client) Kind() talentpdf.Kind            { return talentpdf.KindClient }
func (*Consolidated) Kind() talentpdf.Kind      { return talentpdf.KindConsolidated }
func (*Timeline) Kind() talentpdf.Kind          { return talentpdf.KindTimeline }

var (
	schemaMu    sync.Mutex
	schemaCache = map[talentpdf.Kind]*gojsonschema.Schema{}
)

// Schema returns the JSON schema document for kind.
func Schema(kind talentpdf.Kind) ([]byte, error) {
	data, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", talentpdf.ErrUnknownReport, kind)
	}
	return data, nil
}

func compiled(kind talentpdf.Kind) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if s, ok := schemaCache[kind]; ok {
		return s, nil
	}
	doc, err := Schema(kind)
	if err != nil {
		return nil, err
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("report: compiling %s schema: %w", kind, err)
	}
	schemaCache[kind] = s
	return s, nil
}

// Validate checks raw JSON against the schema of kind. It only checks the
// shape of the payload, not its business meaning.
func Validate(kind talentpdf.Kind, raw []byte) error {
	s, err := compiled(kind)
	if err != nil {
		return err
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", talentpdf.ErrInvalidPayload, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", talentpdf.ErrInvalidPayload, strings.Join(msgs, "; "))
}

// NewPayload returns an empty payload for kind.
func NewPayload(kind talentpdf.Kind) (Payload, error) {
	switch kind {
	case talentpdf.KindCandidate:
		return &Candidate{}, nil
	case talentpdf.KindCandidatesByProfile:
		return &ProfileCandidates{}, nil
	case talentpdf.KindClient:
		return &Client{}, nil
	case talentpdf.KindConsolidated:
		return &Consolidated{}, nil
	case talentpdf.KindTimeline:
		return &Timeline{}, nil
	}
	return nil, fmt.Errorf("%w: %q", talentpdf.ErrUnknownReport, kind)
}

// Decode validates raw JSON against the schema of kind and decodes it into
// the matching payload type.
func Decode(kind talentpdf.Kind, raw []byte) (Payload, error) {
	p, err := NewPayload(kind)
	if err != nil {
		return nil, talentpdf.NewReportError("Decode", kind, err)
	}
	if err := Validate(kind, raw); err != nil {
		return nil, talentpdf.NewReportError("Decode", kind, err)
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, talentpdf.NewReportError("Decode", kind, fmt.Errorf("%w: %v", talentpdf.ErrInvalidPayload, err))
	}
	return p, nil
}
