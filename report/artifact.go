package report

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sanitize"
)

// Artifact is a finished report.
type Artifact struct {
	Filename  string
	Kind      talentpdf.Kind
	Pages     int
	Reference string // unique id stamped on the document
	Data      []byte
}

// Bytes returns the PDF bytes.
func (a *Artifact) Bytes() []byte { return a.Data }

// Base64 returns the PDF as standard base64.
func (a *Artifact) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// DataURI returns the PDF as a data: URI for embedding or opening in a
// browser tab.
func (a *Artifact) DataURI() string {
	return "data:application/pdf;base64," + a.Base64()
}

// Save writes the PDF into dir under its filename and returns the path.
func (a *Artifact) Save(dir string) (string, error) {
	if len(a.Data) == 0 {
		return "", fmt.Errorf("report: save %s: %w: empty document", a.Filename, talentpdf.ErrRender)
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("report: save: %w", err)
	}
	return path, nil
}

// Filename builds {ReportType}_{Subject}_{YYYY-MM-DD}.pdf. A custom name
// replaces it and gets ".pdf" appended when missing.
func Filename(kind talentpdf.Kind, subject string, date time.Time, custom string) string {
	if custom = strings.TrimSpace(custom); custom != "" {
		custom = filepath.Base(custom)
		if !strings.HasSuffix(strings.ToLower(custom), ".pdf") {
			custom += ".pdf"
		}
		return custom
	}
	return fmt.Sprintf("%s_%s_%s.pdf", kind.FilePrefix(), FoldSubject(subject), date.Format("2006-01-02"))
}

// newFold returns an accent-folding transformer. Chains keep internal
// buffers, so each call gets its own.
func newFold() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// FoldSubject reduces a subject to [A-Za-z0-9-]: accents are folded to
// their base letter, runs of anything else become a single hyphen.
func FoldSubject(s string) string {
	s = sanitize.Clean(s)
	folded, _, err := transform.String(newFold(), s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	dash := false
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "Report"
	}
	return out
}
