// Package report composes the building blocks into finished recruitment
// reports. A Document owns one canvas and one layout cursor; a Recipe is
// the ordered list of sections drawn for a report kind.
//
// Basic usage:
//
//	p, err := report.Decode(talentpdf.KindCandidate, raw)
//	if err != nil {
//	    return err
//	}
//	art, err := report.Generate(p, talentpdf.WithLocale("es"))
//	if err != nil {
//	    return err
//	}
//	path, err := art.Save("out")
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/layout"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/pageops"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sanitize"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sections"
)

// State is the lifecycle stage of a Document.
type State int

const (
	Empty State = iota
	HeaderDrawn
	SectionsDrawn
	Finalized
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case HeaderDrawn:
		return "HeaderDrawn"
	case SectionsDrawn:
		return "SectionsDrawn"
	case Finalized:
		return "Finalized"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Step is one section of a recipe.
type Step struct {
	Name string
	Draw func(d *Document)
}

// Recipe is the ordered content of one report.
type Recipe struct {
	Kind     talentpdf.Kind
	Title    string
	Subtitle string
	Subject  string // primary subject, used in the filename
	Steps    []Step
}

// Document renders one recipe onto one canvas.
type Document struct {
	set    *talentpdf.Settings
	log    *slog.Logger
	c      canvas.Canvas
	d      *draw.Drawer
	cur    *layout.Cursor
	r      *sections.Renderer
	san    *sanitize.Sanitizer
	labels Labels
	state  State
	title  string
	now    time.Time
	ref    string
}

// NewDocument prepares a document on c. A nil canvas selects a new PDF.
// The letterhead, when configured, is installed before the first page.
func NewDocument(c canvas.Canvas, opts ...talentpdf.Option) *Document {
	set := talentpdf.NewSettings(opts...)
	if c == nil {
		c = canvas.NewPDF()
	}
	doc := &Document{
		set:    set,
		log:    set.Logger,
		c:      c,
		labels: NewLabels(set.Locale),
		now:    set.Now(),
		ref:    uuid.NewString(),
		san:    sanitize.New(sanitize.WithEmojiStripping(), sanitize.WithLogger(set.Logger)),
	}
	if pdf, ok := c.(*canvas.PDF); ok && len(set.Letterhead) > 0 {
		if err := pageops.Letterhead(pdf, set.Letterhead); err != nil {
			doc.log.Warn("report: letterhead skipped", "err", err)
		}
	}
	doc.d = draw.New(c, set.Logger)
	doc.cur = layout.New(c, layout.Letter(),
		layout.WithLogger(set.Logger),
		layout.WithNewPageHook(func(page int, top float64) float64 {
			return doc.r.Continuation(doc.title)(page, top)
		}),
	)
	doc.r = sections.New(doc.d, doc.cur, doc.labels.Sections())
	return doc
}

// State returns the lifecycle stage.
func (doc *Document) State() State { return doc.state }

// Sections returns the section renderer recipes draw with.
func (doc *Document) Sections() *sections.Renderer { return doc.r }

// Labels returns the locale labels.
func (doc *Document) Labels() Labels { return doc.labels }

// Sanitizer returns the text sanitizer payloads are normalized with.
func (doc *Document) Sanitizer() *sanitize.Sanitizer { return doc.san }

// Now returns the generation time.
func (doc *Document) Now() time.Time { return doc.now }

// Reference returns the unique reference of this document.
func (doc *Document) Reference() string { return doc.ref }

// Run draws the header, every step in order, the footer on every page,
// the watermark over every page, and returns the artifact. A document runs
// exactly once.
func (doc *Document) Run(rec Recipe) (*Artifact, error) {
	if doc.state != Empty {
		return nil, talentpdf.NewReportError("Run", rec.Kind, talentpdf.ErrFinalized)
	}
	doc.title = rec.Title
	if pdf, ok := doc.c.(*canvas.PDF); ok {
		pdf.SetInfo(rec.Title, rec.Subject, doc.set.Brand)
	}

	l := doc.labels
	doc.r.Header(sections.HeaderSpec{
		Brand:    doc.set.Brand,
		Tagline:  doc.set.Tagline,
		Logo:     doc.set.Logo,
		Title:    rec.Title,
		Subtitle: rec.Subtitle,
		Date:     l.T("Generated on %s", l.Date(doc.now)),
	})
	doc.state = HeaderDrawn

	for _, st := range rec.Steps {
		doc.runStep(rec.Kind, st)
	}
	if doc.set.Verification == talentpdf.VerifyQR || doc.set.Verification == talentpdf.VerifyPDF417 {
		doc.verification()
	}
	doc.state = SectionsDrawn

	pages := doc.cur.Finalize()
	pageops.AddPageNumbers(doc.d, doc.cur.Geometry(), pageops.PageNumberStyle{
		Label:        func(i, n int) string { return l.T("Page %d of %d", i, n) },
		Brand:        doc.set.Brand,
		Tagline:      doc.set.Tagline,
		Date:         l.Date(doc.now),
		Confidential: l.T("Confidential document. For internal use only."),
	})
	if doc.set.IncludeWatermark {
		pageops.NewCompositor(doc.set.WatermarkImage, doc.set.Brand, doc.log).ApplyAll(doc.c)
	}
	doc.state = Finalized

	if err := doc.cur.Err(); err != nil {
		return nil, talentpdf.NewReportError("Run", rec.Kind, err)
	}
	art := &Artifact{
		Filename:  Filename(rec.Kind, rec.Subject, doc.now, doc.set.Filename),
		Kind:      rec.Kind,
		Pages:     pages,
		Reference: doc.ref,
	}
	if out, ok := doc.c.(interface{ Bytes() ([]byte, error) }); ok {
		data, err := out.Bytes()
		if err != nil {
			return nil, talentpdf.NewReportError("Output", rec.Kind, fmt.Errorf("%w: %v", talentpdf.ErrRender, err))
		}
		art.Data = data
	}
	doc.log.Debug("report: generated", "kind", rec.Kind, "pages", pages, "bytes", len(art.Data), "ref", doc.ref)
	return art, nil
}

// runStep draws one step. A panicking step leaves an empty-state block in
// its place and the report continues.
func (doc *Document) runStep(kind talentpdf.Kind, st Step) {
	defer func() {
		if r := recover(); r != nil {
			doc.log.Warn("report: section failed", "kind", kind, "step", st.Name, "err", r)
			doc.r.Empty("")
		}
	}()
	st.Draw(doc)
}

// barcoder is implemented by canvases that can draw QR and PDF417 codes.
type barcoder interface {
	Barcode(kind, code string, x, y, size float64) error
}

const verifyCodeSize = 22.0

// verification closes the content with the document reference and, when
// the canvas supports it, a machine-readable code carrying it.
func (doc *Document) verification() {
	l := doc.labels
	code := doc.set.VerifyBaseURL + doc.ref
	codeW := verifyCodeSize
	if doc.set.Verification == talentpdf.VerifyPDF417 {
		codeW *= 3
	}
	doc.r.SectionTitle(l.T("Verification"), verifyCodeSize)
	doc.cur.Place(verifyCodeSize+4, func(x, y, w float64) {
		tx := x
		if b, ok := doc.c.(barcoder); ok {
			if err := b.Barcode(string(doc.set.Verification), code, x, y, verifyCodeSize); err != nil {
				doc.log.Warn("report: verification code skipped", "err", err)
			} else {
				tx = x + codeW + 4
			}
		}
		st := draw.TextStyle{Size: 8, Style: "B", Color: palette.Dark}
		doc.d.Text(tx, y+8, w-(tx-x), l.T("Reference: %s", doc.ref), st)
		if doc.set.VerifyBaseURL != "" {
			st.Style, st.Color = "", palette.Muted
			doc.d.Text(tx, y+13, w-(tx-x), code, st)
		}
	})
}

// Generate renders a payload to PDF.
func Generate(p Payload, opts ...talentpdf.Option) (*Artifact, error) {
	return GenerateOn(canvas.NewPDF(), p, opts...)
}

// GenerateOn renders a payload onto c. The artifact carries PDF bytes only
// when c can produce them.
func GenerateOn(c canvas.Canvas, p Payload, opts ...talentpdf.Option) (*Artifact, error) {
	doc := NewDocument(c, opts...)
	rec, err := doc.Recipe(p)
	if err != nil {
		return nil, err
	}
	return doc.Run(rec)
}

// GenerateJSON validates, decodes and renders a JSON payload.
func GenerateJSON(kind talentpdf.Kind, raw []byte, opts ...talentpdf.Option) (*Artifact, error) {
	p, err := Decode(kind, raw)
	if err != nil {
		return nil, err
	}
	return Generate(p, opts...)
}

// Recipe normalizes a payload and returns the recipe for its kind.
func (doc *Document) Recipe(p Payload) (Recipe, error) {
	invalid := func(k talentpdf.Kind) (Recipe, error) {
		return Recipe{}, talentpdf.NewReportError("Recipe", k, talentpdf.ErrInvalidPayload)
	}
	switch v := p.(type) {
	case *Candidate:
		if v == nil {
			return invalid(talentpdf.KindCandidate)
		}
		return doc.candidateRecipe(v.normalize(doc.san)), nil
	case *ProfileCandidates:
		if v == nil {
			return invalid(talentpdf.KindCandidatesByProfile)
		}
		return doc.profileRecipe(v.normalize(doc.san)), nil
	case *Client:
		if v == nil {
			return invalid(talentpdf.KindClient)
		}
		return doc.clientRecipe(v.normalize(doc.san)), nil
	case *Consolidated:
		if v == nil {
			return invalid(talentpdf.KindConsolidated)
		}
		return doc.consolidatedRecipe(v.normalize(doc.san)), nil
	case *Timeline:
		if v == nil {
			return invalid(talentpdf.KindTimeline)
		}
		return doc.timelineRecipe(v.normalize(doc.san)), nil
	}
	return Recipe{}, talentpdf.NewReportError("Recipe", "", fmt.Errorf("%w: %T", talentpdf.ErrUnknownReport, p))
}
