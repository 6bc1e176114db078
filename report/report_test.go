package report_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/report"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func readSample(t *testing.T, kind talentpdf.Kind) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", string(kind)+".json"))
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	return data
}

func decodeSample(t *testing.T, kind talentpdf.Kind) report.Payload {
	t.Helper()
	p, err := report.Decode(kind, readSample(t, kind))
	if err != nil {
		t.Fatalf("decode %s: %v", kind, err)
	}
	return p
}

func record(t *testing.T, p report.Payload, opts ...talentpdf.Option) (*report.Artifact, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder()
	opts = append([]talentpdf.Option{talentpdf.WithClock(clock), talentpdf.WithWatermark(false)}, opts...)
	art, err := report.GenerateOn(rec, p, opts...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return art, rec
}

func TestCandidatesByProfileOrderAndColors(t *testing.T) {
	p := decodeSample(t, talentpdf.KindCandidatesByProfile)
	art, rec := record(t, p)

	if art.Filename != "CandidatesByProfile_Desarrollador-Go_2024-03-01.pdf" {
		t.Errorf("filename = %q", art.Filename)
	}
	if art.Pages != 1 {
		t.Errorf("pages = %d", art.Pages)
	}

	var names []string
	for _, s := range rec.Texts(1) {
		if s == "Ana" || s == "Luis" || s == "Marta" {
			names = append(names, s)
		}
	}
	want := []string{"Ana", "Luis", "Marta", "Ana", "Luis", "Marta"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("name order = %q, want distribution then table %q", names, want)
	}

	// bars between the distribution title and the next section title
	ops := rec.OpsOn(1)
	start, end := -1, -1
	for i, op := range ops {
		if op.Kind != "text" {
			continue
		}
		if op.Text == "Match Distribution" {
			start = i
		} else if start >= 0 && op.Text == "Candidates" {
			end = i
			break
		}
	}
	if start < 0 || end < 0 {
		t.Fatalf("distribution section not found in %q", rec.Texts(1))
	}
	var fills []canvas.Color
	for _, op := range ops[start:end] {
		if op.Kind == "rrect" && op.Fill != palette.Light {
			fills = append(fills, op.Fill)
		}
	}
	colors := []canvas.Color{palette.Green.Accent, palette.Amber.Accent, palette.Red.Accent}
	if len(fills) != len(colors) {
		t.Fatalf("bars = %v", fills)
	}
	for i := range colors {
		if fills[i] != colors[i] {
			t.Errorf("bar %d = %v, want %v", i, fills[i], colors[i])
		}
	}
}

func TestFooterTotalsComputedAfterContent(t *testing.T) {
	p := &report.ProfileCandidates{Position: "Backend Developer", Client: "Bausen"}
	for i := 0; i < report.MaxProfileCandidates; i++ {
		p.Candidates = append(p.Candidates, report.ProfileCandidate{
			Name:   fmt.Sprintf("Candidato %02d", i+1),
			Status: "Aplicado",
			Match:  float64(90 - i),
		})
	}
	art, rec := record(t, p)

	n := rec.PageCount()
	if n < 2 || art.Pages != n {
		t.Fatalf("pages = %d/%d, want the same count of at least 2", art.Pages, n)
	}
	for i := 1; i <= n; i++ {
		want := fmt.Sprintf("Page %d of %d", i, n)
		if !rec.HasText(i, want) {
			t.Errorf("page %d footer missing %q", i, want)
		}
		if rec.HasText(i, fmt.Sprintf("Page %d of 1", i)) {
			t.Errorf("page %d footer drawn before the total was known", i)
		}
	}
	if !rec.HasText(2, "Candidates by Profile") {
		t.Error("continuation band missing on page 2")
	}
	if !rec.HasText(n, "Candidato 20") {
		t.Error("last candidate row missing")
	}
}

func TestOversizedPayloadsAreCapped(t *testing.T) {
	c := &report.Candidate{Name: "Ana López"}
	for i := 0; i < 2000; i++ {
		m := float64(i % 100)
		c.Applications = append(c.Applications, report.Application{
			Profile: fmt.Sprintf("Perfil %04d", i+1),
			Client:  "Bausen",
			Status:  "Aplicado",
			Date:    "2024-02-10",
			Match:   &m,
		})
		c.Documents = append(c.Documents, report.CandidateDocument{Name: fmt.Sprintf("cv-%d.pdf", i), Type: "CV", Date: "2024-02-10"})
	}
	for i := 0; i < 50; i++ {
		c.Evaluations = append(c.Evaluations, report.Evaluation{Template: fmt.Sprintf("Prueba %d", i), Status: "Completada"})
		c.Notes = append(c.Notes, report.CandidateNote{Type: "Seguimiento", Content: "Llamada con el candidato", Date: "2024-02-10"})
	}
	_, rec := record(t, c)

	if n := rec.PageCount(); n > 4 {
		t.Errorf("pages = %d, want a bounded report", n)
	}
	wants := []string{
		fmt.Sprintf("+%d more", 2000-report.MaxApplications),
		fmt.Sprintf("+%d more", 2000-report.MaxDocuments),
		fmt.Sprintf("+%d more", 50-report.MaxEvaluations),
		fmt.Sprintf("+%d more", 50-report.MaxNotes),
	}
	for _, want := range wants {
		found := false
		for p := 1; p <= rec.PageCount(); p++ {
			found = found || rec.HasText(p, want)
		}
		if !found {
			t.Errorf("footnote %q missing", want)
		}
	}
	for p := 1; p <= rec.PageCount(); p++ {
		if rec.HasText(p, fmt.Sprintf("Perfil %04d", report.MaxApplications+1)) {
			t.Errorf("page %d shows an application past the cap", p)
		}
	}
}

func TestOversizedTablesCappedInEveryKind(t *testing.T) {
	client := &report.Client{Info: report.ClientInfo{CompanyName: "Aceros del Norte"}}
	for i := 0; i < 300; i++ {
		client.Profiles = append(client.Profiles, report.ClientProfile{Title: fmt.Sprintf("Puesto %d", i), StatusDisplay: "Activo", CreatedAt: "2024-01-10"})
	}
	_, rec := record(t, client)
	want := fmt.Sprintf("+%d more", 300-report.MaxClientProfiles)
	found := false
	for p := 1; p <= rec.PageCount(); p++ {
		found = found || rec.HasText(p, want)
	}
	if !found {
		t.Errorf("client profiles footnote %q missing", want)
	}
	if rec.PageCount() > 2 {
		t.Errorf("client report pages = %d", rec.PageCount())
	}
}

func TestSpanishLabels(t *testing.T) {
	p := decodeSample(t, talentpdf.KindCandidate)
	_, rec := record(t, p, talentpdf.WithLocale("es"))

	for _, want := range []string{"Reporte de Candidato", "Página 1 de 1", "Ana López Ruiz", "1 de marzo de 2024"} {
		if !rec.HasText(1, want) {
			t.Errorf("missing %q in %q", want, rec.Texts(1))
		}
	}
	if rec.HasText(1, "Page 1 of 1") {
		t.Error("english footer in spanish report")
	}
}

func TestEmojiStrippedFromSkills(t *testing.T) {
	p := decodeSample(t, talentpdf.KindCandidate)
	_, rec := record(t, p)
	for _, op := range rec.Ops() {
		if strings.Contains(op.Text, "🚀") {
			t.Fatalf("emoji drawn: %q", op.Text)
		}
	}
	if !rec.HasText(1, "Liderazgo") {
		t.Error("skill text lost with the emoji")
	}
}

func TestStatusKeysMergedAfterCleaning(t *testing.T) {
	c := &report.Client{
		Info:             report.ClientInfo{CompanyName: "Aceros"},
		ProfilesByStatus: map[string]int{"Activo": 2, "  Activo ": 3},
	}
	_, rec := record(t, c)
	if !rec.HasText(1, "5 (100%)") {
		t.Errorf("merged count missing in %q", rec.Texts(1))
	}
}

func TestEveryKindRendersPDF(t *testing.T) {
	for _, kind := range talentpdf.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			art, err := report.GenerateJSON(kind, readSample(t, kind), talentpdf.WithClock(clock))
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if !bytes.HasPrefix(art.Data, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF")
			}
			if art.Pages < 1 || art.Kind != kind {
				t.Errorf("artifact = %+v", art)
			}
			if !strings.HasPrefix(art.Filename, kind.FilePrefix()+"_") || !strings.HasSuffix(art.Filename, "_2024-03-01.pdf") {
				t.Errorf("filename = %q", art.Filename)
			}
		})
	}
}

func TestWatermarkToggle(t *testing.T) {
	p := decodeSample(t, talentpdf.KindTimeline)
	faint := func(rec *canvas.Recorder) int {
		n := 0
		for _, op := range rec.Ops() {
			if op.Alpha > 0 && op.Alpha < 1 {
				n++
			}
		}
		return n
	}

	_, off := record(t, p)
	if n := faint(off); n != 0 {
		t.Errorf("watermark drawn with watermark off: %d ops", n)
	}
	_, on := record(t, p, talentpdf.WithWatermark(true))
	if faint(on) == 0 {
		t.Error("no watermark ops with watermark on")
	}
}

func TestVerificationReference(t *testing.T) {
	p := decodeSample(t, talentpdf.KindClient)
	art, rec := record(t, p, talentpdf.WithVerification(talentpdf.VerifyQR, "https://verify.example.com/r/"))

	if art.Reference == "" {
		t.Fatal("empty reference")
	}
	if !rec.HasText(art.Pages, "Reference: "+art.Reference) {
		t.Errorf("reference missing on last page")
	}
	if !rec.HasText(art.Pages, "https://verify.example.com/r/"+art.Reference) {
		t.Errorf("verification URL missing")
	}

	pdf, err := report.Generate(p, talentpdf.WithClock(clock), talentpdf.WithVerification(talentpdf.VerifyPDF417, ""))
	if err != nil {
		t.Fatalf("pdf417: %v", err)
	}
	if len(pdf.Data) == 0 {
		t.Error("empty pdf with pdf417 code")
	}
}

func TestRunOnlyOnce(t *testing.T) {
	doc := report.NewDocument(canvas.NewRecorder(), talentpdf.WithClock(clock))
	rec, err := doc.Recipe(decodeSample(t, talentpdf.KindTimeline))
	if err != nil {
		t.Fatalf("recipe: %v", err)
	}
	if _, err := doc.Run(rec); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if doc.State() != report.Finalized {
		t.Errorf("state = %v", doc.State())
	}
	if _, err := doc.Run(rec); !errors.Is(err, talentpdf.ErrFinalized) {
		t.Errorf("second run err = %v, want ErrFinalized", err)
	}
}

func TestRecipeRejectsNilAndUnknown(t *testing.T) {
	doc := report.NewDocument(canvas.NewRecorder())
	var nilCandidate *report.Candidate
	if _, err := doc.Recipe(nilCandidate); !errors.Is(err, talentpdf.ErrInvalidPayload) {
		t.Errorf("nil payload err = %v", err)
	}
	if _, err := doc.Recipe(nil); !errors.Is(err, talentpdf.ErrUnknownReport) {
		t.Errorf("nil interface err = %v", err)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		kind talentpdf.Kind
		raw  string
		err  error
	}{
		{"valid", talentpdf.KindCandidate, `{"nombre":"Ana"}`, nil},
		{"nulls allowed", talentpdf.KindCandidate, `{"nombre":"Ana","contacto":null,"habilidades":null}`, nil},
		{"missing required", talentpdf.KindCandidate, `{"fecha_reporte":"2024-03-01"}`, talentpdf.ErrInvalidPayload},
		{"wrong type", talentpdf.KindCandidatesByProfile, `{"puesto":"Go","candidatos":[{"nombre":1}]}`, talentpdf.ErrInvalidPayload},
		{"not json", talentpdf.KindTimeline, `{"puesto":`, talentpdf.ErrInvalidPayload},
		{"unknown kind", talentpdf.Kind("payroll"), `{}`, talentpdf.ErrUnknownReport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := report.Decode(tt.kind, []byte(tt.raw))
			if tt.err == nil {
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if p.Kind() != tt.kind {
					t.Errorf("kind = %v", p.Kind())
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestSchemaForEveryKind(t *testing.T) {
	for _, kind := range talentpdf.Kinds() {
		if data, err := report.Schema(kind); err != nil || len(data) == 0 {
			t.Errorf("schema for %s: %v", kind, err)
		}
	}
	if _, err := report.Schema("payroll"); !errors.Is(err, talentpdf.ErrUnknownReport) {
		t.Errorf("unknown kind err = %v", err)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		kind    talentpdf.Kind
		subject string
		custom  string
		want    string
	}{
		{talentpdf.KindCandidate, "Ana López", "", "CandidateReport_Ana-Lopez_2024-03-01.pdf"},
		{talentpdf.KindClient, "Aceros del Norte S.A. de C.V.", "", "ClientReport_Aceros-del-Norte-S-A-de-C-V_2024-03-01.pdf"},
		{talentpdf.KindTimeline, "", "", "TimelineReport_Report_2024-03-01.pdf"},
		{talentpdf.KindConsolidated, "x", "resumen", "resumen.pdf"},
		{talentpdf.KindConsolidated, "x", "../../etc/Resumen.PDF", "Resumen.PDF"},
	}
	for _, tt := range tests {
		if got := report.Filename(tt.kind, tt.subject, fixedNow, tt.custom); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.subject, tt.custom, got, tt.want)
		}
	}
}

func TestFoldSubject(t *testing.T) {
	tests := map[string]string{
		"Ana López Ñúñez":  "Ana-Lopez-Nunez",
		"  Gerente  (QA) ": "Gerente-QA",
		"JosÃ© PÃ©rez":     "Jose-Perez",
		"!!!":              "Report",
	}
	for in, want := range tests {
		if got := report.FoldSubject(in); got != want {
			t.Errorf("FoldSubject(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFoldSubjectConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := report.FoldSubject("José Pérez Núñez"); got != "Jose-Perez-Nunez" {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("FoldSubject = %q, want Jose-Perez-Nunez", got)
	}
}

func TestGenerateConcurrent(t *testing.T) {
	payload := readSample(t, talentpdf.KindCandidate)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			art, err := report.GenerateJSON(talentpdf.KindCandidate, payload, talentpdf.WithClock(clock))
			if err != nil {
				errs <- err
				return
			}
			if art.Pages < 1 || !bytes.HasPrefix(art.Data, []byte("%PDF")) {
				errs <- fmt.Errorf("bad artifact: %d pages", art.Pages)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestArtifactOutputs(t *testing.T) {
	art, err := report.GenerateJSON(talentpdf.KindCandidatesByProfile,
		readSample(t, talentpdf.KindCandidatesByProfile),
		talentpdf.WithClock(clock), talentpdf.WithFilename("perfil"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(art.DataURI(), "data:application/pdf;base64,JVBERi") {
		t.Errorf("data uri prefix = %.40q", art.DataURI())
	}

	dir := t.TempDir()
	path, err := art.Save(dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != filepath.Join(dir, "perfil.pdf") {
		t.Errorf("path = %q", path)
	}
	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(saved, art.Bytes()) {
		t.Error("saved bytes differ")
	}

	empty := &report.Artifact{Filename: "x.pdf"}
	if _, err := empty.Save(dir); !errors.Is(err, talentpdf.ErrRender) {
		t.Errorf("empty save err = %v", err)
	}
}
