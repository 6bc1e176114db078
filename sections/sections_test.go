package sections_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/layout"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sections"
)

func newRenderer(t *testing.T) (*sections.Renderer, *layout.Cursor, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder()
	cur := layout.New(rec, layout.Letter())
	return sections.New(draw.New(rec, nil), cur, sections.Labels{}), cur, rec
}

func TestKPIRowGeometry(t *testing.T) {
	r, cur, rec := newRenderer(t)
	start := cur.Y()
	r.KPIRow([]sections.KPI{
		{Value: "12", Label: "Applications"},
		{Value: "4", Label: "Documents"},
		{Value: "", Label: "Evaluations"},
		{Value: "78%", Label: "Avg match", Accent: palette.Score(78).Accent},
	})
	if got := cur.Y() - start; got != sections.KPIHeight+sections.KPIGap {
		t.Errorf("advance = %v", got)
	}

	want := sections.KPICellWidth(cur.Width(), 4)
	var cards []canvas.Op
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "rrect" {
			cards = append(cards, op)
		}
	}
	if len(cards) != 4 {
		t.Fatalf("cards = %d", len(cards))
	}
	for i, c := range cards {
		if math.Abs(c.W-want) > 1e-9 {
			t.Errorf("card %d width = %v, want %v", i, c.W, want)
		}
		if i > 0 {
			if gap := c.X - (cards[i-1].X + cards[i-1].W); math.Abs(gap-sections.KPIGap) > 1e-9 {
				t.Errorf("gap %d = %v", i, gap)
			}
		}
	}
	if !rec.HasText(1, "N/A") {
		t.Error("missing value should render N/A")
	}
}

func TestKPIRowWithSubtext(t *testing.T) {
	r, cur, _ := newRenderer(t)
	start := cur.Y()
	r.KPIRow([]sections.KPI{{Value: "18", Label: "Days open", Sub: "since Mar 1"}})
	if got := cur.Y() - start; got <= sections.KPIHeight+sections.KPIGap {
		t.Errorf("subtext should make the row taller: %v", got)
	}
}

func TestInfoCardTruncatesValues(t *testing.T) {
	r, cur, rec := newRenderer(t)
	long := "direccion.de.correo.extremadamente.larga@empresa-de-reclutamiento.com.mx"
	r.InfoCardPair(
		sections.InfoCardSpec{Title: "Contact", Rows: []sections.InfoRow{
			{Icon: "@", Label: "Email", Value: long},
			{Icon: "T", Label: "Phone"},
		}},
		sections.InfoCardSpec{Title: "Professional", Rows: []sections.InfoRow{
			{Icon: "E", Label: "Company", Value: "Bausen"},
		}},
	)
	half := (cur.Width() - 4) / 2
	for _, op := range rec.OpsOn(1) {
		if op.Kind != "text" {
			continue
		}
		if op.Text == long {
			t.Fatal("long value was not truncated")
		}
		if op.X == cur.Left()+28 && op.W > half-35+1e-9 {
			t.Errorf("value %q wider than %v", op.Text, half-35)
		}
	}
	if !rec.HasText(1, "N/A") {
		t.Error("missing phone should render N/A")
	}
}

func TestBadgeRowCapsAtTen(t *testing.T) {
	r, _, rec := newRenderer(t)
	var skills []string
	for _, s := range []string{"Go", "SQL", "Excel", "Ventas", "CRM", "Inglés", "Liderazgo", "Docker", "SAP", "Scrum", "Python", "Power BI"} {
		skills = append(skills, s)
	}
	r.BadgeRow(skills, palette.Blue)

	if rec.HasText(1, "Python") || rec.HasText(1, "Power BI") {
		t.Error("badges beyond the cap were drawn")
	}
	if !rec.HasText(1, "+2 more") {
		t.Errorf("overflow badge missing: %q", rec.Texts(1))
	}
}

func TestEmptyCollectionsRenderPlaceholder(t *testing.T) {
	r, cur, rec := newRenderer(t)
	steps := []func(){
		func() { r.BadgeRow(nil, palette.Blue) },
		func() { r.NoteCards(nil, 0) },
		func() { r.Distribution(nil) },
		func() { r.StatusBreakdown([]sections.Count{{Label: "Activo", N: 0}}) },
		func() { r.Gantt(nil, sections.Axis{}) },
		func() { r.EventList(nil) },
	}
	for i, step := range steps {
		rec.Reset()
		start := cur.Y()
		step()
		if got := cur.Y() - start; got != draw.EmptyStateAdvance {
			t.Errorf("step %d advanced %v", i, got)
		}
		if texts := rec.Texts(1); len(texts) != 1 || texts[0] != "No data available" {
			t.Errorf("step %d texts = %q", i, texts)
		}
	}
}

func TestDistributionSortedAndColored(t *testing.T) {
	r, _, rec := newRenderer(t)
	r.Distribution([]sections.Score{
		{Label: "Luis", Value: 55},
		{Label: "Marta", Value: 20},
		{Label: "Ana", Value: 85},
	})

	var labels []string
	for _, s := range rec.Texts(1) {
		if s == "Ana" || s == "Luis" || s == "Marta" {
			labels = append(labels, s)
		}
	}
	if len(labels) != 3 || labels[0] != "Ana" || labels[1] != "Luis" || labels[2] != "Marta" {
		t.Errorf("order = %q", labels)
	}

	var fills []canvas.Color
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "rrect" && op.Fill != palette.Light {
			fills = append(fills, op.Fill)
		}
	}
	want := []canvas.Color{palette.Green.Accent, palette.Amber.Accent, palette.Red.Accent}
	if len(fills) != 3 {
		t.Fatalf("bars = %v", fills)
	}
	for i := range want {
		if fills[i] != want[i] {
			t.Errorf("bar %d = %v, want %v", i, fills[i], want[i])
		}
	}
}

func TestGanttOrdering(t *testing.T) {
	r, _, rec := newRenderer(t)
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 0, 5)
	t3 := t1.AddDate(0, 0, 9)
	rows := []sections.GanttRow{
		{Label: "third", Start: t3, Token: palette.Blue},
		{Label: "first", Start: t1, Token: palette.Blue},
		{Label: "second", Start: t2, Token: palette.Blue},
	}
	now := t1.AddDate(0, 0, 20)
	r.Gantt(rows, sections.AxisFor(rows, now))

	var order []string
	for _, s := range rec.Texts(1) {
		switch s {
		case "first", "second", "third":
			order = append(order, s)
		}
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("row order = %q", order)
	}

	dashed := 0
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "line" && op.Dashed {
			dashed++
		}
	}
	if dashed != 3 {
		t.Errorf("today marker segments = %d", dashed)
	}
	if !rec.HasText(1, "Today") {
		t.Error("axis should end with Today")
	}
}

func TestGanttMaxRows(t *testing.T) {
	r, _, rec := newRenderer(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var rows []sections.GanttRow
	for i := 0; i < 9; i++ {
		rows = append(rows, sections.GanttRow{Label: string(rune('A' + i)), Start: base.AddDate(0, 0, i)})
	}
	r.Gantt(rows, sections.AxisFor(rows, time.Time{}))
	if rec.HasText(1, "G") {
		t.Error("seventh row should be hidden")
	}
	if !rec.HasText(1, "+3 more") {
		t.Error("footnote missing")
	}
}

func TestNoteCardsCap(t *testing.T) {
	r, _, rec := newRenderer(t)
	var notes []sections.Note
	for i := 1; i <= 7; i++ {
		notes = append(notes, sections.Note{Title: fmt.Sprintf("Nota %d", i), Body: "Seguimiento"})
	}
	r.NoteCards(notes, 4)
	if !rec.HasText(1, "Nota 4") || rec.HasText(1, "Nota 5") {
		t.Errorf("texts = %q", rec.Texts(1))
	}
	if !rec.HasText(1, "+3 more") {
		t.Error("footnote missing")
	}
}

func TestNoteCardsUncapped(t *testing.T) {
	r, _, rec := newRenderer(t)
	notes := []sections.Note{{Title: "Nota 1"}, {Title: "Nota 2"}}
	r.NoteCards(notes, 0)
	if !rec.HasText(1, "Nota 2") || rec.HasText(1, "more") {
		t.Errorf("texts = %q", rec.Texts(1))
	}
}

func TestDistributionCap(t *testing.T) {
	r, _, rec := newRenderer(t)
	var scores []sections.Score
	for i := 0; i < sections.DistributionMaxRows+5; i++ {
		scores = append(scores, sections.Score{Label: fmt.Sprintf("Candidato %02d", i+1), Value: float64(100 - i)})
	}
	r.Distribution(scores)
	var found bool
	for p := 1; p <= rec.PageCount(); p++ {
		if rec.HasText(p, "Candidato 21") {
			t.Errorf("page %d shows a score past the cap", p)
		}
		found = found || rec.HasText(p, "+5 more")
	}
	if !found {
		t.Error("footnote missing")
	}
}

func TestContinuationContentStartsAtTopMargin(t *testing.T) {
	rec := canvas.NewRecorder()
	g := layout.Letter()
	var r *sections.Renderer
	cur := layout.New(rec, g, layout.WithNewPageHook(func(page int, top float64) float64 {
		return r.Continuation("Candidate Report")(page, top)
	}))
	r = sections.New(draw.New(rec, nil), cur, sections.Labels{})

	cur.NewPage()
	if cur.Y() != g.Margin {
		t.Errorf("page 2 content y = %v, want top margin %v", cur.Y(), g.Margin)
	}
	if !rec.HasText(2, "Candidate Report") {
		t.Error("continuation band missing")
	}
	for _, op := range rec.OpsOn(2) {
		if op.Kind == "rect" && op.Y+op.H > g.Margin {
			t.Errorf("band reaches y = %v, below the top margin", op.Y+op.H)
		}
	}
}

func TestGanttMath(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := sections.Axis{Start: start, End: start.AddDate(0, 0, 10)}

	if got := sections.Offset(a, start.AddDate(0, 0, 5), 100); got != 50 {
		t.Errorf("midpoint offset = %v", got)
	}
	if got := sections.Offset(a, start.AddDate(0, 0, -3), 100); got != 0 {
		t.Errorf("before axis = %v", got)
	}
	if got := sections.Offset(a, start.AddDate(0, 0, 30), 100); got != 100 {
		t.Errorf("after axis = %v", got)
	}
	if got := sections.Offset(sections.Axis{Start: start, End: start}, start, 100); got != 0 {
		t.Errorf("degenerate axis = %v", got)
	}

	// open-ended bars run to the axis end
	s, w := sections.BarSpan(a, sections.GanttRow{Start: start.AddDate(0, 0, 2)}, 100)
	if s != 20 || w != 80 {
		t.Errorf("open bar = %v,%v", s, w)
	}
	// a bar at the very end keeps the minimum width inside the axis
	s, w = sections.BarSpan(a, sections.GanttRow{Start: a.End, End: a.End}, 100)
	if w != sections.GanttMinBar || s+w != 100 {
		t.Errorf("end bar = %v,%v", s, w)
	}
}

func TestSectionTitleKeepsWithContent(t *testing.T) {
	r, cur, rec := newRenderer(t)
	cur.Place(cur.Geometry().Capacity()-15, nil)
	r.SectionTitle("Applications", 20)
	if rec.PageCount() != 2 {
		t.Fatalf("title should move to the next page, pages=%d", rec.PageCount())
	}
	if !rec.HasText(2, "Applications") {
		t.Error("title not on page 2")
	}
}

func TestParagraphPaginates(t *testing.T) {
	r, cur, rec := newRenderer(t)
	cur.Place(cur.Geometry().Capacity()-8, nil)
	text := "El candidato cuenta con amplia experiencia en ventas consultivas, " +
		"manejo de cartera de clientes corporativos y liderazgo de equipos comerciales " +
		"en empresas del sector industrial y de servicios financieros."
	r.Paragraph(text, 9)
	if rec.PageCount() != 2 {
		t.Errorf("pages = %d", rec.PageCount())
	}
}

func TestHeaderLogoFallback(t *testing.T) {
	r, _, rec := newRenderer(t)
	r.Header(sections.HeaderSpec{
		Brand: "Bausen",
		Logo:  []byte("not an image"),
		Title: "Candidate Report",
	})
	if !rec.HasText(1, "Bausen") {
		t.Error("brand text fallback missing")
	}
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "image" {
			t.Error("undecodable logo was drawn")
		}
	}
}

func TestComparison(t *testing.T) {
	if got := sections.Efficiency(180, 360); got != 50 {
		t.Errorf("Efficiency = %v", got)
	}
	if got := sections.Efficiency(720, 360); got != -100 {
		t.Errorf("Efficiency = %v", got)
	}
	if got := sections.Efficiency(10, 0); got != 0 {
		t.Errorf("Efficiency with no benchmark = %v", got)
	}

	r, _, rec := newRenderer(t)
	r.Comparison(sections.ComparisonSpec{
		ActualLabel: "This process", Actual: 400,
		BenchmarkLabel: "Benchmark", Benchmark: 360,
		Unit: "h", Caption: "11% slower than benchmark",
	})
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "rrect" && op.W > 0 && op.Fill == palette.Red.Accent {
			return
		}
	}
	t.Error("slower process should be drawn red")
}
