package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/layout"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/table"
)

func newTestTable(t *testing.T) (*table.Table, *layout.Cursor, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder()
	cur := layout.New(rec, layout.Letter())
	return table.New(draw.New(rec, nil), cur), cur, rec
}

func TestBasicTable(t *testing.T) {
	tb, cur, rec := newTestTable(t)
	tb.SetColumns(
		table.ColumnDef{Title: "Name"},
		table.ColumnDef{Title: "Email"},
		table.ColumnDef{Title: "Status", Width: 30},
		table.ColumnDef{Title: "Match", Width: 40},
	)

	r := tb.AddRow()
	r.AddCell("Ana López")
	r.AddCell("ana@example.com")
	r.AddStatusCell("Contratado")
	r.AddProgressCell(85)

	start := cur.Y()
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := cur.Y() - start; got != 16 {
		t.Errorf("advance = %v, want header + 1 row", got)
	}
	for _, want := range []string{"Name", "Ana López", "Contratado", "85%"} {
		if !rec.HasText(1, want) {
			t.Errorf("missing %q in %q", want, rec.Texts(1))
		}
	}
}

func TestEmptyTableRendersOnePlaceholder(t *testing.T) {
	tb, cur, rec := newTestTable(t)
	tb.SetColumns(table.ColumnDef{Title: "Name"}, table.ColumnDef{Title: "Match"})
	tb.SetEmptyMessage("Sin datos")

	start := cur.Y()
	if err := tb.Render(); err != nil {
		t.Fatalf("render empty table: %v", err)
	}
	if got := cur.Y() - start; got != draw.EmptyStateAdvance {
		t.Errorf("advance = %v, want %v", got, draw.EmptyStateAdvance)
	}
	texts := rec.Texts(1)
	if len(texts) != 1 || texts[0] != "Sin datos" {
		t.Errorf("texts = %q, want one placeholder", texts)
	}
	boxes := 0
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "rrect" {
			boxes++
		}
	}
	if boxes != 1 {
		t.Errorf("placeholder boxes = %d", boxes)
	}
}

func TestHeaderRepeatsOnPageBreak(t *testing.T) {
	tb, _, rec := newTestTable(t)
	tb.SetColumns(
		table.ColumnDef{Title: "ID", Width: 20},
		table.ColumnDef{Title: "Item"},
	)
	for i := 0; i < 50; i++ {
		r := tb.AddRow()
		r.AddCellf("%d", i+1)
		r.AddCellf("Item %d", i+1)
	}
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if rec.PageCount() < 2 {
		t.Fatalf("expected at least 2 pages with 50 rows, got %d", rec.PageCount())
	}
	for p := 1; p <= rec.PageCount(); p++ {
		if texts := rec.Texts(p); len(texts) == 0 || texts[0] != "ID" {
			t.Errorf("page %d does not start with the header: %q", p, texts)
		}
	}
	t.Logf("Multi-page table: %d pages", rec.PageCount())
}

func TestMaxRowsFootnote(t *testing.T) {
	tb, _, rec := newTestTable(t)
	tb.SetColumns(table.ColumnDef{Title: "Candidate"})
	tb.SetMaxRows(5)
	tb.SetMoreFormat(func(n int) string { return "+" + strings.Repeat("I", n) })
	for i := 0; i < 8; i++ {
		tb.AddRow().AddCellf("Candidate %d", i)
	}
	if err := tb.Render(); err != nil {
		t.Fatal(err)
	}
	if rec.HasText(1, "Candidate 5") {
		t.Error("row beyond the cap was drawn")
	}
	if !rec.HasText(1, "+III") {
		t.Errorf("footnote missing: %q", rec.Texts(1))
	}
}

func TestAlternatingRows(t *testing.T) {
	tb, _, rec := newTestTable(t)
	tb.SetColumnWidths(60)
	for i := 0; i < 4; i++ {
		tb.AddRow().AddCellf("Row %d", i)
	}
	if err := tb.Render(); err != nil {
		t.Fatal(err)
	}
	var fills []canvas.Color
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "rect" {
			fills = append(fills, op.Fill)
		}
	}
	if len(fills) != 4 {
		t.Fatalf("fills = %v", fills)
	}
	if fills[0] != canvas.White || fills[1] != palette.Surface || fills[2] != canvas.White {
		t.Errorf("row tints = %v", fills)
	}
}

func TestCellTruncation(t *testing.T) {
	tb, _, rec := newTestTable(t)
	tb.SetColumnWidths(20, 0)
	r := tb.AddRow()
	r.AddCell("Licenciatura en Ciencias de la Computación")
	r.AddCell("")
	if err := tb.Render(); err != nil {
		t.Fatal(err)
	}
	texts := rec.Texts(1)
	if !strings.HasSuffix(texts[0], "...") {
		t.Errorf("long cell not truncated: %q", texts[0])
	}
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "text" && op.Text == texts[0] && op.W > 16 {
			t.Errorf("cell text wider than its column: %v", op.W)
		}
	}
	if texts[1] != table.Missing {
		t.Errorf("empty cell = %q", texts[1])
	}
}

func TestProgressCellColors(t *testing.T) {
	tb, _, rec := newTestTable(t)
	tb.SetColumnWidths(60)
	for _, v := range []float64{85, 55, 20} {
		tb.AddRow().AddProgressCell(v)
	}
	if err := tb.Render(); err != nil {
		t.Fatal(err)
	}
	var bars []canvas.Color
	for _, op := range rec.OpsOn(1) {
		if op.Kind == "rrect" && op.Fill != palette.Light {
			bars = append(bars, op.Fill)
		}
	}
	want := []canvas.Color{palette.Green.Accent, palette.Amber.Accent, palette.Red.Accent}
	if len(bars) != len(want) {
		t.Fatalf("bars = %v", bars)
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("bar %d color = %v, want %v", i, bars[i], want[i])
		}
	}
}

func TestRenderToPDF(t *testing.T) {
	pdf := canvas.NewPDF()
	cur := layout.New(pdf, layout.Letter())
	tb := table.New(draw.New(pdf, nil), cur)
	tb.SetColumns(
		table.ColumnDef{Title: "Perfil"},
		table.ColumnDef{Title: "Estado", Width: 35},
		table.ColumnDef{Title: "Match", Width: 45},
	)
	r := tb.AddRow()
	r.AddCell("Gerente de Ventas")
	r.AddStatusCell("En proceso")
	r.AddProgressCell(72)
	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	t.Logf("Table PDF: %d bytes", buf.Len())
}
