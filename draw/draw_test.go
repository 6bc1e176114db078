package draw_test

import (
	"errors"
	"testing"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

func newDrawer(t *testing.T) (*draw.Drawer, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder()
	rec.AddPage()
	return draw.New(rec, nil), rec
}

func TestTextAlignment(t *testing.T) {
	d, rec := newDrawer(t)
	st := draw.TextStyle{Size: 10}
	w := d.Measure().WidthOf("Hola", 10)

	d.Text(10, 20, 40, "Hola", st)
	st.Align = draw.Center
	d.Text(10, 30, 40, "Hola", st)
	st.Align = draw.Right
	d.Text(10, 40, 40, "Hola", st)

	ops := rec.OpsOn(1)
	if len(ops) != 3 {
		t.Fatalf("ops = %d", len(ops))
	}
	if ops[0].X != 10 {
		t.Errorf("left x = %v", ops[0].X)
	}
	if want := 10 + (40-w)/2; ops[1].X != want {
		t.Errorf("center x = %v, want %v", ops[1].X, want)
	}
	if want := 10 + (40 - w); ops[2].X != want {
		t.Errorf("right x = %v, want %v", ops[2].X, want)
	}
}

func TestTextTruncates(t *testing.T) {
	d, rec := newDrawer(t)
	got := d.Text(0, 10, 15, "Licenciatura en Administración", draw.TextStyle{Size: 10})
	if got == "Licenciatura en Administración" {
		t.Fatal("text was not truncated")
	}
	if op := rec.OpsOn(1)[0]; op.W > 15 {
		t.Errorf("drawn width %v exceeds 15", op.W)
	}
}

func TestTextSetsState(t *testing.T) {
	d, rec := newDrawer(t)
	rec.SetTextColor(canvas.Color{R: 1, G: 2, B: 3})
	rec.SetFont("Helvetica", "B", 22)
	d.Text(0, 10, 0, "x", draw.TextStyle{Size: 8, Color: palette.Dark})
	op := rec.OpsOn(1)[0]
	if op.TextColor != palette.Dark || op.FontSize != 8 || op.FontStyle != "" {
		t.Errorf("leftover state used: %+v", op)
	}
}

func TestBadge(t *testing.T) {
	d, rec := newDrawer(t)
	tok := palette.Status.Classify("Contratado")
	w := d.Badge(5, 5, "", tok, 0)
	if w != d.BadgeWidth("Contratado", 0) {
		t.Errorf("badge width = %v", w)
	}
	ops := rec.OpsOn(1)
	if ops[0].Kind != "rrect" || ops[0].Fill != tok.Background {
		t.Errorf("pill = %+v", ops[0])
	}
	if ops[1].Text != "Contratado" || ops[1].TextColor != tok.Foreground {
		t.Errorf("label = %+v", ops[1])
	}

	if w := d.Badge(5, 15, "Entrevista técnica con el cliente", tok, 20); w != 20 {
		t.Errorf("capped badge width = %v", w)
	}
}

func TestProgressBarClamps(t *testing.T) {
	d, rec := newDrawer(t)
	d.ProgressBar(0, 0, 50, 3, 1.7, palette.Green.Accent, palette.Light)
	d.ProgressBar(0, 5, 50, 3, -1, palette.Green.Accent, palette.Light)
	d.ProgressBar(0, 10, 50, 3, 0.85, palette.Green.Accent, palette.Light)

	ops := rec.OpsOn(1)
	// full bar: track + fill, empty bar: track only, partial: track + fill
	if len(ops) != 5 {
		t.Fatalf("ops = %d", len(ops))
	}
	if ops[1].W != 50 {
		t.Errorf("clamped fill = %v", ops[1].W)
	}
	if ops[4].W != 50*0.85 {
		t.Errorf("partial fill = %v", ops[4].W)
	}
}

func TestDashedLineRestoresSolid(t *testing.T) {
	d, rec := newDrawer(t)
	d.DashedLine(0, 0, 0, 10, palette.Highlight)
	d.Rule(0, 20, 10, palette.Border, 0.2)
	ops := rec.OpsOn(1)
	if !ops[0].Dashed || ops[1].Dashed {
		t.Errorf("dash state: %v %v", ops[0].Dashed, ops[1].Dashed)
	}
}

func TestEmptyState(t *testing.T) {
	d, rec := newDrawer(t)
	d.EmptyState(12, 50, 100, "No data available")
	ops := rec.OpsOn(1)
	if ops[0].H != draw.EmptyStateHeight {
		t.Errorf("box height = %v", ops[0].H)
	}
	if !rec.HasText(1, "No data available") {
		t.Error("message missing")
	}
}

func TestImageFailureIsReturned(t *testing.T) {
	d, rec := newDrawer(t)
	rec.FailImages = true
	err := d.Image("logo", []byte("nope"), 0, 0, 10, 10)
	if !errors.Is(err, canvas.ErrImage) {
		t.Errorf("err = %v", err)
	}
}
