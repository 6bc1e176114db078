package measure_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/measure"
)

func newFacade(t *testing.T) (*measure.Facade, *canvas.Recorder) {
	t.Helper()
	r := canvas.NewRecorder()
	r.SetFont("Helvetica", "", 10)
	return measure.New(r), r
}

func TestWidthOfRestoresFontSize(t *testing.T) {
	m, r := newFacade(t)
	w8 := m.WidthOf("Candidato", 8)
	w16 := m.WidthOf("Candidato", 16)
	if w16 <= w8 {
		t.Errorf("width should grow with size: %v <= %v", w16, w8)
	}
	if r.FontSize() != 10 {
		t.Errorf("font size not restored: %v", r.FontSize())
	}
	if m.WidthOf("", 10) != 0 {
		t.Error("empty text should have zero width")
	}
}

func TestTruncate(t *testing.T) {
	m, _ := newFacade(t)
	char := m.WidthOf("a", 10)

	tests := []struct {
		name  string
		text  string
		chars float64 // max width expressed in characters
		want  string
	}{
		{"fits", "Ingeniero", 9, "Ingeniero"},
		{"ellipsis", "Ingeniero de Software", 10, "Ingenie..."},
		{"trailing space trimmed", "Ana María López", 7, "Ana..."},
		{"only ellipsis fits", "Desarrollador", 3.5, "..."},
		{"ellipsis too wide", "Desarrollador", 2, "De"},
		{"ellipsis replaces short text", "abcd", 3, "..."},
		{"short text never grows", "ab", 1, "a"},
		{"nothing fits", "abc", 0.5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Truncate(tt.text, tt.chars*char+1e-9, 10)
			if got != tt.want {
				t.Errorf("Truncate(%q, %v chars) = %q, want %q", tt.text, tt.chars, got, tt.want)
			}
		})
	}
}

func TestTruncateProperties(t *testing.T) {
	m, _ := newFacade(t)
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdefghijklmnñopqrstuvwxyz ÁÉÍÓÚáéíóú0123456789.%-")

	for i := 0; i < 500; i++ {
		n := rng.Intn(40)
		rs := make([]rune, n)
		for j := range rs {
			rs[j] = alphabet[rng.Intn(len(alphabet))]
		}
		text := string(rs)
		maxW := rng.Float64() * 60
		size := 6 + rng.Float64()*10

		got := m.Truncate(text, maxW, size)
		if w := m.WidthOf(got, size); w > maxW {
			t.Fatalf("width bound violated: Truncate(%q, %v, %v) = %q (%v)", text, maxW, size, got, w)
		}
		if utf8.RuneCountInString(got) > utf8.RuneCountInString(text) {
			t.Fatalf("result grew: Truncate(%q) = %q", text, got)
		}
		if again := m.Truncate(text, maxW, size); again != got {
			t.Fatalf("not stable: %q vs %q", got, again)
		}
	}
}

func TestWrap(t *testing.T) {
	m, _ := newFacade(t)
	char := m.WidthOf("a", 10)

	lines := m.Wrap("el candidato tiene experiencia en ventas", 16*char, 10)
	want := []string{"el candidato", "tiene", "experiencia en", "ventas"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("Wrap = %q, want %q", lines, want)
	}
	for _, l := range lines {
		if m.WidthOf(l, 10) > 16*char {
			t.Errorf("line %q too wide", l)
		}
	}

	long := m.Wrap("supercalifragilisticoespialidoso ok", 5*char, 10)
	if len(long) != 2 || long[0] != "supercalifragilisticoespialidoso" {
		t.Errorf("long word should stand alone: %q", long)
	}

	if got := m.Wrap("   ", 10, 10); got != nil {
		t.Errorf("blank text should wrap to nil, got %q", got)
	}
}

func TestWrapLines(t *testing.T) {
	m, _ := newFacade(t)
	char := m.WidthOf("a", 10)
	lines := m.WrapLines("uno dos tres cuatro cinco seis siete", 9*char, 10, 2)
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasSuffix(lines[1], measure.Ellipsis) {
		t.Errorf("last line should end with ellipsis: %q", lines[1])
	}
	if m.WidthOf(lines[1], 10) > 9*char+1e-9 {
		t.Errorf("last line too wide: %q", lines[1])
	}
}
