package glyph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestBuiltin_AllDigitsPresent(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		f, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q): %v", name, err)
		}
		for v := 0; v <= 9; v++ {
			g, ok := f.Glyph(v)
			if !ok {
				t.Fatalf("%s: digit %d missing", name, v)
			}
			if len(g.Rows) != f.Height {
				t.Fatalf("%s: digit %d has %d rows, want %d", name, v, len(g.Rows), f.Height)
			}
			for _, row := range g.Rows {
				if w := utf8.RuneCountInString(row); w != f.Width {
					t.Fatalf("%s: digit %d row %q width %d, want %d", name, v, row, w, f.Width)
				}
			}
		}
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := Builtin("comic"); !errors.Is(err, ErrUnknownFont) {
		t.Fatalf("err = %v, want ErrUnknownFont", err)
	}
}

func TestGlyph_OutOfRangeIsEmpty(t *testing.T) {
	t.Parallel()

	f, _ := Builtin("slim")
	for _, v := range []int{-1, 10} {
		g, ok := f.Glyph(v)
		if ok || !g.Empty() {
			t.Fatalf("Glyph(%d) = %+v, %v; want empty", v, g, ok)
		}
	}

	var nilFont *Font
	if _, ok := nilFont.Glyph(1); ok {
		t.Fatal("nil font returned a glyph")
	}
}

func TestInvert(t *testing.T) {
	t.Parallel()

	g := Glyph{Rows: []string{"█ ", " █"}, Width: 2, Height: 2}
	got := g.Invert('#')
	if got.Rows[0] != " #" || got.Rows[1] != "# " {
		t.Fatalf("Invert = %q", got.Rows)
	}
	if !(Glyph{}).Invert('#').Empty() {
		t.Fatal("inverting the empty glyph produced an image")
	}
}

func TestLoad_YAMLFont(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tiny.yml")
	data := []byte(`name: tiny
height: 2
digits:
  "0": ["##", "##"]
  "1": ["#", "#"]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if f.Name != "tiny" || f.Width != 2 || f.Height != 2 {
		t.Fatalf("font = %s %dx%d, want tiny 2x2", f.Name, f.Width, f.Height)
	}
	one, ok := f.Glyph(1)
	if !ok || one.Rows[0] != "# " {
		t.Fatalf("digit 1 = %q, want centred padding", one.Rows)
	}
	if _, ok := f.Glyph(7); ok {
		t.Fatal("digit missing from the file should be empty")
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"no name":      "height: 1\ndigits:\n  \"0\": [\"#\"]\n",
		"bad key":      "name: x\ndigits:\n  \"a\": [\"#\"]\n",
		"ragged rows":  "name: x\nheight: 2\ndigits:\n  \"0\": [\"#\"]\n",
		"invalid yaml": "name: [",
	}
	for name, src := range tests {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
