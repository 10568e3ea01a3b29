// Package glyph is the digit resource store: ten glyphs per font, one per
// value 0-9.
package glyph

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFont = errors.New("unknown font")
	ErrBadFont     = errors.New("malformed font")
)

// Glyph is a rectangular block of runes. The zero Glyph is the empty handle
// returned when a digit could not be loaded.
type Glyph struct {
	Rows   []string
	Width  int
	Height int
}

// Empty reports whether g carries no image.
func (g Glyph) Empty() bool { return len(g.Rows) == 0 }

// Invert swaps ink and background cells. Used for the diagonal tiles.
func (g Glyph) Invert(ink rune) Glyph {
	if g.Empty() {
		return g
	}
	rows := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		var b strings.Builder
		for _, r := range row {
			if r == ' ' {
				b.WriteRune(ink)
			} else {
				b.WriteRune(' ')
			}
		}
		rows[i] = b.String()
	}
	return Glyph{Rows: rows, Width: g.Width, Height: g.Height}
}

// Font holds the ten digit glyphs, all the same size.
type Font struct {
	Name   string
	Width  int
	Height int
	digits [10]Glyph
}

// Glyph returns the glyph for v. Out-of-range or missing digits return the
// empty handle and false.
func (f *Font) Glyph(v int) (Glyph, bool) {
	if f == nil || v < 0 || v > 9 {
		return Glyph{}, false
	}
	g := f.digits[v]
	return g, !g.Empty()
}

// fontFile is the on-disk YAML shape of a font.
type fontFile struct {
	Name   string              `yaml:"name"`
	Height int                 `yaml:"height"`
	Digits map[string][]string `yaml:"digits"`
}

// Load reads a YAML font file. Digits missing from the file are left empty
// rather than failing the whole font.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: read font: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML font.
func Parse(data []byte) (*Font, error) {
	var ff fontFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("glyph: decode font: %w", err)
	}
	if ff.Name == "" {
		return nil, fmt.Errorf("glyph: %w: missing name", ErrBadFont)
	}
	digits := make(map[rune][]string, len(ff.Digits))
	for k, rows := range ff.Digits {
		r, size := utf8.DecodeRuneInString(k)
		if size != len(k) || r < '0' || r > '9' {
			return nil, fmt.Errorf("glyph: %w: digit key %q", ErrBadFont, k)
		}
		digits[r] = rows
	}
	return newFont(ff.Name, ff.Height, digits)
}

// newFont pads every glyph to a common width and checks heights.
func newFont(name string, height int, digits map[rune][]string) (*Font, error) {
	if height <= 0 {
		for _, rows := range digits {
			height = max(height, len(rows))
		}
	}
	if height <= 0 {
		return nil, fmt.Errorf("glyph: %w: %s has no rows", ErrBadFont, name)
	}

	width := 0
	for ch, rows := range digits {
		if len(rows) != height {
			return nil, fmt.Errorf("glyph: %w: %s digit %c has %d rows, want %d",
				ErrBadFont, name, ch, len(rows), height)
		}
		for _, row := range rows {
			width = max(width, utf8.RuneCountInString(row))
		}
	}

	f := &Font{Name: name, Width: width, Height: height}
	for ch, rows := range digits {
		padded := make([]string, len(rows))
		for i, row := range rows {
			w := utf8.RuneCountInString(row)
			left := (width - w) / 2
			padded[i] = strings.Repeat(" ", left) + row + strings.Repeat(" ", width-w-left)
		}
		f.digits[ch-'0'] = Glyph{Rows: padded, Width: width, Height: height}
	}
	return f, nil
}

// Builtin returns one of the compiled-in fonts.
func Builtin(name string) (*Font, error) {
	def, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("glyph: %w: %q", ErrUnknownFont, name)
	}
	return newFont(name, def.height, def.digits)
}

// Names lists the compiled-in fonts.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a builtin font by name, or loads it from path when name
// ends in .yml/.yaml.
func Resolve(name string) (*Font, error) {
	if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
		return Load(name)
	}
	return Builtin(name)
}
