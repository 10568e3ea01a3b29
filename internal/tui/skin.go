package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Skin is a colour scheme for the face. All colours are hex strings.
type Skin struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Tile       string `yaml:"tile"`
	TileAlt    string `yaml:"tile_alt"`
	Ink        string `yaml:"ink"`
	InkAlt     string `yaml:"ink_alt"`
	Accent     string `yaml:"accent"`
	Muted      string `yaml:"muted"`
	// IdleDim is how far (0-1) tile colours fade toward the background in
	// idle mode.
	IdleDim float64 `yaml:"idle_dim"`
}

var builtinSkins = map[string]Skin{
	"default": {
		Name: "default", Background: "#101418", Tile: "#1f6feb", TileAlt: "#e6edf3",
		Ink: "#e6edf3", InkAlt: "#1f6feb", Accent: "#f0883e", Muted: "#6e7681", IdleDim: 0.55,
	},
	"mono": {
		Name: "mono", Background: "#000000", Tile: "#000000", TileAlt: "#ffffff",
		Ink: "#ffffff", InkAlt: "#000000", Accent: "#ffffff", Muted: "#808080", IdleDim: 0.6,
	},
	"amber": {
		Name: "amber", Background: "#1a1200", Tile: "#2b1d00", TileAlt: "#ffb000",
		Ink: "#ffb000", InkAlt: "#2b1d00", Accent: "#ffd27f", Muted: "#8a6d2f", IdleDim: 0.5,
	},
}

// Package-level colours used by the status line and help footer.
var (
	activeSkin  = builtinSkins["default"]
	ColorAccent = lipgloss.Color(activeSkin.Accent)
	ColorGray   = lipgloss.Color(activeSkin.Muted)
)

// InitializeSkin selects a builtin skin, or loads <configDir>/skins/<name>.yml.
// On error the default skin stays active.
func InitializeSkin(name, configDir string) error {
	skin, err := lookupSkin(name, configDir)
	if err != nil {
		return err
	}
	applySkin(skin)
	return nil
}

func lookupSkin(name, configDir string) (Skin, error) {
	if name == "" {
		name = "default"
	}
	if s, ok := builtinSkins[name]; ok {
		return s, nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return Skin{}, fmt.Errorf("skin %q: %w", name, err)
	}
	skin := builtinSkins["default"]
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return Skin{}, fmt.Errorf("skin %q: %w", name, err)
	}
	if err := skin.validate(); err != nil {
		return Skin{}, fmt.Errorf("skin %q: %w", name, err)
	}
	return skin, nil
}

func (s Skin) validate() error {
	for field, v := range map[string]string{
		"background": s.Background, "tile": s.Tile, "tile_alt": s.TileAlt,
		"ink": s.Ink, "ink_alt": s.InkAlt, "accent": s.Accent, "muted": s.Muted,
	} {
		if _, err := colorful.Hex(v); err != nil {
			return fmt.Errorf("%s: invalid colour %q", field, v)
		}
	}
	if s.IdleDim < 0 || s.IdleDim > 1 {
		return errors.New("idle_dim must be between 0 and 1")
	}
	return nil
}

func applySkin(s Skin) {
	activeSkin = s
	ColorAccent = lipgloss.Color(s.Accent)
	ColorGray = lipgloss.Color(s.Muted)
}

// tilePalette is the pair of colours one tile is drawn with.
type tilePalette struct {
	bg, fg lipgloss.Color
}

// palette returns the colours for a tile. Alternate tiles (the diagonal)
// swap ink and paper; idle mode fades both toward the background.
func (s Skin) palette(alt, idle bool) tilePalette {
	bg, fg := s.Tile, s.Ink
	if alt {
		bg, fg = s.TileAlt, s.InkAlt
	}
	if idle {
		bg, fg = blend(bg, s.Background, s.IdleDim), blend(fg, s.Background, s.IdleDim)
	}
	return tilePalette{bg: lipgloss.Color(bg), fg: lipgloss.Color(fg)}
}

// blend mixes from toward to by t in Lab space. Unparseable input is
// returned unchanged.
func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
