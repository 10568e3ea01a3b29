package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookupSkin_Builtin(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default", "mono", "amber"} {
		s, err := lookupSkin(name, t.TempDir())
		if err != nil {
			t.Fatalf("lookupSkin(%q): %v", name, err)
		}
		if err := s.validate(); err != nil {
			t.Fatalf("builtin %q invalid: %v", name, err)
		}
	}
}

func TestLookupSkin_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := "name: sea\ntile: \"#004466\"\naccent: \"#00ccff\"\n"
	if err := os.WriteFile(filepath.Join(dir, "skins", "sea.yml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := lookupSkin("sea", dir)
	if err != nil {
		t.Fatalf("lookupSkin: %v", err)
	}
	if s.Tile != "#004466" || s.Accent != "#00ccff" {
		t.Fatalf("skin fields not loaded: %+v", s)
	}
	if s.Ink != builtinSkins["default"].Ink {
		t.Fatalf("unset field should inherit default, got %q", s.Ink)
	}
}

func TestLookupSkin_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := lookupSkin("missing", dir); err == nil {
		t.Fatal("expected error for missing skin")
	}

	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	bad := "tile: \"not-a-colour\"\n"
	if err := os.WriteFile(filepath.Join(dir, "skins", "bad.yml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := lookupSkin("bad", dir)
	if err == nil || !strings.Contains(err.Error(), "tile") {
		t.Fatalf("err = %v, want invalid tile colour", err)
	}
}

func TestSkinPalette(t *testing.T) {
	t.Parallel()

	s := builtinSkins["mono"]
	if p := s.palette(false, false); string(p.bg) != s.Tile || string(p.fg) != s.Ink {
		t.Fatalf("plain palette = %+v", p)
	}
	if p := s.palette(true, false); string(p.bg) != s.TileAlt || string(p.fg) != s.InkAlt {
		t.Fatalf("alt palette = %+v", p)
	}

	dim := s.palette(true, true)
	if string(dim.bg) == s.TileAlt {
		t.Fatal("idle palette not dimmed")
	}
}

func TestBlend(t *testing.T) {
	t.Parallel()

	if got := blend("#ffffff", "#000000", 0); got != "#ffffff" {
		t.Fatalf("blend t=0 = %s", got)
	}
	if got := blend("#ffffff", "#000000", 1); got != "#000000" {
		t.Fatalf("blend t=1 = %s", got)
	}
	if got := blend("bogus", "#000000", 0.5); got != "bogus" {
		t.Fatalf("blend of bad colour = %s", got)
	}
}
