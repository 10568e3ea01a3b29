package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/digitface/internal/glyph"
	"github.com/tinytelemetry/digitface/internal/model"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
)

// View renders the face
func (m *WatchModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return renderLoadingPlaceholder(m.width, m.height)
	}

	faceW, faceH := m.face.Table().Bounds()
	// Border plus status and help lines.
	if m.width < faceW+2 || m.height < faceH+4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", faceW+2, faceH+4))
	}

	borderColor := ColorGray
	if m.pulses%2 == 1 {
		borderColor = ColorAccent
	}
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(m.renderTiles(faceW, faceH))

	body := lipgloss.JoinVertical(lipgloss.Center, framed, m.renderStatusLine(), m.help.View(m.keys))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderTiles composes the four tiles on a canvas the size of the resting
// grid. Anything outside it (tiles sliding to or from their staged
// rectangles) is clipped.
func (m *WatchModel) renderTiles(w, h int) string {
	c := canvas.New(w, h)
	bg := lipgloss.NewStyle().Background(lipgloss.Color(activeSkin.Background))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetCell(canvas.Point{X: x, Y: y}, canvas.Cell{Rune: ' ', Style: bg})
		}
	}

	idle := m.face.Idle()
	for _, slot := range model.Slots {
		tv := m.surface.Tile(slot)
		alt := isDiagonal(slot)
		pal := activeSkin.palette(alt, idle)
		style := lipgloss.NewStyle().Background(pal.bg).Foreground(pal.fg)

		g := m.tileGlyph(slot, tv)
		for y := 0; y < tv.rect.H; y++ {
			for x := 0; x < tv.rect.W; x++ {
				px, py := tv.rect.X+x, tv.rect.Y+y
				if px < 0 || py < 0 || px >= w || py >= h {
					continue
				}
				c.SetCell(canvas.Point{X: px, Y: py}, canvas.Cell{Rune: glyphRune(g, x-tilePadX, y-tilePadY), Style: style})
			}
		}
	}
	return c.View()
}

// tileGlyph resolves the glyph for a tile. In twelve-hour mode a leading
// zero hour is left blank.
func (m *WatchModel) tileGlyph(slot model.DigitSlot, tv tileView) glyph.Glyph {
	if !tv.hasGlyph {
		return glyph.Glyph{}
	}
	if slot == model.HourTens && tv.value == 0 && m.face.TwelveHour() {
		return glyph.Glyph{}
	}
	g, ok := m.font.Glyph(tv.value)
	if !ok {
		return glyph.Glyph{}
	}
	if m.opts.InvertDiagonal && isDiagonal(slot) {
		g = g.Invert('█')
	}
	return g
}

// glyphRune returns the rune at (x, y) inside g, or a blank outside it.
func glyphRune(g glyph.Glyph, x, y int) rune {
	if g.Empty() || y < 0 || y >= len(g.Rows) || x < 0 {
		return ' '
	}
	row := []rune(g.Rows[y])
	if x >= len(row) {
		return ' '
	}
	return row[x]
}

// isDiagonal marks the tiles drawn with the alternate palette, giving the
// face its checkerboard.
func isDiagonal(slot model.DigitSlot) bool {
	return slot == model.HourOnes || slot == model.MinuteTens
}

func (m *WatchModel) renderStatusLine() string {
	muted := lipgloss.NewStyle().Foreground(ColorGray)
	accent := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	format := "24h"
	if m.face.TwelveHour() {
		format = "12h"
	}

	var mode string
	if m.face.Idle() {
		mode = accent.Render("idle")
	} else if d := m.face.IdleDeadline(); !d.IsZero() {
		left := time.Until(d).Round(time.Second)
		if left < 0 {
			left = 0
		}
		mode = "active " + muted.Render("(idle in "+formatCountdown(left)+")")
	} else {
		mode = "active"
	}

	link := muted.Render("○ offline")
	if m.face.Connected() {
		link = accent.Render("● linked")
	}

	parts := []string{muted.Render(format), mode, link}
	return strings.Join(parts, muted.Render("  │  "))
}

func formatCountdown(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
