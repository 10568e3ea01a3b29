package face

import (
	"fmt"

	"github.com/tinytelemetry/digitface/internal/model"
)

// TilePosition holds the two rectangles a tile moves between.
type TilePosition struct {
	Staged model.Rect // off-frame, occupied mid-transition
	Rest   model.Rect // on-frame, where the glyph is readable
}

// slotOffsets are the staged and rest origins in units of the tile box.
// Each tile leaves the frame in a different direction so the four slides
// never cross.
var slotOffsets = [model.SlotCount]struct {
	staged [2]int
	rest   [2]int
}{
	model.HourTens:   {staged: [2]int{-2, 0}, rest: [2]int{0, 0}}, // exits left
	model.HourOnes:   {staged: [2]int{1, -2}, rest: [2]int{1, 0}}, // exits up
	model.MinuteTens: {staged: [2]int{0, 3}, rest: [2]int{0, 1}},  // exits down
	model.MinuteOnes: {staged: [2]int{3, 1}, rest: [2]int{1, 1}},  // exits right
}

// PositionTable is the per-slot staged/rest geometry for one box size.
type PositionTable [model.SlotCount]TilePosition

// NewPositionTable builds the table for tiles of boxW x boxH cells. The
// face occupies a 2x2 grid of boxes.
func NewPositionTable(boxW, boxH int) PositionTable {
	var t PositionTable
	for i, off := range slotOffsets {
		t[i] = TilePosition{
			Staged: model.Rect{X: off.staged[0] * boxW, Y: off.staged[1] * boxH, W: boxW, H: boxH},
			Rest:   model.Rect{X: off.rest[0] * boxW, Y: off.rest[1] * boxH, W: boxW, H: boxH},
		}
	}
	return t
}

// Lookup returns the position for slot.
func (t PositionTable) Lookup(slot model.DigitSlot) (TilePosition, error) {
	if !slot.Valid() {
		return TilePosition{}, fmt.Errorf("position lookup %v: %w", slot, model.ErrUnknownSlot)
	}
	return t[slot], nil
}

// Bounds returns the width and height of the on-frame area.
func (t PositionTable) Bounds() (w, h int) {
	for _, p := range t {
		if r := p.Rest.X + p.Rest.W; r > w {
			w = r
		}
		if b := p.Rest.Y + p.Rest.H; b > h {
			h = b
		}
	}
	return w, h
}
