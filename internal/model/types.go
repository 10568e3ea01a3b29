package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownSlot is returned when a DigitSlot outside the four clock
// positions is looked up.
var ErrUnknownSlot = errors.New("unknown digit slot")

// DigitSlot identifies one of the four digit tiles on the face.
type DigitSlot int

const (
	HourTens DigitSlot = iota
	HourOnes
	MinuteTens
	MinuteOnes
)

// SlotCount is the number of digit tiles on the face.
const SlotCount = 4

// Slots lists every slot in display order (top-left, top-right,
// bottom-left, bottom-right).
var Slots = [SlotCount]DigitSlot{HourTens, HourOnes, MinuteTens, MinuteOnes}

// CascadeOrder is the order rollover transitions are requested in:
// fastest-changing digit first.
var CascadeOrder = [SlotCount]DigitSlot{MinuteOnes, MinuteTens, HourOnes, HourTens}

// Valid reports whether s names one of the four tiles.
func (s DigitSlot) Valid() bool {
	return s >= HourTens && s <= MinuteOnes
}

func (s DigitSlot) String() string {
	switch s {
	case HourTens:
		return "hour-tens"
	case HourOnes:
		return "hour-ones"
	case MinuteTens:
		return "minute-tens"
	case MinuteOnes:
		return "minute-ones"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Rect is a tile rectangle in surface cells. X and Y may be negative or past
// the surface bounds for staged (off-frame) positions.
type Rect struct {
	X, Y int
	W, H int
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ClockReading is one wall-clock sample. Hour is always 0-23; the display
// format is applied by the rollover decision, not here.
type ClockReading struct {
	Hour   int
	Minute int
}

// ReadingAt extracts a ClockReading from a local time.
func ReadingAt(t time.Time) ClockReading {
	return ClockReading{Hour: t.Hour(), Minute: t.Minute()}
}

func (r ClockReading) String() string {
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// TileSnapshot is a read-only copy of one tile's state.
type TileSnapshot struct {
	Slot          string `json:"slot"`
	Value         int    `json:"value"`
	Resting       bool   `json:"resting"`
	Transitioning bool   `json:"transitioning"`
}

// FaceSnapshot is a read-only copy of the whole face, shared with the
// control surfaces (socket RPC, HTTP).
type FaceSnapshot struct {
	Display    string         `json:"display"`
	Tiles      []TileSnapshot `json:"tiles"`
	Idle       bool           `json:"idle"`
	TwelveHour bool           `json:"twelve_hour"`
	Connected  bool           `json:"connected"`
	LastTick   time.Time      `json:"last_tick"`
}
