package face

import "github.com/tinytelemetry/digitface/internal/model"

// Phase is the leg of a transition a tile is currently animating.
type Phase int

const (
	PhaseNone Phase = iota // nothing in flight
	PhaseOut               // rest -> staged
	PhaseIn                // staged -> rest
)

func (p Phase) String() string {
	switch p {
	case PhaseOut:
		return "out"
	case PhaseIn:
		return "in"
	default:
		return "none"
	}
}

// Tile is one digit tile and its transition state machine.
//
// A tile is Resting when no animation is in flight and Transitioning
// otherwise. While transitioning, pending holds the value the glyph swaps to
// at the end of phase OUT, and queued holds at most one follow-up request
// that arrived during phase IN.
type Tile struct {
	slot    model.DigitSlot
	value   int
	resting bool

	phase   Phase
	anim    AnimationID
	started bool
	pending int

	queued         int
	queuedStrategy Strategy
	hasQueued      bool
}

func newTile(slot model.DigitSlot) *Tile {
	return &Tile{slot: slot, resting: true}
}

func (t *Tile) Slot() model.DigitSlot { return t.slot }
func (t *Tile) Value() int            { return t.value }
func (t *Tile) Resting() bool         { return t.resting }
func (t *Tile) Phase() Phase          { return t.phase }

// Transitioning reports whether an animation is scheduled or running.
func (t *Tile) Transitioning() bool { return t.phase != PhaseNone }

// Target is the value the tile will show once everything in flight lands.
func (t *Tile) Target() int {
	switch {
	case t.hasQueued:
		return t.queued
	case t.phase == PhaseOut:
		return t.pending
	default:
		return t.value
	}
}

// State returns a value copy for the decider.
func (t *Tile) State() DigitTileState {
	return DigitTileState{Slot: t.slot, Value: t.value, Resting: t.resting}
}

func (t *Tile) snapshot() model.TileSnapshot {
	return model.TileSnapshot{
		Slot:          t.slot.String(),
		Value:         t.value,
		Resting:       t.resting,
		Transitioning: t.Transitioning(),
	}
}
