package face

import (
	"log"
	"time"

	"github.com/tinytelemetry/digitface/internal/model"
)

// AnimationID identifies one scheduled animation on a Surface. Zero means
// the surface refused to schedule.
type AnimationID uint64

// AnimationRequest moves a tile container from one rectangle to another
// with ease-in-out easing.
type AnimationRequest struct {
	Slot     model.DigitSlot
	From, To model.Rect
	Duration time.Duration
	Delay    time.Duration
}

// AnimationEventKind distinguishes started from stopped callbacks.
type AnimationEventKind int

const (
	AnimationStarted AnimationEventKind = iota
	AnimationStopped
)

// AnimationEvent is delivered by the Surface back to Face.HandleAnimation.
// Finished is only meaningful for AnimationStopped; false means the
// animation was cancelled.
type AnimationEvent struct {
	ID       AnimationID
	Kind     AnimationEventKind
	Finished bool
}

// Surface is the presentation layer the driver draws through.
type Surface interface {
	SetGlyph(slot model.DigitSlot, value int)
	Place(slot model.DigitSlot, r model.Rect)
	Animate(req AnimationRequest) AnimationID
	Cancel(id AnimationID)
	MarkDirty(slot model.DigitSlot)
}

// Strategy selects how a value change is presented.
type Strategy int

const (
	Animate Strategy = iota // two-phase slide
	Instant                 // swap in place
)

func (s Strategy) String() string {
	if s == Instant {
		return "instant"
	}
	return "animate"
}

// Driver applies value changes to tiles through a Surface.
type Driver struct {
	surface  Surface
	table    PositionTable
	duration time.Duration
	delay    time.Duration
}

// NewDriver creates a driver over surface using table for geometry.
func NewDriver(surface Surface, table PositionTable, duration, delay time.Duration) *Driver {
	return &Driver{
		surface:  surface,
		table:    table,
		duration: duration,
		delay:    delay,
	}
}

// Apply presents newValue on t.
//
// A tile never carries two animations. Requests that arrive mid-transition
// are coalesced: during phase OUT the pending value is retargeted, during
// phase IN one follow-up is queued and started when the tile lands.
func (d *Driver) Apply(t *Tile, newValue int, s Strategy) {
	switch t.phase {
	case PhaseOut:
		t.pending = newValue
		return
	case PhaseIn:
		t.queued, t.queuedStrategy, t.hasQueued = newValue, s, true
		return
	}

	if s == Instant {
		d.swap(t, newValue)
		if !t.resting {
			d.surface.Place(t.slot, d.table[t.slot].Rest)
			t.resting = true
		}
		return
	}

	if !t.resting {
		// Stranded off-frame by a cancelled transition: the swap is already
		// out of sight, so only the inbound leg is needed.
		d.swap(t, newValue)
		d.slideIn(t)
		return
	}

	t.pending = newValue
	d.slideOut(t)
}

// Handle advances t for an event that belongs to its current animation.
func (d *Driver) Handle(t *Tile, ev AnimationEvent) {
	switch ev.Kind {
	case AnimationStarted:
		t.started = true
		switch t.phase {
		case PhaseOut:
			t.resting = false
		case PhaseIn:
			t.resting = true
		}

	case AnimationStopped:
		phase, started := t.phase, t.started
		t.phase, t.anim, t.started = PhaseNone, 0, false

		if !ev.Finished {
			// Cancelled: the continuation never runs. A tile caught partway
			// in is not at its rest rectangle, so treat it as stranded.
			if phase == PhaseIn && started {
				t.resting = false
			}
			t.hasQueued = false
			return
		}

		switch phase {
		case PhaseOut:
			d.swap(t, t.pending)
			d.slideIn(t)
		case PhaseIn:
			if t.hasQueued {
				next, s := t.queued, t.queuedStrategy
				t.hasQueued = false
				if next != t.value {
					d.Apply(t, next, s)
				}
			}
		}
	}
}

// Cancel stops whatever t has in flight. The surface is not expected to
// report a stopped event for a cancelled id.
func (d *Driver) Cancel(t *Tile) {
	if t.anim != 0 {
		d.surface.Cancel(t.anim)
	}
	d.Handle(t, AnimationEvent{ID: t.anim, Kind: AnimationStopped, Finished: false})
}

func (d *Driver) swap(t *Tile, v int) {
	t.value = v
	d.surface.SetGlyph(t.slot, v)
	d.surface.MarkDirty(t.slot)
}

func (d *Driver) slideOut(t *Tile) {
	pos := d.table[t.slot]
	id := d.surface.Animate(AnimationRequest{
		Slot: t.slot, From: pos.Rest, To: pos.Staged,
		Duration: d.duration, Delay: d.delay,
	})
	if id == 0 {
		log.Printf("face: %v: surface refused slide out, swapping in place", t.slot)
		d.swap(t, t.pending)
		return
	}
	t.phase, t.anim, t.started = PhaseOut, id, false
}

func (d *Driver) slideIn(t *Tile) {
	pos := d.table[t.slot]
	id := d.surface.Animate(AnimationRequest{
		Slot: t.slot, From: pos.Staged, To: pos.Rest,
		Duration: d.duration, Delay: d.delay,
	})
	if id == 0 {
		log.Printf("face: %v: surface refused slide in, snapping to rest", t.slot)
		d.surface.Place(t.slot, pos.Rest)
		t.resting = true
		return
	}
	t.phase, t.anim, t.started = PhaseIn, id, false
}
