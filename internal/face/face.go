// Package face implements the digit clock: deciding which tiles roll over
// each minute and sequencing their slide or swap.
//
// Every method must be called from the host's single event loop. Nothing
// here locks.
package face

import (
	"fmt"
	"log"
	"time"

	"github.com/tinytelemetry/digitface/internal/model"
)

// Config holds the face's fixed parameters.
type Config struct {
	TwelveHour   bool
	IdleTimeout  time.Duration
	AnimDuration time.Duration
	AnimDelay    time.Duration
	BoxWidth     int
	BoxHeight    int
}

// DefaultConfig returns the watch face defaults for a box size.
func DefaultConfig(boxW, boxH int) Config {
	return Config{
		IdleTimeout:  model.DefaultIdleTimeout,
		AnimDuration: model.DefaultAnimDuration,
		AnimDelay:    model.DefaultAnimDelay,
		BoxWidth:     boxW,
		BoxHeight:    boxH,
	}
}

// Face owns the four tiles, the idle tracker and the driver.
type Face struct {
	cfg     Config
	surface Surface
	table   PositionTable
	tiles   [model.SlotCount]*Tile
	driver  *Driver
	tracker *Tracker

	connected bool
	lastTick  time.Time
	loaded    bool
}

// New creates a face drawing on surface and scheduling deadlines on sched.
func New(cfg Config, surface Surface, sched Scheduler) *Face {
	table := NewPositionTable(cfg.BoxWidth, cfg.BoxHeight)
	f := &Face{
		cfg:     cfg,
		surface: surface,
		table:   table,
		driver:  NewDriver(surface, table, cfg.AnimDuration, cfg.AnimDelay),
		tracker: NewTracker(sched, cfg.IdleTimeout),
	}
	for _, slot := range model.Slots {
		f.tiles[slot] = newTile(slot)
	}
	return f
}

// Table returns the position table in use.
func (f *Face) Table() PositionTable { return f.table }

// Tile returns the tile for slot.
func (f *Face) Tile(slot model.DigitSlot) (*Tile, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("tile %v: %w", slot, model.ErrUnknownSlot)
	}
	return f.tiles[slot], nil
}

// Value returns the displayed value for slot, or -1 for an unknown slot.
func (f *Face) Value(slot model.DigitSlot) int {
	t, err := f.Tile(slot)
	if err != nil {
		return -1
	}
	return t.Value()
}

// Idle reports the current mode.
func (f *Face) Idle() bool { return f.tracker.Idle() }

// IdleDeadline returns when the face goes idle without further interaction.
func (f *Face) IdleDeadline() time.Time { return f.tracker.Deadline() }

// TwelveHour reports the display format.
func (f *Face) TwelveHour() bool { return f.cfg.TwelveHour }

// Loaded reports whether Load ran since the last Unload.
func (f *Face) Loaded() bool { return f.loaded }

// Connected reports the last connectivity state seen.
func (f *Face) Connected() bool { return f.connected }

// Load puts every tile off-frame with the current digits and slides all
// four in. The face starts active.
func (f *Face) Load(reading model.ClockReading) {
	values := Digits(reading, f.cfg.TwelveHour)
	for _, slot := range model.Slots {
		t := f.tiles[slot]
		f.driver.Cancel(t)
		t.resting = false
		f.surface.Place(slot, f.table[slot].Staged)
	}
	for _, slot := range model.Slots {
		f.driver.Apply(f.tiles[slot], values[slot], Animate)
	}
	f.tracker.Interact()
	f.lastTick = f.tracker.sched.Now()
	f.loaded = true
}

// Tick runs one rollover pass for reading.
func (f *Face) Tick(reading model.ClockReading) Decision {
	var prev [model.SlotCount]DigitTileState
	for _, slot := range model.Slots {
		prev[slot] = f.tiles[slot].State()
		prev[slot].Value = f.tiles[slot].Target()
	}

	d := Decide(prev, reading, f.cfg.TwelveHour)

	strategy := Animate
	if f.tracker.Idle() {
		strategy = Instant
	}
	for _, slot := range model.CascadeOrder {
		if d.Changed[slot] {
			f.driver.Apply(f.tiles[slot], d.Values[slot], strategy)
		}
	}
	for _, slot := range model.Slots {
		if d.Diverged[slot] {
			log.Printf("face: %v shows %d but reading %s wants %d (carry did not reach it)",
				slot, prev[slot].Value, reading, d.Values[slot])
		}
	}
	f.lastTick = f.tracker.sched.Now()
	return d
}

// Resync applies every digit whose target differs from reading, ignoring
// the carry rule.
func (f *Face) Resync(reading model.ClockReading) {
	values := Digits(reading, f.cfg.TwelveHour)
	strategy := Animate
	if f.tracker.Idle() {
		strategy = Instant
	}
	for _, slot := range model.CascadeOrder {
		if f.tiles[slot].Target() != values[slot] {
			f.driver.Apply(f.tiles[slot], values[slot], strategy)
		}
	}
}

// SetTwelveHour switches the display format and resyncs to reading.
func (f *Face) SetTwelveHour(twelve bool, reading model.ClockReading) {
	if f.cfg.TwelveHour == twelve {
		return
	}
	f.cfg.TwelveHour = twelve
	f.Resync(reading)
}

// Interact records a tap or gesture.
func (f *Face) Interact() {
	f.tracker.Interact()
}

// SetConnected records a connectivity change and reports whether it was one.
func (f *Face) SetConnected(connected bool) bool {
	if f.connected == connected {
		return false
	}
	f.connected = connected
	return true
}

// HandleAnimation dispatches a started/stopped event to the tile that owns
// the animation. Events for unknown or superseded ids are dropped.
func (f *Face) HandleAnimation(ev AnimationEvent) {
	if ev.ID == 0 {
		return
	}
	for _, t := range f.tiles {
		if t.anim == ev.ID {
			f.driver.Handle(t, ev)
			return
		}
	}
}

// Unload cancels every animation and the idle deadline.
func (f *Face) Unload() {
	for _, t := range f.tiles {
		f.driver.Cancel(t)
	}
	f.tracker.Stop()
	f.loaded = false
}

// Snapshot copies the face state for status surfaces.
func (f *Face) Snapshot() model.FaceSnapshot {
	s := model.FaceSnapshot{
		Tiles:      make([]model.TileSnapshot, 0, model.SlotCount),
		Idle:       f.tracker.Idle(),
		TwelveHour: f.cfg.TwelveHour,
		Connected:  f.connected,
		LastTick:   f.lastTick,
	}
	for _, t := range f.tiles {
		s.Tiles = append(s.Tiles, t.snapshot())
	}
	s.Display = fmt.Sprintf("%d%d:%d%d",
		f.tiles[model.HourTens].value, f.tiles[model.HourOnes].value,
		f.tiles[model.MinuteTens].value, f.tiles[model.MinuteOnes].value)
	return s
}
