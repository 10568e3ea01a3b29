package tui

import (
	"math"
	"sort"
	"time"

	"github.com/tinytelemetry/digitface/internal/face"
	"github.com/tinytelemetry/digitface/internal/model"
)

// tileView is what the terminal currently shows for one slot.
type tileView struct {
	rect     model.Rect
	value    int
	hasGlyph bool
}

type animation struct {
	id        face.AnimationID
	req       face.AnimationRequest
	scheduled time.Time
	started   bool
}

// termSurface is the face.Surface for the terminal. Animations advance on
// frame ticks; Step reports started/stopped events for the model to hand
// back to the face.
type termSurface struct {
	tiles  [model.SlotCount]tileView
	anims  map[face.AnimationID]*animation
	nextID face.AnimationID
	now    func() time.Time
	dirty  bool
}

func newTermSurface(now func() time.Time) *termSurface {
	return &termSurface{
		anims: make(map[face.AnimationID]*animation),
		now:   now,
	}
}

func (s *termSurface) SetGlyph(slot model.DigitSlot, value int) {
	if !slot.Valid() {
		return
	}
	s.tiles[slot].value = value
	s.tiles[slot].hasGlyph = true
}

func (s *termSurface) Place(slot model.DigitSlot, r model.Rect) {
	if !slot.Valid() {
		return
	}
	s.tiles[slot].rect = r
	s.dirty = true
}

func (s *termSurface) Animate(req face.AnimationRequest) face.AnimationID {
	if !req.Slot.Valid() {
		return 0
	}
	s.nextID++
	s.anims[s.nextID] = &animation{id: s.nextID, req: req, scheduled: s.now()}
	return s.nextID
}

func (s *termSurface) Cancel(id face.AnimationID) {
	delete(s.anims, id)
}

func (s *termSurface) MarkDirty(model.DigitSlot) {
	s.dirty = true
}

// Active reports whether any animation is scheduled or running.
func (s *termSurface) Active() bool { return len(s.anims) > 0 }

// Tile returns the current view of slot.
func (s *termSurface) Tile(slot model.DigitSlot) tileView { return s.tiles[slot] }

// takeDirty reports and clears the dirty flag.
func (s *termSurface) takeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Step moves every animation to time now and returns the events produced,
// in animation id order.
func (s *termSurface) Step(now time.Time) []face.AnimationEvent {
	ids := make([]face.AnimationID, 0, len(s.anims))
	for id := range s.anims {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var events []face.AnimationEvent
	for _, id := range ids {
		a := s.anims[id]
		begin := a.scheduled.Add(a.req.Delay)
		if now.Before(begin) {
			continue
		}
		if !a.started {
			a.started = true
			events = append(events, face.AnimationEvent{ID: id, Kind: face.AnimationStarted})
		}

		progress := 1.0
		if a.req.Duration > 0 {
			progress = math.Min(1, float64(now.Sub(begin))/float64(a.req.Duration))
		}
		s.tiles[a.req.Slot].rect = lerpRect(a.req.From, a.req.To, easeInOut(progress))
		s.dirty = true

		if progress >= 1 {
			delete(s.anims, id)
			events = append(events, face.AnimationEvent{ID: id, Kind: face.AnimationStopped, Finished: true})
		}
	}
	return events
}

// easeInOut is the cubic ease-in-out curve.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func lerpRect(from, to model.Rect, t float64) model.Rect {
	lerp := func(a, b int) int {
		return a + int(math.Round(float64(b-a)*t))
	}
	return model.Rect{X: lerp(from.X, to.X), Y: lerp(from.Y, to.Y), W: to.W, H: to.H}
}
