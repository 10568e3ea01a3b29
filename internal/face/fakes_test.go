package face

import (
	"sort"
	"time"

	"github.com/tinytelemetry/digitface/internal/model"
)

type surfaceCall struct {
	op    string
	slot  model.DigitSlot
	value int
	rect  model.Rect
	id    AnimationID
}

// recordingSurface records every call and hands out sequential ids.
type recordingSurface struct {
	nextID AnimationID
	refuse bool
	calls  []surfaceCall
	reqs   map[AnimationID]AnimationRequest
	latest map[model.DigitSlot]AnimationID
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		reqs:   make(map[AnimationID]AnimationRequest),
		latest: make(map[model.DigitSlot]AnimationID),
	}
}

func (s *recordingSurface) SetGlyph(slot model.DigitSlot, value int) {
	s.calls = append(s.calls, surfaceCall{op: "glyph", slot: slot, value: value})
}

func (s *recordingSurface) Place(slot model.DigitSlot, r model.Rect) {
	s.calls = append(s.calls, surfaceCall{op: "place", slot: slot, rect: r})
}

func (s *recordingSurface) Animate(req AnimationRequest) AnimationID {
	if s.refuse {
		return 0
	}
	s.nextID++
	s.reqs[s.nextID] = req
	s.latest[req.Slot] = s.nextID
	s.calls = append(s.calls, surfaceCall{op: "animate", slot: req.Slot, rect: req.To, id: s.nextID})
	return s.nextID
}

func (s *recordingSurface) Cancel(id AnimationID) {
	s.calls = append(s.calls, surfaceCall{op: "cancel", id: id})
}

func (s *recordingSurface) MarkDirty(slot model.DigitSlot) {
	s.calls = append(s.calls, surfaceCall{op: "dirty", slot: slot})
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (s *recordingSurface) animatedSlots() []model.DigitSlot {
	var out []model.DigitSlot
	for _, c := range s.calls {
		if c.op == "animate" {
			out = append(out, c.slot)
		}
	}
	return out
}

func (s *recordingSurface) reset() { s.calls = nil }

// manualClock is a Scheduler whose time only moves on Advance.
type manualClock struct {
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	at        time.Time
	fn        func()
	cancelled bool
	fired     bool
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 3, 1, 13, 59, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) After(d time.Duration, fn func()) func() {
	t := &manualTimer{at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.cancelled = true }
}

// Advance moves time forward by d, firing due timers in order.
func (c *manualClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		var due []*manualTimer
		for _, t := range c.timers {
			if !t.cancelled && !t.fired && !t.at.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
		next := due[0]
		c.now = next.at
		next.fired = true
		next.fn()
	}
	c.now = target
}

func (c *manualClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

// runAnimation delivers started and stopped(finished) for id.
func runAnimation(f *Face, id AnimationID) {
	f.HandleAnimation(AnimationEvent{ID: id, Kind: AnimationStarted})
	f.HandleAnimation(AnimationEvent{ID: id, Kind: AnimationStopped, Finished: true})
}

// settle runs every slot's animations until nothing is in flight.
func settle(f *Face, s *recordingSurface) {
	for i := 0; i < 16; i++ {
		busy := false
		for _, slot := range model.Slots {
			t := f.tiles[slot]
			if t.Transitioning() {
				busy = true
				runAnimation(f, t.anim)
			}
		}
		if !busy {
			return
		}
	}
}
