package tui

import (
	"testing"
	"time"

	"github.com/tinytelemetry/digitface/internal/face"
	"github.com/tinytelemetry/digitface/internal/model"
)

func TestSurface_StepReportsStartAndStop(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTermSurface(func() time.Time { return base })
	from := model.Rect{X: 0, Y: 0, W: 4, H: 3}
	to := model.Rect{X: 40, Y: 0, W: 4, H: 3}
	id := s.Animate(face.AnimationRequest{
		Slot: model.MinuteOnes, From: from, To: to,
		Duration: 500 * time.Millisecond, Delay: 300 * time.Millisecond,
	})

	if evs := s.Step(base.Add(200 * time.Millisecond)); len(evs) != 0 {
		t.Fatalf("events during delay = %+v", evs)
	}

	evs := s.Step(base.Add(550 * time.Millisecond))
	if len(evs) != 1 || evs[0].ID != id || evs[0].Kind != face.AnimationStarted {
		t.Fatalf("events at midpoint = %+v, want started", evs)
	}
	if x := s.Tile(model.MinuteOnes).rect.X; x != 20 {
		t.Fatalf("midpoint x = %d, want 20", x)
	}

	evs = s.Step(base.Add(800 * time.Millisecond))
	if len(evs) != 1 || evs[0].Kind != face.AnimationStopped || !evs[0].Finished {
		t.Fatalf("events at end = %+v, want finished stop", evs)
	}
	if got := s.Tile(model.MinuteOnes).rect; got != to {
		t.Fatalf("final rect = %+v, want %+v", got, to)
	}
	if s.Active() {
		t.Fatal("surface still active")
	}
}

func TestSurface_CancelledAnimationIsSilent(t *testing.T) {
	t.Parallel()

	base := time.Now()
	s := newTermSurface(func() time.Time { return base })
	id := s.Animate(face.AnimationRequest{Slot: model.HourTens, Duration: time.Millisecond})
	s.Cancel(id)

	if evs := s.Step(base.Add(time.Second)); len(evs) != 0 {
		t.Fatalf("cancelled animation produced %+v", evs)
	}
}

func TestSurface_RejectsUnknownSlot(t *testing.T) {
	t.Parallel()

	s := newTermSurface(time.Now)
	if id := s.Animate(face.AnimationRequest{Slot: model.DigitSlot(9)}); id != 0 {
		t.Fatalf("id = %d, want 0", id)
	}
	s.SetGlyph(model.DigitSlot(-1), 3)
	s.Place(model.DigitSlot(5), model.Rect{})
}

func TestEaseInOut(t *testing.T) {
	t.Parallel()

	if easeInOut(0) != 0 || easeInOut(1) != 1 {
		t.Fatal("ease endpoints wrong")
	}
	if v := easeInOut(0.5); v != 0.5 {
		t.Fatalf("ease(0.5) = %v, want 0.5", v)
	}
	if easeInOut(0.25) >= 0.25 {
		t.Fatal("ease should start slow")
	}
}

func TestLoopScheduler_CancelAndFire(t *testing.T) {
	t.Parallel()

	s := newLoopScheduler(time.Now)
	var fired []int
	cancel := s.After(time.Minute, func() { fired = append(fired, 1) })
	s.After(time.Minute, func() { fired = append(fired, 2) })

	if s.drain() == nil {
		t.Fatal("drain returned no ticks")
	}
	if s.drain() != nil {
		t.Fatal("second drain should be empty")
	}

	cancel()
	if s.fire(1) {
		t.Fatal("cancelled timer fired")
	}
	if !s.fire(2) {
		t.Fatal("live timer did not fire")
	}
	if s.fire(2) {
		t.Fatal("timer fired twice")
	}
	if len(fired) != 1 || fired[0] != 2 {
		t.Fatalf("fired = %v, want [2]", fired)
	}
}

func TestWarpClock(t *testing.T) {
	t.Parallel()

	realNow := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewWarpClock(time.Date(2026, 1, 1, 12, 59, 30, 0, time.UTC), 30)
	c.origin = realNow
	c.real = func() time.Time { return realNow.Add(time.Second) }

	if got := c.Now(); got.Minute() != 0 || got.Hour() != 13 {
		t.Fatalf("warp now = %v, want 13:00", got)
	}
	if d := c.UntilNextMinute(); d != 2*time.Second {
		t.Fatalf("until next minute = %v, want 2s", d)
	}
}
