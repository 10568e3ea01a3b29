package face

import (
	"testing"
	"time"
)

func TestTracker_StartsActive(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, 180*time.Second)
	tr.Interact()

	if tr.Idle() {
		t.Fatal("tracker idle right after arming")
	}
	if want := c.Now().Add(180 * time.Second); !tr.Deadline().Equal(want) {
		t.Fatalf("deadline = %v, want %v", tr.Deadline(), want)
	}
}

func TestTracker_GoesIdleAfterTimeout(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, 180*time.Second)
	tr.Interact()

	c.Advance(179 * time.Second)
	if tr.Idle() {
		t.Fatal("idle before the deadline")
	}
	c.Advance(time.Second)
	if !tr.Idle() {
		t.Fatal("not idle at the deadline")
	}
	if !tr.Deadline().IsZero() {
		t.Fatal("idle tracker still reports a deadline")
	}
}

func TestTracker_InteractionRearms(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, 180*time.Second)
	tr.Interact() // t=0

	c.Advance(170 * time.Second)
	tr.Interact() // t=170

	c.Advance(10 * time.Second) // t=180, first deadline
	if tr.Idle() {
		t.Fatal("went idle on the superseded deadline")
	}
	c.Advance(169 * time.Second) // t=349
	if tr.Idle() {
		t.Fatal("idle before the rearmed deadline")
	}
	c.Advance(time.Second) // t=350
	if !tr.Idle() {
		t.Fatal("not idle at the rearmed deadline")
	}
}

func TestTracker_CancelsBeforeRearm(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, 180*time.Second)
	for i := 0; i < 5; i++ {
		tr.Interact()
	}
	if n := c.pending(); n != 1 {
		t.Fatalf("pending timers = %d, want 1", n)
	}
}

func TestTracker_InteractionLeavesIdle(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, time.Minute)
	tr.Interact()
	c.Advance(time.Minute)
	if !tr.Idle() {
		t.Fatal("expected idle")
	}

	tr.Interact()
	if tr.Idle() {
		t.Fatal("still idle after interaction")
	}
}

func TestTracker_StaleDeadlineIgnored(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, time.Minute)
	tr.Interact()
	stale := tr.gen
	tr.Interact()

	tr.expire(stale)
	if tr.Idle() {
		t.Fatal("stale deadline flipped the tracker idle")
	}
}

func TestTracker_StopCancels(t *testing.T) {
	t.Parallel()

	c := newManualClock()
	tr := NewTracker(c, time.Minute)
	tr.Interact()
	tr.Stop()

	c.Advance(2 * time.Minute)
	if tr.Idle() {
		t.Fatal("stopped tracker went idle")
	}
	if n := c.pending(); n != 0 {
		t.Fatalf("pending timers = %d, want 0", n)
	}
}
