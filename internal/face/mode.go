package face

import (
	"log"
	"time"
)

// Scheduler defers callbacks onto the host's event loop. Callbacks must run
// on the same logical thread as every other face call.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) (cancel func())
}

// Tracker flips the face into idle mode after a period with no user
// interaction. It never redraws anything itself.
type Tracker struct {
	sched   Scheduler
	timeout time.Duration

	idle    bool
	armedAt time.Time
	cancel  func()
	gen     uint64
}

// NewTracker creates a tracker in active mode with no deadline armed.
func NewTracker(sched Scheduler, timeout time.Duration) *Tracker {
	return &Tracker{sched: sched, timeout: timeout}
}

// Idle reports whether the inactivity deadline has elapsed.
func (t *Tracker) Idle() bool { return t.idle }

// Deadline returns when the tracker will go idle, or the zero time when it
// already is idle or was never armed.
func (t *Tracker) Deadline() time.Time {
	if t.idle || t.cancel == nil {
		return time.Time{}
	}
	return t.armedAt.Add(t.timeout)
}

// Interact records user activity: the face becomes active and the deadline
// restarts from now.
func (t *Tracker) Interact() {
	if t.idle {
		log.Printf("face: interaction, leaving idle mode")
	}
	t.idle = false
	t.arm()
}

func (t *Tracker) arm() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
	gen := t.gen
	t.armedAt = t.sched.Now()
	t.cancel = t.sched.After(t.timeout, func() { t.expire(gen) })
}

// expire ignores deadlines from earlier arms, so a host whose cancel races
// with its timer still lets the latest arm win.
func (t *Tracker) expire(gen uint64) {
	if gen != t.gen {
		return
	}
	t.cancel = nil
	if !t.idle {
		log.Printf("face: no interaction for %s, entering idle mode", t.timeout)
	}
	t.idle = true
}

// Stop cancels any pending deadline.
func (t *Tracker) Stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
}
