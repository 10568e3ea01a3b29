package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg is delivered when a deferred callback is due.
type timerFiredMsg struct{ id uint64 }

// loopScheduler runs face deadlines on the Bubble Tea event loop.
// tea.Tick cannot be cancelled, so cancelled ids are simply forgotten and
// their tick is ignored when it arrives.
type loopScheduler struct {
	now     func() time.Time
	nextID  uint64
	timers  map[uint64]func()
	pending []tea.Cmd
}

func newLoopScheduler(now func() time.Time) *loopScheduler {
	return &loopScheduler{now: now, timers: make(map[uint64]func())}
}

func (s *loopScheduler) Now() time.Time { return s.now() }

func (s *loopScheduler) After(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return func() { delete(s.timers, id) }
}

// fire runs the callback for id unless it was cancelled.
func (s *loopScheduler) fire(id uint64) bool {
	fn, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	fn()
	return true
}

// drain returns the ticks registered since the last drain.
func (s *loopScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
