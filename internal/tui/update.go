package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Init loads the face and starts the minute clock.
func (m *WatchModel) Init() tea.Cmd {
	m.lastReading = m.reading()
	m.face.Load(m.lastReading)
	m.publish()
	return tea.Batch(m.sched.drain(), m.ensureFrames(), m.nextMinuteTick(), statusTick())
}

// Update handles messages
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit, m.keys.ForceQuit) {
			m.face.Unload()
			m.publish()
			return m, tea.Quit
		}
		m.face.Interact()
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		case key.Matches(msg, m.keys.Format):
			m.face.SetTwelveHour(!m.face.TwelveHour(), m.reading())
		case key.Matches(msg, m.keys.Resync):
			m.face.Resync(m.reading())
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.face.Interact()
		}

	case TapMsg:
		m.face.Interact()

	case ResyncMsg:
		m.face.Resync(m.reading())

	case ConnectivityMsg:
		if m.face.SetConnected(msg.Connected) {
			cmds = append(cmds, m.startPulse(msg.Connected))
		}

	case pulseMsg:
		if m.pulses > 0 {
			m.pulses--
		}
		if m.pulses > 0 {
			cmds = append(cmds, pulseTick())
		}

	case statusTickMsg:
		// Re-render for the idle countdown.
		cmds = append(cmds, statusTick())

	case minuteTickMsg:
		cmds = append(cmds, m.handleMinute())

	case frameMsg:
		m.frameRunning = false
		for _, ev := range m.surface.Step(time.Time(msg)) {
			m.face.HandleAnimation(ev)
		}

	case timerFiredMsg:
		m.sched.fire(msg.id)
	}

	m.publish()
	cmds = append(cmds, m.sched.drain(), m.ensureFrames())
	return m, tea.Batch(cmds...)
}

// handleMinute runs one rollover pass. Ticks that land before the boundary
// (timer jitter) are rescheduled without touching the face.
func (m *WatchModel) handleMinute() tea.Cmd {
	r := m.reading()
	if r == m.lastReading {
		return m.nextMinuteTick()
	}
	m.lastReading = r

	d := m.face.Tick(r)
	if m.opts.AutoResync {
		for _, diverged := range d.Diverged {
			if diverged {
				log.Printf("tui: carry missed a digit at %s, resyncing", r)
				m.face.Resync(r)
				break
			}
		}
	}
	return m.nextMinuteTick()
}

func (m *WatchModel) nextMinuteTick() tea.Cmd {
	return tea.Tick(m.clock.UntilNextMinute(), func(t time.Time) tea.Msg {
		return minuteTickMsg(t)
	})
}

// ensureFrames keeps a single frame tick in flight while anything moves.
func (m *WatchModel) ensureFrames() tea.Cmd {
	if m.frameRunning || !m.surface.Active() {
		return nil
	}
	m.frameRunning = true
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// startPulse flashes the frame once on connect and twice on disconnect,
// standing in for the watch's vibration motor.
func (m *WatchModel) startPulse(connected bool) tea.Cmd {
	flashes := 2
	if connected {
		flashes = 1
	}
	restart := m.pulses == 0
	m.pulses = flashes * 2
	if !restart {
		return nil
	}
	return pulseTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTickMsg{} })
}

func pulseTick() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{} })
}
